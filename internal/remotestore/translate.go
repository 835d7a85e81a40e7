package remotestore

import (
	"fmt"
	"strings"

	"adResume/internal/database"
	"adResume/internal/resume"
)

// 文档分区与远端行的互转。有损转换集中在本文件：
// period 文本拆成起止日期，challenges 折叠为多行 "challenge: result" 描述，
// 技能 level 固定写默认值 5（本地模型没有该字段）。

const defaultSkillLevel = 5

// ProfileToRow 把 profile 分区映射为 profiles 行。
func ProfileToRow(userID uint, p resume.Profile) database.Profile {
	return database.Profile{
		UserID:   userID,
		FullName: p.Name,
		Title:    p.Title,
		About:    p.Description,
		Email:    p.Email,
		Phone:    p.Phone,
		Location: p.Location,
	}
}

// ProfileFromRow 把 profiles 行映射回 profile 分区。
func ProfileFromRow(row *database.Profile) resume.Profile {
	return resume.Profile{
		Name:        row.FullName,
		Title:       row.Title,
		Email:       row.Email,
		Phone:       row.Phone,
		Location:    row.Location,
		Description: row.About,
	}
}

// ExperiencesToRows 把经历分区映射为 experiences 行。
func ExperiencesToRows(userID uint, entries []resume.Experience) []database.Experience {
	rows := make([]database.Experience, 0, len(entries))
	for _, entry := range entries {
		period := resume.ParsePeriod(entry.Period)
		parts := make([]string, 0, len(entry.Challenges))
		for _, c := range entry.Challenges {
			parts = append(parts, c.Challenge+": "+c.Result)
		}
		row := database.Experience{
			UserID:      userID,
			Company:     entry.Company,
			Position:    entry.Position,
			StartDate:   period.Start,
			Description: strings.Join(parts, "\n"),
			Current:     period.Current,
		}
		if !period.Current && period.End != "" {
			end := period.End
			row.EndDate = &end
		}
		rows = append(rows, row)
	}
	return rows
}

// ExperiencesFromRows 把 experiences 行还原为经历分区。
// 描述按行拆回挑战/成果对，条目 id 由行主键派生以保证稳定。
func ExperiencesFromRows(rows []database.Experience) []resume.Experience {
	entries := make([]resume.Experience, 0, len(rows))
	for _, row := range rows {
		entry := resume.Experience{
			ID:       fmt.Sprintf("exp-%d", row.ID),
			Company:  row.Company,
			Position: row.Position,
			Period:   periodFromRow(row.StartDate, row.EndDate, row.Current),
		}
		for i, line := range strings.Split(row.Description, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			challenge, result, _ := strings.Cut(line, ": ")
			entry.Challenges = append(entry.Challenges, resume.Challenge{
				ID:        fmt.Sprintf("challenge-%d-%d", row.ID, i+1),
				Challenge: challenge,
				Result:    result,
			})
		}
		entries = append(entries, entry)
	}
	return entries
}

// EducationToRows 把教育分区映射为 education 行。
func EducationToRows(userID uint, entries []resume.Education) []database.Education {
	rows := make([]database.Education, 0, len(entries))
	for _, entry := range entries {
		period := resume.ParsePeriod(entry.Period)
		row := database.Education{
			UserID:      userID,
			Institution: entry.Institution,
			Degree:      entry.Degree,
			StartDate:   period.Start,
		}
		if !period.Current && period.End != "" {
			end := period.End
			row.EndDate = &end
		}
		rows = append(rows, row)
	}
	return rows
}

// EducationFromRows 把 education 行还原为教育分区。
func EducationFromRows(rows []database.Education) []resume.Education {
	entries := make([]resume.Education, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, resume.Education{
			ID:          fmt.Sprintf("edu-%d", row.ID),
			Degree:      row.Degree,
			Institution: row.Institution,
			Period:      periodFromRow(row.StartDate, row.EndDate, false),
		})
	}
	return entries
}

// SkillsToRows 把技能分区映射为 skills 行。
func SkillsToRows(userID uint, entries []resume.Skill) []database.Skill {
	rows := make([]database.Skill, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, database.Skill{
			UserID:   userID,
			Name:     entry.Name,
			Level:    defaultSkillLevel,
			Category: entry.Category,
		})
	}
	return rows
}

// SkillsFromRows 把 skills 行还原为技能分区。
func SkillsFromRows(rows []database.Skill) []resume.Skill {
	entries := make([]resume.Skill, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, resume.Skill{
			ID:       fmt.Sprintf("skill-%d", row.ID),
			Name:     row.Name,
			Category: row.Category,
		})
	}
	return entries
}

// LanguagesToRows 把语言分区映射为 languages 行。
func LanguagesToRows(userID uint, entries []string) []database.Language {
	rows := make([]database.Language, 0, len(entries))
	for _, entry := range entries {
		lang := resume.ParseLanguage(entry)
		rows = append(rows, database.Language{
			UserID:      userID,
			Name:        lang.Name,
			Proficiency: lang.Proficiency,
		})
	}
	return rows
}

// LanguagesFromRows 把 languages 行还原为语言分区。
func LanguagesFromRows(rows []database.Language) []string {
	entries := make([]string, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, resume.Language{Name: row.Name, Proficiency: row.Proficiency}.Format())
	}
	return entries
}

func periodFromRow(start string, end *string, current bool) string {
	p := resume.Period{Start: start, Current: current}
	if end != nil {
		p.End = *end
	}
	return p.Format()
}
