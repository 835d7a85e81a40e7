package document

import (
	"context"
	"log/slog"

	"adResume/internal/remotestore"
	"adResume/internal/resume"
)

// SectionResult 是全量同步中单个分区的结果。
type SectionResult struct {
	Section string `json:"section"`
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
}

// SyncReport 是全量同步的分区明细。
type SyncReport []SectionResult

// SyncAll 把当前内存文档整体推送到远端表：profile 按属主 upsert，
// 四个列表分区先删后插整体替换。单个分区失败只记入报告、不中断
// 其余分区（非原子的尽力而为），聚合结果为 false。
// 这是唯一向用户暴露远端成败的路径；同时落一条审计记录。
func (s *Session) SyncAll(ctx context.Context) (bool, SyncReport) {
	if !s.authed {
		return false, SyncReport{{Section: resume.SectionProfile, Error: "not authenticated"}}
	}

	s.mu.Lock()
	snapshot := s.doc.Clone()
	s.mu.Unlock()

	report := make(SyncReport, 0, len(resume.RemoteSections))
	push := func(section string, err error) {
		result := SectionResult{Section: section, OK: err == nil}
		if err != nil {
			result.Error = err.Error()
			s.logger.Error("sync section failed",
				slog.String("section", section),
				slog.Any("error", err),
			)
		}
		report = append(report, result)
	}

	profile := remotestore.ProfileToRow(s.userID, snapshot.Profile)
	push(resume.SectionProfile, s.remote.UpsertProfile(ctx, &profile))
	push(resume.SectionExperience, s.remote.ReplaceExperiences(ctx, s.userID, remotestore.ExperiencesToRows(s.userID, snapshot.Experience)))
	push(resume.SectionEducation, s.remote.ReplaceEducation(ctx, s.userID, remotestore.EducationToRows(s.userID, snapshot.Education)))
	push(resume.SectionSkills, s.remote.ReplaceSkills(ctx, s.userID, remotestore.SkillsToRows(s.userID, snapshot.Skills)))
	push(resume.SectionLanguages, s.remote.ReplaceLanguages(ctx, s.userID, remotestore.LanguagesToRows(s.userID, snapshot.Languages)))

	success := true
	for _, result := range report {
		if !result.OK {
			success = false
			break
		}
	}

	if err := s.remote.RecordSyncRun(ctx, s.userID, success, report); err != nil {
		// 审计失败不影响同步结果。
		s.logger.Error("record sync run failed", slog.Any("error", err))
	}

	return success, report
}
