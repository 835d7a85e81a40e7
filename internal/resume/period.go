package resume

import "strings"

const periodSeparator = " - "

// presentMarker 表示"至今"，写远端时映射为空结束日期 + current 标记。
const presentMarker = "Present"

// Period 是自由文本 period 在翻译边界上的结构化形式。
// 字符串拆解只发生在这里，内存文档仍保留原始文本。
type Period struct {
	Start   string
	End     string
	Current bool
}

// ParsePeriod 按 " - " 拆分 period 文本。
// 没有分隔符时整段文本作为开始日期、结束日期为空（沿用既有行为，不视为错误）。
func ParsePeriod(period string) Period {
	start, end, found := strings.Cut(period, periodSeparator)
	if !found {
		return Period{Start: period}
	}
	if end == presentMarker {
		return Period{Start: start, Current: true}
	}
	return Period{Start: start, End: end}
}

// Format 将结构化的起止日期还原为 period 文本。
func (p Period) Format() string {
	if p.Current {
		return p.Start + periodSeparator + presentMarker
	}
	if p.End == "" {
		return p.Start
	}
	return p.Start + periodSeparator + p.End
}

// DefaultProficiency 是语言条目未标注熟练度时的默认值。
const DefaultProficiency = "Fluent"

// Language 是 "Name (Proficiency)" 编码在翻译边界上的结构化形式。
type Language struct {
	Name        string
	Proficiency string
}

// ParseLanguage 拆解语言条目，未带括号的条目熟练度取默认值。
func ParseLanguage(entry string) Language {
	name, rest, found := strings.Cut(entry, "(")
	if !found {
		return Language{Name: strings.TrimSpace(entry), Proficiency: DefaultProficiency}
	}
	proficiency := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest), ")"))
	if proficiency == "" {
		proficiency = DefaultProficiency
	}
	return Language{Name: strings.TrimSpace(name), Proficiency: proficiency}
}

// Format 还原语言条目文本；默认熟练度不再追加括号，保证默认文档往返一致。
func (l Language) Format() string {
	if l.Proficiency == "" || l.Proficiency == DefaultProficiency {
		return l.Name
	}
	return l.Name + " (" + l.Proficiency + ")"
}
