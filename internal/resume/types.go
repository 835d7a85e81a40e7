package resume

// Document 表示一位站点主人的完整简历数据（聚合根）。
// 各分区整体替换，分区内条目的 id 在该分区内唯一。
type Document struct {
	Profile    Profile      `json:"profile"`
	Stats      []Stat       `json:"stats"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Skills     []Skill      `json:"skills"`
	Languages  []string     `json:"languages"`
}

// Profile 是简历头部的基本信息。
type Profile struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// 统计卡片允许的图标枚举。
const (
	IconGauge  = "Gauge"
	IconTarget = "Target"
	IconTool   = "Tool"
)

// Stat 表示首页的统计卡片（仅本地保存，不写远端表）。
type Stat struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Experience 表示一段工作经历。
// Period 为自由文本，约定形如 "<start> - <end>" 或 "<start> - Present"。
type Experience struct {
	ID         string      `json:"id"`
	Company    string      `json:"company"`
	Position   string      `json:"position"`
	Period     string      `json:"period"`
	Challenges []Challenge `json:"challenges"`
}

// Challenge 表示经历中的一个挑战/成果对。
type Challenge struct {
	ID        string `json:"id"`
	Challenge string `json:"challenge"`
	Result    string `json:"result"`
}

// Education 表示一段教育经历。
type Education struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Period      string `json:"period"`
}

// 技能分类枚举。
const (
	SkillCategoryCore = "core"
	SkillCategoryTool = "tool"
)

// Skill 表示一项技能。
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// ValidIcon 判断统计卡片图标是否在枚举内。
func ValidIcon(icon string) bool {
	switch icon {
	case IconGauge, IconTarget, IconTool:
		return true
	}
	return false
}

// ValidSkillCategory 判断技能分类是否在枚举内。
func ValidSkillCategory(category string) bool {
	return category == SkillCategoryCore || category == SkillCategoryTool
}

// Clone 返回文档的深拷贝，避免内存态与调用方共享切片。
func (d *Document) Clone() *Document {
	out := &Document{
		Profile:   d.Profile,
		Languages: append([]string(nil), d.Languages...),
	}
	out.Stats = append([]Stat(nil), d.Stats...)
	out.Education = append([]Education(nil), d.Education...)
	out.Skills = append([]Skill(nil), d.Skills...)
	out.Experience = make([]Experience, 0, len(d.Experience))
	for _, exp := range d.Experience {
		cp := exp
		cp.Challenges = append([]Challenge(nil), exp.Challenges...)
		out.Experience = append(out.Experience, cp)
	}
	return out
}
