package resume

// 分区名称，用于镜像任务载荷与同步报告。
const (
	SectionProfile    = "profile"
	SectionStats      = "stats"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	SectionLanguages  = "languages"
)

// RemoteSections 列出有远端表表示的分区（stats 仅本地保存）。
var RemoteSections = []string{
	SectionProfile,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionLanguages,
}
