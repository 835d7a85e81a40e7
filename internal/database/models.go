package database

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User 表示可登录的站点主人账号。
type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;size:255"`
	PasswordHash string `gorm:"size:255"`
}

// Profile 是简历头部信息，主键即账号 ID（一人一行）。
type Profile struct {
	UserID    uint   `gorm:"primaryKey;column:id"`
	FullName  string `gorm:"size:255"`
	Title     string `gorm:"size:255"`
	About     string `gorm:"type:text"`
	Email     string `gorm:"size:255"`
	Phone     string `gorm:"size:64"`
	Location  string `gorm:"size:255"`
	Website   string `gorm:"size:512"`
	AvatarURL string `gorm:"size:512"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 固定表名，避免复数化成 user_profiles 之类。
func (Profile) TableName() string { return "profiles" }

// Experience 表示工作经历行。
// 起止日期保留自由文本（来源数据没有统一日期格式）。
type Experience struct {
	gorm.Model
	UserID      uint    `gorm:"index"`
	Company     string  `gorm:"size:255"`
	Position    string  `gorm:"size:255"`
	StartDate   string  `gorm:"size:64"`
	EndDate     *string `gorm:"size:64"`
	Description string  `gorm:"type:text"`
	Current     bool    `gorm:"default:false"`
}

// Education 表示教育经历行。
type Education struct {
	gorm.Model
	UserID      uint    `gorm:"index"`
	Institution string  `gorm:"size:255"`
	Degree      string  `gorm:"size:255"`
	Field       string  `gorm:"size:255"`
	StartDate   string  `gorm:"size:64"`
	EndDate     *string `gorm:"size:64"`
	Description string  `gorm:"type:text"`
}

// TableName 与外部约定的表名保持一致（不是 educations）。
func (Education) TableName() string { return "education" }

// Skill 表示技能行，Level 取值 1-5。
type Skill struct {
	gorm.Model
	UserID   uint   `gorm:"index"`
	Name     string `gorm:"size:255"`
	Level    int    `gorm:"default:5"`
	Category string `gorm:"size:32"`
}

// Language 表示语言行。
type Language struct {
	gorm.Model
	UserID      uint   `gorm:"index"`
	Name        string `gorm:"size:128"`
	Proficiency string `gorm:"size:64"`
}

// SyncRun 记录一次全量同步的聚合结果与分区明细（JSONB）。
type SyncRun struct {
	gorm.Model
	UserID  uint `gorm:"index"`
	Success bool
	Report  datatypes.JSON `gorm:"type:jsonb"`
}
