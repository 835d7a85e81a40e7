package remotestore

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"adResume/internal/database"
)

// Store 是远端表存储的瘦封装：五张简历表的按属主 CRUD。
// 所有方法返回带分类的错误（见 errors.go），不吞错也不重试。
type Store struct {
	db *gorm.DB
}

// New 构造 Store。
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// GetProfile 读取属主的 profile 行。
func (s *Store) GetProfile(ctx context.Context, userID uint) (*database.Profile, error) {
	var profile database.Profile
	if err := s.db.WithContext(ctx).Where("id = ?", userID).First(&profile).Error; err != nil {
		return nil, wrap("get profile", err)
	}
	return &profile, nil
}

// UpsertProfile 按属主 ID upsert profile（单行，不做删插）。
func (s *Store) UpsertProfile(ctx context.Context, profile *database.Profile) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"full_name", "title", "about", "email", "phone", "location", "website", "updated_at",
		}),
	}).Create(profile).Error
	return wrap("upsert profile", err)
}

// UpdateAvatarURL 单独更新头像地址（由资产上传流程调用）。
func (s *Store) UpdateAvatarURL(ctx context.Context, userID uint, avatarURL string) error {
	err := s.db.WithContext(ctx).Model(&database.Profile{}).
		Where("id = ?", userID).
		Update("avatar_url", avatarURL).Error
	return wrap("update avatar url", err)
}

// ListExperiences 按开始日期倒序返回属主的全部经历行。
func (s *Store) ListExperiences(ctx context.Context, userID uint) ([]database.Experience, error) {
	var rows []database.Experience
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&rows).Error; err != nil {
		return nil, wrap("list experiences", err)
	}
	return rows, nil
}

// ReplaceExperiences 先删后插整体替换属主的经历行。
// 两步之间没有事务边界（与远端 API 的语义保持一致），失败可能留下空表。
func (s *Store) ReplaceExperiences(ctx context.Context, userID uint, rows []database.Experience) error {
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&database.Experience{}).Error; err != nil {
		return wrap("delete experiences", err)
	}
	if len(rows) == 0 {
		return nil
	}
	return wrap("insert experiences", s.db.WithContext(ctx).Create(&rows).Error)
}

// ListEducation 按开始日期倒序返回属主的教育经历行。
func (s *Store) ListEducation(ctx context.Context, userID uint) ([]database.Education, error) {
	var rows []database.Education
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&rows).Error; err != nil {
		return nil, wrap("list education", err)
	}
	return rows, nil
}

// ReplaceEducation 先删后插整体替换属主的教育经历行。
func (s *Store) ReplaceEducation(ctx context.Context, userID uint, rows []database.Education) error {
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&database.Education{}).Error; err != nil {
		return wrap("delete education", err)
	}
	if len(rows) == 0 {
		return nil
	}
	return wrap("insert education", s.db.WithContext(ctx).Create(&rows).Error)
}

// ListSkills 按分类排序返回属主的技能行。
func (s *Store) ListSkills(ctx context.Context, userID uint) ([]database.Skill, error) {
	var rows []database.Skill
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("category").
		Find(&rows).Error; err != nil {
		return nil, wrap("list skills", err)
	}
	return rows, nil
}

// ReplaceSkills 先删后插整体替换属主的技能行。
func (s *Store) ReplaceSkills(ctx context.Context, userID uint, rows []database.Skill) error {
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&database.Skill{}).Error; err != nil {
		return wrap("delete skills", err)
	}
	if len(rows) == 0 {
		return nil
	}
	return wrap("insert skills", s.db.WithContext(ctx).Create(&rows).Error)
}

// ListLanguages 返回属主的语言行。
func (s *Store) ListLanguages(ctx context.Context, userID uint) ([]database.Language, error) {
	var rows []database.Language
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&rows).Error; err != nil {
		return nil, wrap("list languages", err)
	}
	return rows, nil
}

// ReplaceLanguages 先删后插整体替换属主的语言行。
func (s *Store) ReplaceLanguages(ctx context.Context, userID uint, rows []database.Language) error {
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&database.Language{}).Error; err != nil {
		return wrap("delete languages", err)
	}
	if len(rows) == 0 {
		return nil
	}
	return wrap("insert languages", s.db.WithContext(ctx).Create(&rows).Error)
}

// CountSection 返回某分区当前可见的行数（幂等性校验与测试用）。
func (s *Store) CountSection(ctx context.Context, userID uint, model any) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(model).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return 0, wrap("count section", err)
	}
	return count, nil
}

// RecordSyncRun 落一条全量同步的审计记录，明细以 JSONB 保存。
func (s *Store) RecordSyncRun(ctx context.Context, userID uint, success bool, report any) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal sync report: %w", err)
	}
	run := database.SyncRun{
		UserID:  userID,
		Success: success,
		Report:  datatypes.JSON(payload),
	}
	return wrap("record sync run", s.db.WithContext(ctx).Create(&run).Error)
}
