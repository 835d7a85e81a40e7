package remotestore

import (
	"context"

	"adResume/internal/resume"
)

// ProvisionDefaults 在注册时把内置简历写入五张表。
// profile 已存在则视为已初始化、直接返回；各分区整体替换，保证可重入。
func (s *Store) ProvisionDefaults(ctx context.Context, userID uint, email string) error {
	if _, err := s.GetProfile(ctx, userID); err == nil {
		return nil
	} else if !IsNotFound(err) {
		return err
	}

	doc := resume.Default()

	profile := ProfileToRow(userID, doc.Profile)
	if email != "" {
		profile.Email = email
	}
	if err := s.UpsertProfile(ctx, &profile); err != nil {
		return err
	}
	if err := s.ReplaceExperiences(ctx, userID, ExperiencesToRows(userID, doc.Experience)); err != nil {
		return err
	}
	if err := s.ReplaceEducation(ctx, userID, EducationToRows(userID, doc.Education)); err != nil {
		return err
	}
	if err := s.ReplaceSkills(ctx, userID, SkillsToRows(userID, doc.Skills)); err != nil {
		return err
	}
	return s.ReplaceLanguages(ctx, userID, LanguagesToRows(userID, doc.Languages))
}
