package document

import (
	"context"
	"log/slog"

	"adResume/internal/remotestore"
	"adResume/internal/resume"
)

// Load 在会话开始或属主身份变化时组装内存文档。
// 登录态优先远端表，未登录读快照缓存；任何失败最终回落到内置简历，
// 因此本方法永远返回一份结构完整的文档、从不报错。
// 被更晚的 Load 赶超的结果会被丢弃（单调递增令牌）。
func (s *Session) Load(ctx context.Context) *resume.Document {
	token := s.loadSeq.Add(1)

	s.mu.Lock()
	s.state = StateLoading
	s.mu.Unlock()

	var doc *resume.Document
	if s.authed {
		doc = s.loadRemote(ctx)
	} else {
		doc = s.loadCached(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.loadSeq.Load() {
		// 已有更新的加载在途或已完成，本次结果作废。
		return s.doc.Clone()
	}
	s.doc = doc
	s.state = StateReady
	return doc.Clone()
}

// loadRemote 逐分区查远端表并覆盖到默认文档上。
// 分区缺失或查询失败时保留该分区的默认值；五个分区全部失联时
// 进一步回落到快照缓存。
func (s *Session) loadRemote(ctx context.Context) *resume.Document {
	doc := resume.Default()
	reached := false

	if profile, err := s.remote.GetProfile(ctx, s.userID); err == nil {
		doc.Profile = remotestore.ProfileFromRow(profile)
		reached = true
	} else if remotestore.IsNotFound(err) {
		reached = true
	} else {
		s.logger.Warn("load profile from remote failed", slog.Any("error", err))
	}

	if rows, err := s.remote.ListExperiences(ctx, s.userID); err == nil {
		reached = true
		if len(rows) > 0 {
			doc.Experience = remotestore.ExperiencesFromRows(rows)
		}
	} else {
		s.logger.Warn("load experiences from remote failed", slog.Any("error", err))
	}

	if rows, err := s.remote.ListEducation(ctx, s.userID); err == nil {
		reached = true
		if len(rows) > 0 {
			doc.Education = remotestore.EducationFromRows(rows)
		}
	} else {
		s.logger.Warn("load education from remote failed", slog.Any("error", err))
	}

	if rows, err := s.remote.ListSkills(ctx, s.userID); err == nil {
		reached = true
		if len(rows) > 0 {
			doc.Skills = remotestore.SkillsFromRows(rows)
		}
	} else {
		s.logger.Warn("load skills from remote failed", slog.Any("error", err))
	}

	if rows, err := s.remote.ListLanguages(ctx, s.userID); err == nil {
		reached = true
		if len(rows) > 0 {
			doc.Languages = remotestore.LanguagesFromRows(rows)
		}
	} else {
		s.logger.Warn("load languages from remote failed", slog.Any("error", err))
	}

	if !reached {
		s.logger.Warn("remote store unreachable, falling back to snapshot cache")
		return s.loadCached(ctx)
	}
	return doc
}

// loadCached 读取快照缓存，未命中或读取失败回落内置简历。
func (s *Session) loadCached(ctx context.Context) *resume.Document {
	doc, err := s.cache.Load(ctx, s.owner)
	if err != nil {
		s.logger.Warn("load snapshot failed, falling back to default", slog.Any("error", err))
		return resume.Default()
	}
	if doc == nil {
		return resume.Default()
	}
	return doc
}
