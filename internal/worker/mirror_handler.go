package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"adResume/internal/document"
	"adResume/internal/errcode"
	"adResume/internal/remotestore"
	"adResume/internal/resume"
	"adResume/internal/tasks"
)

// MirrorTaskHandler 消费分区镜像任务：把文档中指定分区翻译成行并写远端表。
// 镜像是尽力而为——最后一次重试仍失败时只通知前端，不影响本地事实。
type MirrorTaskHandler struct {
	remote      document.RemoteStore
	redisClient redis.UniversalClient
	logger      *slog.Logger
}

// NewMirrorTaskHandler 创建任务处理器。
func NewMirrorTaskHandler(remote document.RemoteStore, redisClient redis.UniversalClient, logger *slog.Logger) *MirrorTaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MirrorTaskHandler{
		remote:      remote,
		redisClient: redisClient,
		logger:      logger,
	}
}

// ProcessTask 实现 asynq.Handler。
func (h *MirrorTaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) (retErr error) {
	log := h.logger

	var payload tasks.SectionMirrorPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Error("unmarshal task payload failed", slog.Any("error", err))
		return err
	}

	log = log.With(
		slog.Uint64("user_id", uint64(payload.UserID)),
		slog.String("section", payload.Section),
	)

	defer func() {
		if retErr == nil {
			return
		}
		if !isFinalAsynqAttempt(ctx) {
			return
		}

		notify := SyncNotifyMessage{
			Status:       "error",
			Section:      payload.Section,
			ErrorCode:    errcode.SystemError,
			ErrorMessage: retErr.Error(),
		}
		if err := PublishSyncNotify(ctx, h.redisClient, payload.UserID, notify); err != nil {
			log.Error("publish mirror error notification failed", slog.Any("error", err))
		}
	}()

	if err := h.mirrorSection(ctx, payload); err != nil {
		// 表未建好不值得重试，直接终结任务并通知前端补建表。
		if remotestore.IsSchemaMissing(err) {
			log.Warn("remote table missing, skipping retries", slog.Any("error", err))
			notify := SyncNotifyMessage{
				Status:       "error",
				Section:      payload.Section,
				ErrorCode:    errcode.SchemaMissing,
				ErrorMessage: err.Error(),
			}
			if pubErr := PublishSyncNotify(ctx, h.redisClient, payload.UserID, notify); pubErr != nil {
				log.Error("publish schema missing notification failed", slog.Any("error", pubErr))
			}
			return fmt.Errorf("%w: %s", asynq.SkipRetry, err.Error())
		}
		log.Error("mirror section failed", slog.Any("error", err))
		return err
	}

	notify := SyncNotifyMessage{Status: "synced", Section: payload.Section, ErrorCode: errcode.OK}
	if err := PublishSyncNotify(ctx, h.redisClient, payload.UserID, notify); err != nil {
		log.Error("publish mirror success notification failed", slog.Any("error", err))
	}
	return nil
}

// mirrorSection 按分区名选择远端写入方式：
// profile 单行 upsert，列表分区先删后插整体替换。
func (h *MirrorTaskHandler) mirrorSection(ctx context.Context, payload tasks.SectionMirrorPayload) error {
	doc := payload.Document
	userID := payload.UserID

	switch payload.Section {
	case resume.SectionProfile:
		row := remotestore.ProfileToRow(userID, doc.Profile)
		return h.remote.UpsertProfile(ctx, &row)
	case resume.SectionExperience:
		return h.remote.ReplaceExperiences(ctx, userID, remotestore.ExperiencesToRows(userID, doc.Experience))
	case resume.SectionEducation:
		return h.remote.ReplaceEducation(ctx, userID, remotestore.EducationToRows(userID, doc.Education))
	case resume.SectionSkills:
		return h.remote.ReplaceSkills(ctx, userID, remotestore.SkillsToRows(userID, doc.Skills))
	case resume.SectionLanguages:
		return h.remote.ReplaceLanguages(ctx, userID, remotestore.LanguagesToRows(userID, doc.Languages))
	default:
		// stats 等本地分区不该入队；直接丢弃而不是重试。
		return fmt.Errorf("%w: unknown section %q", asynq.SkipRetry, payload.Section)
	}
}

func isFinalAsynqAttempt(ctx context.Context) bool {
	retried, ok := asynq.GetRetryCount(ctx)
	if !ok {
		return true
	}
	maxRetry, ok := asynq.GetMaxRetry(ctx)
	if !ok {
		return true
	}
	return retried >= maxRetry
}
