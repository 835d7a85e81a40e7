package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"adResume/internal/database"
	"adResume/internal/remotestore"
	"adResume/internal/resume"
	"adResume/internal/tasks"
)

// mirrorFakeStore 只为镜像测试服务：记录写入并可注入错误。
type mirrorFakeStore struct {
	profile     *database.Profile
	experiences []database.Experience

	replaceErr error
	upsertErr  error
}

func (f *mirrorFakeStore) GetProfile(context.Context, uint) (*database.Profile, error) {
	return f.profile, nil
}

func (f *mirrorFakeStore) UpsertProfile(_ context.Context, profile *database.Profile) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.profile = profile
	return nil
}

func (f *mirrorFakeStore) ListExperiences(context.Context, uint) ([]database.Experience, error) {
	return f.experiences, nil
}

func (f *mirrorFakeStore) ReplaceExperiences(_ context.Context, _ uint, rows []database.Experience) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.experiences = rows
	return nil
}

func (f *mirrorFakeStore) ListEducation(context.Context, uint) ([]database.Education, error) {
	return nil, nil
}

func (f *mirrorFakeStore) ReplaceEducation(context.Context, uint, []database.Education) error {
	return f.replaceErr
}

func (f *mirrorFakeStore) ListSkills(context.Context, uint) ([]database.Skill, error) {
	return nil, nil
}

func (f *mirrorFakeStore) ReplaceSkills(context.Context, uint, []database.Skill) error {
	return f.replaceErr
}

func (f *mirrorFakeStore) ListLanguages(context.Context, uint) ([]database.Language, error) {
	return nil, nil
}

func (f *mirrorFakeStore) ReplaceLanguages(context.Context, uint, []database.Language) error {
	return f.replaceErr
}

func (f *mirrorFakeStore) RecordSyncRun(context.Context, uint, bool, any) error {
	return nil
}

// 通知走真实客户端但指向无效地址：发布失败只记日志，不影响任务结果。
func newNotifyClient() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
}

func newMirrorTask(t *testing.T, section string) *asynq.Task {
	t.Helper()
	task, err := tasks.NewSectionMirrorTask(7, section, *resume.Default(), "")
	if err != nil {
		t.Fatalf("build task: %v", err)
	}
	return task
}

func TestProcessTaskMirrorsProfile(t *testing.T) {
	store := &mirrorFakeStore{}
	handler := NewMirrorTaskHandler(store, newNotifyClient(), nil)

	if err := handler.ProcessTask(context.Background(), newMirrorTask(t, resume.SectionProfile)); err != nil {
		t.Fatalf("process task: %v", err)
	}
	if store.profile == nil || store.profile.FullName != resume.Default().Profile.Name {
		t.Errorf("profile not mirrored: %+v", store.profile)
	}
}

func TestProcessTaskMirrorsExperience(t *testing.T) {
	store := &mirrorFakeStore{}
	handler := NewMirrorTaskHandler(store, newNotifyClient(), nil)

	if err := handler.ProcessTask(context.Background(), newMirrorTask(t, resume.SectionExperience)); err != nil {
		t.Fatalf("process task: %v", err)
	}
	if len(store.experiences) != len(resume.Default().Experience) {
		t.Errorf("experiences mirrored = %d", len(store.experiences))
	}
}

func TestProcessTaskSchemaMissingSkipsRetry(t *testing.T) {
	store := &mirrorFakeStore{
		replaceErr: &remotestore.Error{Kind: remotestore.KindSchemaMissing, Op: "insert experiences"},
	}
	handler := NewMirrorTaskHandler(store, newNotifyClient(), nil)

	err := handler.ProcessTask(context.Background(), newMirrorTask(t, resume.SectionExperience))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry, got %v", err)
	}
}

func TestProcessTaskUnknownSectionSkipsRetry(t *testing.T) {
	handler := NewMirrorTaskHandler(&mirrorFakeStore{}, newNotifyClient(), nil)

	err := handler.ProcessTask(context.Background(), newMirrorTask(t, resume.SectionStats))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry for local-only section, got %v", err)
	}
}

func TestProcessTaskRetryableFailure(t *testing.T) {
	store := &mirrorFakeStore{replaceErr: errors.New("connection reset")}
	handler := NewMirrorTaskHandler(store, newNotifyClient(), nil)

	err := handler.ProcessTask(context.Background(), newMirrorTask(t, resume.SectionExperience))
	if err == nil {
		t.Fatal("expected error for transient failure")
	}
	if errors.Is(err, asynq.SkipRetry) {
		t.Fatal("transient failure must stay retryable")
	}
}
