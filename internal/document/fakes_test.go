package document

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"

	"adResume/internal/database"
	"adResume/internal/remotestore"
	"adResume/internal/resume"
	"adResume/internal/tasks"
)

func notFoundErr() error {
	return &remotestore.Error{Kind: remotestore.KindNotFound, Op: "get profile", Err: gorm.ErrRecordNotFound}
}

// fakeCache 是内存版的快照缓存。
type fakeCache struct {
	mu      sync.Mutex
	docs    map[string]*resume.Document
	loadErr error
	saveErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{docs: map[string]*resume.Document{}}
}

func (f *fakeCache) Load(_ context.Context, owner string) (*resume.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	doc, ok := f.docs[owner]
	if !ok {
		return nil, nil
	}
	return doc.Clone(), nil
}

func (f *fakeCache) Save(_ context.Context, owner string, doc *resume.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.docs[owner] = doc.Clone()
	return nil
}

// fakeRemote 以内存行模拟五张远端表，可按方法名注入错误。
type fakeRemote struct {
	mu sync.Mutex

	profile     *database.Profile
	experiences []database.Experience
	education   []database.Education
	skills      []database.Skill
	languages   []database.Language

	failures map[string]error
	calls    map[string]int

	syncRuns []recordedSyncRun

	// onGetProfile 在 GetProfile 入口处回调（用于模拟加载竞态）。
	onGetProfile func()
}

type recordedSyncRun struct {
	userID  uint
	success bool
	report  string
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		failures: map[string]error{},
		calls:    map[string]int{},
	}
}

func (f *fakeRemote) fail(method string) {
	f.mu.Lock()
	f.failures[method] = errors.New(method + " unavailable")
	f.mu.Unlock()
}

func (f *fakeRemote) callCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeRemote) enter(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[method]++
	return f.failures[method]
}

func (f *fakeRemote) GetProfile(_ context.Context, _ uint) (*database.Profile, error) {
	if f.onGetProfile != nil {
		f.onGetProfile()
	}
	if err := f.enter("GetProfile"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.profile == nil {
		return nil, notFoundErr()
	}
	return f.profile, nil
}

func (f *fakeRemote) UpsertProfile(_ context.Context, profile *database.Profile) error {
	if err := f.enter("UpsertProfile"); err != nil {
		return err
	}
	f.mu.Lock()
	f.profile = profile
	f.mu.Unlock()
	return nil
}

func (f *fakeRemote) ListExperiences(_ context.Context, _ uint) ([]database.Experience, error) {
	if err := f.enter("ListExperiences"); err != nil {
		return nil, err
	}
	return f.experiences, nil
}

func (f *fakeRemote) ReplaceExperiences(_ context.Context, _ uint, rows []database.Experience) error {
	if err := f.enter("ReplaceExperiences"); err != nil {
		return err
	}
	f.mu.Lock()
	f.experiences = rows
	f.mu.Unlock()
	return nil
}

func (f *fakeRemote) ListEducation(_ context.Context, _ uint) ([]database.Education, error) {
	if err := f.enter("ListEducation"); err != nil {
		return nil, err
	}
	return f.education, nil
}

func (f *fakeRemote) ReplaceEducation(_ context.Context, _ uint, rows []database.Education) error {
	if err := f.enter("ReplaceEducation"); err != nil {
		return err
	}
	f.mu.Lock()
	f.education = rows
	f.mu.Unlock()
	return nil
}

func (f *fakeRemote) ListSkills(_ context.Context, _ uint) ([]database.Skill, error) {
	if err := f.enter("ListSkills"); err != nil {
		return nil, err
	}
	return f.skills, nil
}

func (f *fakeRemote) ReplaceSkills(_ context.Context, _ uint, rows []database.Skill) error {
	if err := f.enter("ReplaceSkills"); err != nil {
		return err
	}
	f.mu.Lock()
	f.skills = rows
	f.mu.Unlock()
	return nil
}

func (f *fakeRemote) ListLanguages(_ context.Context, _ uint) ([]database.Language, error) {
	if err := f.enter("ListLanguages"); err != nil {
		return nil, err
	}
	return f.languages, nil
}

func (f *fakeRemote) ReplaceLanguages(_ context.Context, _ uint, rows []database.Language) error {
	if err := f.enter("ReplaceLanguages"); err != nil {
		return err
	}
	f.mu.Lock()
	f.languages = rows
	f.mu.Unlock()
	return nil
}

func (f *fakeRemote) RecordSyncRun(_ context.Context, userID uint, success bool, report any) error {
	if err := f.enter("RecordSyncRun"); err != nil {
		return err
	}
	payload, _ := json.Marshal(report)
	f.mu.Lock()
	f.syncRuns = append(f.syncRuns, recordedSyncRun{userID: userID, success: success, report: string(payload)})
	f.mu.Unlock()
	return nil
}

// fakeQueue 记录入队的镜像任务。
type fakeQueue struct {
	mu       sync.Mutex
	payloads []tasks.SectionMirrorPayload
	err      error
}

func (f *fakeQueue) Enqueue(task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var payload tasks.SectionMirrorPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return nil, err
	}
	f.payloads = append(f.payloads, payload)
	return &asynq.TaskInfo{}, nil
}

func (f *fakeQueue) sections() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.payloads))
	for _, p := range f.payloads {
		out = append(out, p.Section)
	}
	return out
}
