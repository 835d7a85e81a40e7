package document

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/hibiken/asynq"

	"adResume/internal/database"
	"adResume/internal/resume"
	"adResume/internal/tasks"
)

// State 表示会话文档的加载状态。错误不会进入状态机：
// 所有失败路径都会在 Load 内部回落到某份合法文档。
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

// SnapshotCache 是会话依赖的本地持久缓存能力。
type SnapshotCache interface {
	Load(ctx context.Context, owner string) (*resume.Document, error)
	Save(ctx context.Context, owner string, doc *resume.Document) error
}

// RemoteStore 是会话依赖的远端表存储能力（见 internal/remotestore）。
type RemoteStore interface {
	GetProfile(ctx context.Context, userID uint) (*database.Profile, error)
	UpsertProfile(ctx context.Context, profile *database.Profile) error
	ListExperiences(ctx context.Context, userID uint) ([]database.Experience, error)
	ReplaceExperiences(ctx context.Context, userID uint, rows []database.Experience) error
	ListEducation(ctx context.Context, userID uint) ([]database.Education, error)
	ReplaceEducation(ctx context.Context, userID uint, rows []database.Education) error
	ListSkills(ctx context.Context, userID uint) ([]database.Skill, error)
	ReplaceSkills(ctx context.Context, userID uint, rows []database.Skill) error
	ListLanguages(ctx context.Context, userID uint) ([]database.Language, error)
	ReplaceLanguages(ctx context.Context, userID uint, rows []database.Language) error
	RecordSyncRun(ctx context.Context, userID uint, success bool, report any) error
}

// TaskEnqueuer 入队异步镜像任务，*asynq.Client 直接满足。
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Session 持有一个属主身份的内存文档，是文档唯一的变更入口。
// 分区更新同步写内存与快照缓存，登录态下再尽力异步镜像到远端表。
type Session struct {
	owner  string
	userID uint
	authed bool

	mu      sync.Mutex
	state   State
	doc     *resume.Document
	loadSeq atomic.Uint64

	cache  SnapshotCache
	remote RemoteStore
	queue  TaskEnqueuer
	logger *slog.Logger
}

// NewSession 构造会话。queue 可为 nil（此时跳过异步镜像）。
func NewSession(owner string, userID uint, authed bool, cache SnapshotCache, remote RemoteStore, queue TaskEnqueuer, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		owner:  owner,
		userID: userID,
		authed: authed,
		state:  StateUninitialized,
		doc:    resume.Default(),
		cache:  cache,
		remote: remote,
		queue:  queue,
		logger: logger.With(slog.String("owner", owner)),
	}
}

// Owner 返回会话的属主键（guest 或用户 ID 文本）。
func (s *Session) Owner() string { return s.owner }

// Authenticated 返回会话是否为登录态。
func (s *Session) Authenticated() bool { return s.authed }

// State 返回当前加载状态。
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Document 返回内存文档的深拷贝。
func (s *Session) Document() *resume.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// UpdateProfile 整体替换 profile 分区。
func (s *Session) UpdateProfile(ctx context.Context, profile resume.Profile) {
	s.apply(ctx, resume.SectionProfile, func(d *resume.Document) { d.Profile = profile })
}

// UpdateStats 整体替换 stats 分区（仅本地，不触发远端镜像）。
func (s *Session) UpdateStats(ctx context.Context, stats []resume.Stat) {
	s.apply(ctx, resume.SectionStats, func(d *resume.Document) { d.Stats = stats })
}

// UpdateExperience 整体替换经历分区。
func (s *Session) UpdateExperience(ctx context.Context, entries []resume.Experience) {
	s.apply(ctx, resume.SectionExperience, func(d *resume.Document) { d.Experience = entries })
}

// UpdateEducation 整体替换教育分区。
func (s *Session) UpdateEducation(ctx context.Context, entries []resume.Education) {
	s.apply(ctx, resume.SectionEducation, func(d *resume.Document) { d.Education = entries })
}

// UpdateSkills 整体替换技能分区。
func (s *Session) UpdateSkills(ctx context.Context, entries []resume.Skill) {
	s.apply(ctx, resume.SectionSkills, func(d *resume.Document) { d.Skills = entries })
}

// UpdateLanguages 整体替换语言分区。
func (s *Session) UpdateLanguages(ctx context.Context, entries []string) {
	s.apply(ctx, resume.SectionLanguages, func(d *resume.Document) { d.Languages = entries })
}

// ResetToDefault 把内存文档重置为内置简历并写缓存；远端表保持不动。
func (s *Session) ResetToDefault(ctx context.Context) {
	s.mu.Lock()
	s.doc = resume.Default()
	snapshot := s.doc.Clone()
	s.mu.Unlock()

	s.persistSnapshot(ctx, snapshot)
}

// apply 是所有分区更新的公共路径：
// 1) 同步替换内存分区（总是成功）；
// 2) 整份快照写本地缓存（失败只记日志，内存态仍是会话内的事实）；
// 3) 登录态下把分区镜像任务入队，远端写由 worker 尽力完成。
// 调用方拿不到错误——只有显式全量同步才向用户暴露成败。
func (s *Session) apply(ctx context.Context, section string, mutate func(*resume.Document)) {
	s.mu.Lock()
	mutate(s.doc)
	snapshot := s.doc.Clone()
	s.mu.Unlock()

	s.persistSnapshot(ctx, snapshot)
	s.enqueueMirror(section, snapshot)
}

func (s *Session) persistSnapshot(ctx context.Context, snapshot *resume.Document) {
	if err := s.cache.Save(ctx, s.owner, snapshot); err != nil {
		s.logger.Error("save snapshot failed", slog.Any("error", err))
	}
}

func (s *Session) enqueueMirror(section string, snapshot *resume.Document) {
	if !s.authed || s.queue == nil {
		return
	}
	if section == resume.SectionStats {
		// stats 没有远端表表示。
		return
	}

	task, err := tasks.NewSectionMirrorTask(s.userID, section, *snapshot, "")
	if err != nil {
		s.logger.Error("build mirror task failed", slog.String("section", section), slog.Any("error", err))
		return
	}
	if _, err := s.queue.Enqueue(task, asynq.MaxRetry(3)); err != nil {
		s.logger.Error("enqueue mirror task failed", slog.String("section", section), slog.Any("error", err))
	}
}
