package document

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"adResume/internal/cache"
)

// Registry 按属主身份缓存会话，供 HTTP 层复用。
// 同一属主的请求共享同一个 Session（内存文档即会话事实）。
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session

	cache  SnapshotCache
	remote RemoteStore
	queue  TaskEnqueuer
	logger *slog.Logger
}

// NewRegistry 构造会话注册表。
func NewRegistry(snapshotCache SnapshotCache, remote RemoteStore, queue TaskEnqueuer, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		sessions: make(map[string]*Session),
		cache:    snapshotCache,
		remote:   remote,
		queue:    queue,
		logger:   logger,
	}
}

// Guest 返回访客会话，首次访问时加载（缓存或内置简历）。
func (r *Registry) Guest(ctx context.Context) *Session {
	return r.getOrCreate(ctx, cache.GuestOwner, 0, false)
}

// ForUser 返回登录用户的会话，首次访问时从远端表加载。
func (r *Registry) ForUser(ctx context.Context, userID uint) *Session {
	return r.getOrCreate(ctx, OwnerKey(userID), userID, true)
}

// Drop 丢弃属主的会话（登出时调用，下一次访问会重新加载）。
func (r *Registry) Drop(owner string) {
	r.mu.Lock()
	delete(r.sessions, owner)
	r.mu.Unlock()
}

// OwnerKey 返回登录用户的属主键。
func OwnerKey(userID uint) string {
	return strconv.FormatUint(uint64(userID), 10)
}

func (r *Registry) getOrCreate(ctx context.Context, owner string, userID uint, authed bool) *Session {
	r.mu.Lock()
	session, ok := r.sessions[owner]
	if !ok {
		session = NewSession(owner, userID, authed, r.cache, r.remote, r.queue, r.logger)
		r.sessions[owner] = session
	}
	r.mu.Unlock()

	if !ok {
		session.Load(ctx)
	}
	return session
}
