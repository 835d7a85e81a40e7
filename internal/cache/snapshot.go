package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"adResume/internal/resume"
)

// 本地持久缓存：按属主身份存取整份简历快照。
// 键格式 resumeData_<owner>，未登录会话使用 guest 哨兵。

const keyPrefix = "resumeData_"

// GuestOwner 是未登录会话的属主哨兵。
const GuestOwner = "guest"

// kv 是快照读写依赖的最小 Redis 能力，便于测试替换。
type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Snapshots 是快照缓存适配器。读写均为整份文档，不做增量。
type Snapshots struct {
	client kv
	logger *slog.Logger
}

// NewSnapshots 构造快照缓存。
func NewSnapshots(client kv, logger *slog.Logger) *Snapshots {
	if logger == nil {
		logger = slog.Default()
	}
	return &Snapshots{client: client, logger: logger}
}

// Key 返回属主对应的缓存键。
func Key(owner string) string {
	if owner == "" {
		owner = GuestOwner
	}
	return keyPrefix + owner
}

// Load 读取属主的快照。键不存在返回 (nil, nil)；
// 解析失败按缓存未命中处理（记日志后返回 nil），不向上抛错。
func (s *Snapshots) Load(ctx context.Context, owner string) (*resume.Document, error) {
	raw, err := s.client.Get(ctx, Key(owner)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get snapshot %q: %w", Key(owner), err)
	}

	var doc resume.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		s.logger.Warn("corrupt resume snapshot, treating as miss",
			slog.String("key", Key(owner)),
			slog.Any("error", err),
		)
		return nil, nil
	}
	return &doc, nil
}

// Save 覆盖写入属主的快照（每次分区更新都会整份重写）。
func (s *Snapshots) Save(ctx context.Context, owner string, doc *resume.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := s.client.Set(ctx, Key(owner), payload, 0).Err(); err != nil {
		return fmt.Errorf("set snapshot %q: %w", Key(owner), err)
	}
	return nil
}
