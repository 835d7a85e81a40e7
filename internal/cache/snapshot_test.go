package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"adResume/internal/resume"
)

// fakeKV 用 map 模拟快照读写依赖的 Redis 能力。
type fakeKV struct {
	values map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: map[string]string{}}
}

func (f *fakeKV) Get(_ context.Context, key string) *redis.StringCmd {
	val, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (f *fakeKV) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func TestKey(t *testing.T) {
	if got := Key("7"); got != "resumeData_7" {
		t.Errorf("Key(7) = %q", got)
	}
	if got := Key(""); got != "resumeData_guest" {
		t.Errorf("Key(\"\") = %q, want guest sentinel", got)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	kvStore := newFakeKV()
	snapshots := NewSnapshots(kvStore, nil)

	doc := resume.Default()
	doc.Profile.Name = "Round Trip"
	if err := snapshots.Save(ctx, GuestOwner, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := snapshots.Load(ctx, GuestOwner)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || got.Profile.Name != "Round Trip" {
		t.Errorf("loaded doc = %+v", got)
	}
	if len(got.Experience) != len(doc.Experience) {
		t.Errorf("experience entries = %d, want %d", len(got.Experience), len(doc.Experience))
	}
}

func TestLoadMissingKeyReturnsNil(t *testing.T) {
	snapshots := NewSnapshots(newFakeKV(), nil)

	doc, err := snapshots.Load(context.Background(), "7")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc != nil {
		t.Errorf("expected nil on miss, got %+v", doc)
	}
}

func TestLoadCorruptSnapshotTreatedAsMiss(t *testing.T) {
	kvStore := newFakeKV()
	kvStore.values[Key("7")] = "{not json"
	snapshots := NewSnapshots(kvStore, nil)

	doc, err := snapshots.Load(context.Background(), "7")
	if err != nil {
		t.Fatalf("corrupt snapshot should not error: %v", err)
	}
	if doc != nil {
		t.Errorf("expected nil on corrupt payload, got %+v", doc)
	}
}
