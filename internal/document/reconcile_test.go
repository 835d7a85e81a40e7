package document

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"adResume/internal/cache"
	"adResume/internal/database"
	"adResume/internal/resume"
)

func TestGuestLoadPrefersSnapshot(t *testing.T) {
	ctx := context.Background()
	snapshots := newFakeCache()
	cached := resume.Default()
	cached.Profile.Name = "Cached"
	if err := snapshots.Save(ctx, cache.GuestOwner, cached); err != nil {
		t.Fatalf("seed snapshot: %v", err)
	}

	session := NewSession(cache.GuestOwner, 0, false, snapshots, newFakeRemote(), nil, nil)
	doc := session.Load(ctx)

	if doc.Profile.Name != "Cached" {
		t.Errorf("profile name = %q, want cached value", doc.Profile.Name)
	}
	if session.State() != StateReady {
		t.Errorf("state = %v, want ready", session.State())
	}
}

func TestGuestLoadFallsBackToDefaultOnMiss(t *testing.T) {
	session := NewSession(cache.GuestOwner, 0, false, newFakeCache(), newFakeRemote(), nil, nil)
	doc := session.Load(context.Background())

	if doc.Profile.Name != resume.Default().Profile.Name {
		t.Errorf("profile name = %q, want default", doc.Profile.Name)
	}
}

func TestGuestLoadFallsBackToDefaultOnCacheError(t *testing.T) {
	snapshots := newFakeCache()
	snapshots.loadErr = errors.New("redis down")

	session := NewSession(cache.GuestOwner, 0, false, snapshots, newFakeRemote(), nil, nil)
	doc := session.Load(context.Background())

	if doc == nil || doc.Profile.Name != resume.Default().Profile.Name {
		t.Errorf("load should fall back to default, got %+v", doc)
	}
	if session.State() != StateReady {
		t.Errorf("state = %v, want ready", session.State())
	}
}

func TestAuthedLoadOverlaysRemoteRows(t *testing.T) {
	remote := newFakeRemote()
	remote.profile = &database.Profile{UserID: 7, FullName: "Remote Owner", Title: "Engineer"}
	remote.languages = []database.Language{
		{Model: gorm.Model{ID: 1}, UserID: 7, Name: "German", Proficiency: "Basic"},
	}

	session := NewSession(OwnerKey(7), 7, true, newFakeCache(), remote, nil, nil)
	doc := session.Load(context.Background())

	if doc.Profile.Name != "Remote Owner" {
		t.Errorf("profile name = %q, want remote value", doc.Profile.Name)
	}
	if len(doc.Languages) != 1 || doc.Languages[0] != "German (Basic)" {
		t.Errorf("languages = %v, want remote rows", doc.Languages)
	}
	// 远端没有行的分区保留内置值。
	if len(doc.Skills) != len(resume.Default().Skills) {
		t.Errorf("skills = %d entries, want defaults", len(doc.Skills))
	}
}

func TestAuthedLoadKeepsDefaultsWhenTablesEmpty(t *testing.T) {
	// 远端可达但全部为空（刚建好的库）：使用内置简历，不回落缓存。
	remote := newFakeRemote()
	snapshots := newFakeCache()
	stale := resume.Default()
	stale.Profile.Name = "Stale Cache"
	if err := snapshots.Save(context.Background(), OwnerKey(7), stale); err != nil {
		t.Fatalf("seed snapshot: %v", err)
	}

	session := NewSession(OwnerKey(7), 7, true, snapshots, remote, nil, nil)
	doc := session.Load(context.Background())

	if doc.Profile.Name != resume.Default().Profile.Name {
		t.Errorf("profile name = %q, want default", doc.Profile.Name)
	}
}

func TestAuthedLoadFallsBackToSnapshotWhenRemoteUnreachable(t *testing.T) {
	remote := newFakeRemote()
	for _, method := range []string{"GetProfile", "ListExperiences", "ListEducation", "ListSkills", "ListLanguages"} {
		remote.fail(method)
	}

	snapshots := newFakeCache()
	cached := resume.Default()
	cached.Profile.Name = "Cached Owner"
	if err := snapshots.Save(context.Background(), OwnerKey(7), cached); err != nil {
		t.Fatalf("seed snapshot: %v", err)
	}

	session := NewSession(OwnerKey(7), 7, true, snapshots, remote, nil, nil)
	doc := session.Load(context.Background())

	if doc.Profile.Name != "Cached Owner" {
		t.Errorf("profile name = %q, want snapshot fallback", doc.Profile.Name)
	}
}

func TestPartialRemoteFailureKeepsDefaultsForFailedSection(t *testing.T) {
	remote := newFakeRemote()
	remote.profile = &database.Profile{UserID: 7, FullName: "Remote Owner"}
	remote.fail("ListSkills")

	session := NewSession(OwnerKey(7), 7, true, newFakeCache(), remote, nil, nil)
	doc := session.Load(context.Background())

	if doc.Profile.Name != "Remote Owner" {
		t.Errorf("profile name = %q", doc.Profile.Name)
	}
	if len(doc.Skills) != len(resume.Default().Skills) {
		t.Errorf("failed section should keep defaults, got %d skills", len(doc.Skills))
	}
}

func TestStaleLoadResultIsDiscarded(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote()
	remote.profile = &database.Profile{UserID: 7, FullName: "Slow Load"}

	session := NewSession(OwnerKey(7), 7, true, newFakeCache(), remote, nil, nil)
	session.UpdateProfile(ctx, resume.Profile{Name: "Current"})

	// 模拟在本次加载进行期间又有一次更晚的加载启动。
	remote.onGetProfile = func() { session.loadSeq.Add(1) }

	doc := session.Load(ctx)
	if doc.Profile.Name != "Current" {
		t.Errorf("stale load overwrote document: %q", doc.Profile.Name)
	}
	if got := session.Document().Profile.Name; got != "Current" {
		t.Errorf("session document = %q, want untouched", got)
	}
}
