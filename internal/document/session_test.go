package document

import (
	"context"
	"errors"
	"testing"

	"adResume/internal/cache"
	"adResume/internal/resume"
)

func TestUpdateReplacesSectionAndWritesSnapshot(t *testing.T) {
	ctx := context.Background()
	snapshots := newFakeCache()
	session := NewSession(cache.GuestOwner, 0, false, snapshots, newFakeRemote(), nil, nil)

	profile := resume.Profile{Name: "Jane", Title: "Analyst"}
	session.UpdateProfile(ctx, profile)

	if got := session.Document().Profile; got != profile {
		t.Errorf("profile = %+v, want %+v", got, profile)
	}

	cached, err := snapshots.Load(ctx, cache.GuestOwner)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if cached == nil || cached.Profile != profile {
		t.Errorf("snapshot not updated: %+v", cached)
	}
}

func TestLastUpdateWins(t *testing.T) {
	ctx := context.Background()
	session := NewSession(cache.GuestOwner, 0, false, newFakeCache(), newFakeRemote(), nil, nil)

	session.UpdateLanguages(ctx, []string{"English"})
	session.UpdateLanguages(ctx, []string{"Hindi", "Punjabi"})

	got := session.Document().Languages
	if len(got) != 2 || got[0] != "Hindi" {
		t.Errorf("languages = %v, want latest update", got)
	}
}

func TestGuestUpdateDoesNotTouchRemote(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote()
	queue := &fakeQueue{}
	session := NewSession(cache.GuestOwner, 0, false, newFakeCache(), remote, queue, nil)

	session.UpdateProfile(ctx, resume.Profile{Name: "Guest"})
	session.UpdateSkills(ctx, nil)

	if n := remote.callCount("UpsertProfile"); n != 0 {
		t.Errorf("remote upsert called %d times for guest", n)
	}
	if got := queue.sections(); len(got) != 0 {
		t.Errorf("mirror tasks enqueued for guest: %v", got)
	}
}

func TestAuthedUpdateEnqueuesMirrorTask(t *testing.T) {
	ctx := context.Background()
	queue := &fakeQueue{}
	session := NewSession(OwnerKey(7), 7, true, newFakeCache(), newFakeRemote(), queue, nil)

	session.UpdateProfile(ctx, resume.Profile{Name: "Owner"})
	session.UpdateExperience(ctx, nil)

	got := queue.sections()
	if len(got) != 2 || got[0] != resume.SectionProfile || got[1] != resume.SectionExperience {
		t.Fatalf("enqueued sections = %v", got)
	}
	if queue.payloads[0].UserID != 7 {
		t.Errorf("payload user = %d, want 7", queue.payloads[0].UserID)
	}
}

func TestStatsUpdateStaysLocal(t *testing.T) {
	ctx := context.Background()
	queue := &fakeQueue{}
	session := NewSession(OwnerKey(7), 7, true, newFakeCache(), newFakeRemote(), queue, nil)

	session.UpdateStats(ctx, []resume.Stat{{ID: "stat1", Value: "10", Label: "x", Icon: resume.IconGauge}})

	if got := queue.sections(); len(got) != 0 {
		t.Errorf("stats update enqueued mirror tasks: %v", got)
	}
}

func TestUpdateSurvivesCacheFailure(t *testing.T) {
	ctx := context.Background()
	snapshots := newFakeCache()
	snapshots.saveErr = errors.New("redis down")
	session := NewSession(cache.GuestOwner, 0, false, snapshots, newFakeRemote(), nil, nil)

	session.UpdateProfile(ctx, resume.Profile{Name: "Jane"})

	// 缓存写失败只记日志，内存态仍然是会话内的事实。
	if got := session.Document().Profile.Name; got != "Jane" {
		t.Errorf("profile name = %q", got)
	}
}

func TestResetToDefaultLeavesRemoteUntouched(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote()
	snapshots := newFakeCache()
	session := NewSession(OwnerKey(7), 7, true, snapshots, remote, &fakeQueue{}, nil)

	session.UpdateProfile(ctx, resume.Profile{Name: "Owner"})
	session.ResetToDefault(ctx)

	if got := session.Document().Profile.Name; got != resume.Default().Profile.Name {
		t.Errorf("profile name = %q, want default", got)
	}

	cached, err := snapshots.Load(ctx, OwnerKey(7))
	if err != nil || cached == nil {
		t.Fatalf("snapshot missing after reset: %v", err)
	}
	if cached.Profile.Name != resume.Default().Profile.Name {
		t.Errorf("snapshot profile = %q, want default", cached.Profile.Name)
	}

	for _, method := range []string{"UpsertProfile", "ReplaceExperiences", "ReplaceEducation", "ReplaceSkills", "ReplaceLanguages"} {
		if n := remote.callCount(method); n != 0 {
			t.Errorf("%s called %d times during reset", method, n)
		}
	}
}
