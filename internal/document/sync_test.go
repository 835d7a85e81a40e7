package document

import (
	"context"
	"strings"
	"testing"

	"adResume/internal/cache"
	"adResume/internal/resume"
)

func TestSyncAllRejectsGuest(t *testing.T) {
	session := NewSession(cache.GuestOwner, 0, false, newFakeCache(), newFakeRemote(), nil, nil)

	success, report := session.SyncAll(context.Background())
	if success {
		t.Error("guest sync should fail")
	}
	if len(report) != 1 || report[0].Error == "" {
		t.Errorf("report = %+v", report)
	}
}

func TestSyncAllPushesEverySection(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote()
	session := NewSession(OwnerKey(7), 7, true, newFakeCache(), remote, nil, nil)

	success, report := session.SyncAll(ctx)
	if !success {
		t.Fatalf("sync failed: %+v", report)
	}
	if len(report) != len(resume.RemoteSections) {
		t.Fatalf("report has %d entries, want %d", len(report), len(resume.RemoteSections))
	}
	for _, result := range report {
		if !result.OK {
			t.Errorf("section %s failed: %s", result.Section, result.Error)
		}
	}

	if remote.profile == nil || remote.profile.FullName != resume.Default().Profile.Name {
		t.Errorf("profile not pushed: %+v", remote.profile)
	}
	if len(remote.experiences) != len(resume.Default().Experience) {
		t.Errorf("experiences pushed = %d", len(remote.experiences))
	}

	if len(remote.syncRuns) != 1 || !remote.syncRuns[0].success {
		t.Fatalf("sync runs = %+v", remote.syncRuns)
	}
}

func TestSyncAllContinuesPastSectionFailure(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote()
	remote.fail("ReplaceEducation")
	session := NewSession(OwnerKey(7), 7, true, newFakeCache(), remote, nil, nil)

	success, report := session.SyncAll(ctx)
	if success {
		t.Error("aggregate success should be false")
	}
	if len(report) != len(resume.RemoteSections) {
		t.Fatalf("report has %d entries, want all sections attempted", len(report))
	}

	var educationFailed bool
	for _, result := range report {
		switch result.Section {
		case resume.SectionEducation:
			educationFailed = !result.OK && result.Error != ""
		default:
			if !result.OK {
				t.Errorf("section %s should have succeeded: %s", result.Section, result.Error)
			}
		}
	}
	if !educationFailed {
		t.Error("education failure missing from report")
	}

	// 失败分区之后的分区仍然被推送。
	if n := remote.callCount("ReplaceLanguages"); n != 1 {
		t.Errorf("ReplaceLanguages called %d times", n)
	}

	if len(remote.syncRuns) != 1 {
		t.Fatalf("sync runs = %+v", remote.syncRuns)
	}
	run := remote.syncRuns[0]
	if run.success || !strings.Contains(run.report, resume.SectionEducation) {
		t.Errorf("audit record mismatch: %+v", run)
	}
}

func TestSyncAllIgnoresAuditFailure(t *testing.T) {
	remote := newFakeRemote()
	remote.fail("RecordSyncRun")
	session := NewSession(OwnerKey(7), 7, true, newFakeCache(), remote, nil, nil)

	success, _ := session.SyncAll(context.Background())
	if !success {
		t.Error("audit failure must not affect sync result")
	}
}
