package notify

import (
	"fmt"
	"testing"
	"time"
)

func TestPushAndRecent(t *testing.T) {
	center := NewCenter()
	center.Push(SeverityInfo, "listing loaded")
	center.Push(SeverityError, "email must be an email")

	recent := center.Recent(0, 0)
	if len(recent) != 2 {
		t.Fatalf("Recent = %d notices, want 2", len(recent))
	}
	if recent[0].Text != "listing loaded" || recent[1].Severity != SeverityError {
		t.Fatalf("Recent = %#v", recent)
	}
}

func TestPushIgnoresEmptyText(t *testing.T) {
	center := NewCenter()
	center.Push(SeverityInfo, "")

	if got := center.Recent(0, 0); len(got) != 0 {
		t.Fatalf("Recent = %#v, want empty", got)
	}
}

func TestCapacityDropsOldest(t *testing.T) {
	center := NewCenter()
	for i := 0; i < defaultCapacity+5; i++ {
		center.Push(SeverityInfo, fmt.Sprintf("notice %d", i))
	}

	recent := center.Recent(0, 0)
	if len(recent) != defaultCapacity {
		t.Fatalf("kept %d notices, want %d", len(recent), defaultCapacity)
	}
	if recent[0].Text != "notice 5" {
		t.Fatalf("oldest kept = %q, want notice 5", recent[0].Text)
	}
}

func TestRecentLimitsCount(t *testing.T) {
	center := NewCenter()
	center.Push(SeverityInfo, "one")
	center.Push(SeverityInfo, "two")
	center.Push(SeverityInfo, "three")

	recent := center.Recent(2, 0)
	if len(recent) != 2 || recent[0].Text != "two" || recent[1].Text != "three" {
		t.Fatalf("Recent(2) = %#v, want the two newest", recent)
	}
}

func TestRecentAgeWindow(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	center := NewCenter()
	center.now = func() time.Time { return now }

	center.Push(SeverityInfo, "stale")
	now = now.Add(time.Minute)
	center.Push(SeverityInfo, "fresh")

	recent := center.Recent(0, 30*time.Second)
	if len(recent) != 1 || recent[0].Text != "fresh" {
		t.Fatalf("Recent = %#v, want only the fresh notice", recent)
	}
}

func TestNotifyMapsSeverities(t *testing.T) {
	center := NewCenter()
	center.Notify("error", "bad request")
	center.Notify("warning", "validation error")
	center.Notify("something else", "hello")

	recent := center.Recent(0, 0)
	if len(recent) != 3 {
		t.Fatalf("Recent = %#v", recent)
	}
	want := []Severity{SeverityError, SeverityWarning, SeverityInfo}
	for i, severity := range want {
		if recent[i].Severity != severity {
			t.Fatalf("notice %d severity = %q, want %q", i, recent[i].Severity, severity)
		}
	}
}
