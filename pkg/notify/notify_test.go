package notify_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/notify"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within %s", timeout)
}

func TestCenter_TransientNoticeAutoDismisses(t *testing.T) {
	center := notify.NewCenter(notify.WithTTL(30 * time.Millisecond))
	center.Notify(notify.Notice{Level: notify.LevelSuccess, Message: "done", Transient: true})

	if _, ok := center.Current(); !ok {
		t.Fatal("expected notice to be visible")
	}
	waitFor(t, time.Second, func() bool {
		_, ok := center.Current()
		return !ok
	})
}

func TestCenter_PersistentNoticeStays(t *testing.T) {
	center := notify.NewCenter(notify.WithTTL(10 * time.Millisecond))
	center.Notify(notify.Notice{Level: notify.LevelError, Message: "blocked"})

	time.Sleep(40 * time.Millisecond)
	if _, ok := center.Current(); !ok {
		t.Fatal("persistent notice should remain until dismissed")
	}
	center.Dismiss()
	if _, ok := center.Current(); ok {
		t.Fatal("expected notice dismissed")
	}
}

func TestCenter_RepeatRestartsTimerWithoutStacking(t *testing.T) {
	var (
		mu     sync.Mutex
		events []bool
	)
	center := notify.NewCenter(
		notify.WithTTL(200*time.Millisecond),
		notify.WithListener(func(_ notify.Notice, visible bool) {
			mu.Lock()
			events = append(events, visible)
			mu.Unlock()
		}),
	)
	notice := notify.Notice{Level: notify.LevelSuccess, Message: "again", Transient: true}

	center.Notify(notice)
	time.Sleep(120 * time.Millisecond)
	center.Notify(notice)
	time.Sleep(120 * time.Millisecond)

	if _, ok := center.Current(); !ok {
		t.Fatal("repeat should have restarted the dismiss timer")
	}
	if got := len(center.History()); got != 1 {
		t.Fatalf("repeat should not stack, history has %d entries", got)
	}

	waitFor(t, time.Second, func() bool {
		_, ok := center.Current()
		return !ok
	})

	mu.Lock()
	defer mu.Unlock()
	if diff := cmp.Diff([]bool{true, false}, events); diff != "" {
		t.Fatalf("listener events mismatch (-want +got):\n%s", diff)
	}
}

func TestCenter_NewerNoticeSurvivesOldTimer(t *testing.T) {
	center := notify.NewCenter(notify.WithTTL(20 * time.Millisecond))
	center.Notify(notify.Notice{Message: "first", Transient: true})
	center.Notify(notify.Notice{Message: "second"})

	time.Sleep(60 * time.Millisecond)
	current, ok := center.Current()
	if !ok || current.Message != "second" {
		t.Fatalf("expected second notice visible, got %+v (%v)", current, ok)
	}
}

func TestAnswer(t *testing.T) {
	yes, err := notify.Answer(true).Confirm(context.Background(), "sure?")
	if err != nil || !yes {
		t.Fatalf("expected yes, got %v %v", yes, err)
	}
	no, _ := notify.Answer(false).Confirm(context.Background(), "sure?")
	if no {
		t.Fatal("expected no")
	}
}
