package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestFile_RunsTaskAfterChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "form-structure.json")
	if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	ran := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- File(ctx, path, func(context.Context) error {
			runs.Add(1)
			select {
			case ran <- struct{}{}:
			default:
			}
			return nil
		}, Options{Debounce: 20 * time.Millisecond})
	}()

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for waiting := true; waiting; {
		select {
		case <-ran:
			waiting = false
		case <-tick.C:
			// keep touching the file until the watcher is attached
			if err := os.WriteFile(path, []byte(`[{"id":0,"type":"text"}]`), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
		case <-deadline:
			t.Fatalf("task never ran")
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("watch returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("watch did not stop after cancel")
	}
	if runs.Load() == 0 {
		t.Fatalf("expected at least one run")
	}
}

func TestFile_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "form.json")
	if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 600*time.Millisecond)
	defer cancel()

	var runs atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- File(ctx, path, func(context.Context) error {
			runs.Add(1)
			return nil
		}, Options{Debounce: 20 * time.Millisecond})
	}()

	for i := 0; i < 3; i++ {
		time.Sleep(100 * time.Millisecond)
		if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte("[]"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	if err := <-done; err != nil {
		t.Fatalf("watch returned %v", err)
	}
	if got := runs.Load(); got != 0 {
		t.Fatalf("sibling writes triggered %d runs", got)
	}
}

func TestFile_MissingDirectory(t *testing.T) {
	err := File(context.Background(), filepath.Join(t.TempDir(), "nope", "form.json"), func(context.Context) error { return nil }, Options{})
	if err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
