package monitor

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/young1lin/tabline/internal/host"
)

func writeSnapshot(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
}

// nextSnapshot waits for a snapshot. Errors from reading a half-written
// file are skipped.
func nextSnapshot(t *testing.T, w WatcherInterface) host.Snapshot {
	t.Helper()
	timeout := time.After(3 * time.Second)
	for {
		select {
		case s := <-w.Snapshots():
			return s
		case <-w.Errors():
		case <-timeout:
			t.Fatal("timed out waiting for snapshot")
		}
	}
}

func TestTestWatcher(t *testing.T) {
	tw := NewTestWatcher()

	go tw.SendSnapshot(host.Snapshot{Mode: "locked"})
	select {
	case s := <-tw.Snapshots():
		if s.Mode != "locked" {
			t.Errorf("Mode = %q, want locked", s.Mode)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("did not receive sent snapshot")
	}

	go tw.SendError(os.ErrNotExist)
	select {
	case err := <-tw.Errors():
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist, got %v", err)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("did not receive sent error")
	}

	if err := tw.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := tw.Close(); err != nil {
		t.Errorf("double Close() error = %v", err)
	}
	// Sends after close are dropped
	tw.SendSnapshot(host.Snapshot{})
	tw.SendError(os.ErrClosed)
}

func TestWatcherInitialSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	writeSnapshot(t, path, `{"mode":"pane","tabs":[{"position":0,"name":"a","active":true}]}`)

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	s := nextSnapshot(t, w)
	if s.Mode != "pane" || len(s.Tabs) != 1 {
		t.Errorf("snapshot = %+v", s)
	}
}

func TestWatcherDetectsChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	writeSnapshot(t, path, `{"tabs":[]}`)

	w, err := newWatcher(path, OSFileSystem{}, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("newWatcher() error = %v", err)
	}
	defer w.Close()
	nextSnapshot(t, w)

	writeSnapshot(t, path, `{"mode":"locked","tabs":[{"position":0,"name":"a"},{"position":1,"name":"b"}]}`)
	s := nextSnapshot(t, w)
	if s.Mode != "locked" || len(s.Tabs) != 2 {
		t.Errorf("updated snapshot = %+v", s)
	}
}

func TestWatcherFileCreatedLater(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	w, err := newWatcher(path, OSFileSystem{}, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("newWatcher() error = %v", err)
	}
	defer w.Close()

	writeSnapshot(t, path, `{"mode":"tmux","tabs":[]}`)
	if s := nextSnapshot(t, w); s.Mode != "tmux" {
		t.Errorf("snapshot = %+v", s)
	}
}

func TestWatcherInvalidSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	writeSnapshot(t, path, `{"mode":`)

	w, err := newWatcher(path, OSFileSystem{}, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("newWatcher() error = %v", err)
	}
	defer w.Close()

	select {
	case err := <-w.Errors():
		if err == nil {
			t.Error("expected a parse error")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for error")
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	if _, err := NewWatcher("/nonexistent/dir/state.json"); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

type failingOpenFS struct {
	info os.FileInfo
}

func (f failingOpenFS) Stat(string) (os.FileInfo, error) { return f.info, nil }

func (failingOpenFS) Open(string) (io.ReadCloser, error) { return nil, os.ErrPermission }

func TestWatcherOpenError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	writeSnapshot(t, path, `{}`)
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	w, err := newWatcher(path, failingOpenFS{info: info}, time.Hour)
	if err != nil {
		t.Fatalf("newWatcher() error = %v", err)
	}
	defer w.Close()

	select {
	case err := <-w.Errors():
		if !errors.Is(err, os.ErrPermission) {
			t.Errorf("error = %v, want permission error", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for error")
	}
}

func TestWatcherClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("double Close() error = %v", err)
	}

	select {
	case _, ok := <-w.Snapshots():
		if ok {
			t.Error("expected closed snapshot channel")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("snapshot channel not closed")
	}
}
