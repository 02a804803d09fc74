// Package monitor watches a snapshot file and emits its contents whenever
// it changes
package monitor

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/young1lin/tabline/internal/host"
)

// PollInterval is how often the file is checked when no events arrive
const PollInterval = 500 * time.Millisecond

// WatcherInterface defines the interface for snapshot watchers
type WatcherInterface interface {
	Snapshots() <-chan host.Snapshot
	Errors() <-chan error
	Close() error
}

// Watcher monitors a snapshot file for changes
type Watcher struct {
	watcher   *fsnotify.Watcher
	fs        FileSystem
	filePath  string
	modTime   time.Time
	size      int64
	snapsChan chan host.Snapshot
	errorChan chan error
	done      chan struct{}
	closeOnce sync.Once
}

// NewWatcher starts watching filePath. The current contents, if the file
// exists, are emitted first.
func NewWatcher(filePath string) (*Watcher, error) {
	return newWatcher(filePath, OSFileSystem{}, PollInterval)
}

func newWatcher(filePath string, fs FileSystem, interval time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory so atomic replaces (write + rename) are seen
	if err := fsWatcher.Add(filepath.Dir(filePath)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:   fsWatcher,
		fs:        fs,
		filePath:  filepath.Clean(filePath),
		snapsChan: make(chan host.Snapshot, 16),
		errorChan: make(chan error, 10),
		done:      make(chan struct{}),
	}

	go w.watch(interval)

	return w, nil
}

// watch runs the file watching loop
func (w *Watcher) watch(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	defer close(w.snapsChan)
	defer close(w.errorChan)

	w.checkForChange()

	for {
		select {
		case <-w.done:
			return

		case <-ticker.C:
			// Polling as backup for missed events
			w.checkForChange()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.checkForChange()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// checkForChange reloads the snapshot when the file's size or
// modification time differs from the last load
func (w *Watcher) checkForChange() {
	info, err := w.fs.Stat(w.filePath)
	if err != nil {
		// Not created yet, or mid-replace
		return
	}
	if info.ModTime().Equal(w.modTime) && info.Size() == w.size {
		return
	}

	f, err := w.fs.Open(w.filePath)
	if err != nil {
		w.sendError(err)
		return
	}
	snap, err := host.ReadSnapshot(f)
	f.Close()

	w.modTime = info.ModTime()
	w.size = info.Size()

	if err != nil {
		w.sendError(err)
		return
	}

	select {
	case w.snapsChan <- snap:
	case <-w.done:
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errorChan <- err:
	case <-w.done:
	}
}

// Snapshots returns a channel of snapshots as the file changes
func (w *Watcher) Snapshots() <-chan host.Snapshot {
	return w.snapsChan
}

// Errors returns a channel of errors that occur during watching
func (w *Watcher) Errors() <-chan error {
	return w.errorChan
}

// Close stops watching the file
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

// TestWatcher is a helper for testing that provides direct control over channels
type TestWatcher struct {
	snapsChan chan host.Snapshot
	errorChan chan error
	closed    bool
	mu        sync.Mutex
}

// NewTestWatcher creates a test watcher with controllable channels
func NewTestWatcher() *TestWatcher {
	return &TestWatcher{
		snapsChan: make(chan host.Snapshot, 16),
		errorChan: make(chan error, 10),
	}
}

func (tw *TestWatcher) Snapshots() <-chan host.Snapshot {
	return tw.snapsChan
}

func (tw *TestWatcher) Errors() <-chan error {
	return tw.errorChan
}

func (tw *TestWatcher) Close() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.closed {
		return nil
	}
	tw.closed = true
	close(tw.snapsChan)
	close(tw.errorChan)
	return nil
}

// SendSnapshot delivers a snapshot unless the watcher is closed
func (tw *TestWatcher) SendSnapshot(s host.Snapshot) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if !tw.closed {
		tw.snapsChan <- s
	}
}

// SendError delivers an error unless the watcher is closed
func (tw *TestWatcher) SendError(err error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if !tw.closed {
		tw.errorChan <- err
	}
}
