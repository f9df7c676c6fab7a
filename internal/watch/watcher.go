// Package watch reports changes to the project store made outside this
// process.
package watch

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the store file for content changes.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	debounce  time.Duration
	events    chan struct{}
	stop      chan struct{}

	mu          sync.Mutex
	stopped     bool
	fingerprint uint64
}

// New watches path. The parent directory is watched so the file may be
// created, replaced or removed. Changes are reported after debounce, and
// only when the content fingerprint differs from the last one seen.
func New(path string, debounce time.Duration) (*Watcher, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		path:      filepath.Clean(path),
		debounce:  debounce,
		events:    make(chan struct{}, 1),
		stop:      make(chan struct{}),
	}
	w.fingerprint = w.compute()

	go w.run()

	return w, nil
}

// Events returns the channel that receives change notifications. It is
// closed by Stop.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Rebaseline records the current content as seen, so that writes made by
// this process do not produce an event.
func (w *Watcher) Rebaseline() {
	fp := w.compute()
	w.mu.Lock()
	w.fingerprint = fp
	w.mu.Unlock()
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	w.stopped = true

	close(w.stop)
	close(w.events)
	w.fsWatcher.Close()
}

// notify queues one event unless one is already pending or the watcher
// is stopped.
func (w *Watcher) notify() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	select {
	case w.events <- struct{}{}:
	default:
	}
}

// relevant reports whether name is the store file or one of its companion
// files (sqlite -wal / -shm).
func (w *Watcher) relevant(name string) bool {
	return name == w.path || strings.HasPrefix(name, w.path+"-")
}

// compute hashes the store file together with any -wal file.
func (w *Watcher) compute() uint64 {
	h := xxhash.New()
	for _, p := range []string{w.path, w.path + "-wal"} {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		_, _ = h.WriteString(p)
		_, _ = h.Write(data)
	}
	return h.Sum64()
}

// changed updates the fingerprint and reports whether it moved.
func (w *Watcher) changed() bool {
	fp := w.compute()
	w.mu.Lock()
	defer w.mu.Unlock()
	if fp == w.fingerprint {
		return false
	}
	w.fingerprint = fp
	return true
}

// run processes file system events.
func (w *Watcher) run() {
	var debounceTimer *time.Timer

	for {
		select {
		case <-w.stop:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.relevant(filepath.Clean(event.Name)) {
				continue
			}

			// Debounce rapid events
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.debounce, func() {
				if w.changed() {
					w.notify()
				}
			})

		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}
