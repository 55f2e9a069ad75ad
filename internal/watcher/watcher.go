// Package watcher monitors an inbox directory for newly arrived image files.
//
// It wraps fsnotify with two behaviors the pipeline needs: a settle delay,
// so a file still being copied in is not processed until writes stop, and
// pattern filtering, so only candidate image files produce events. Paths
// under a processed/ directory are ignored entirely.
package watcher

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// Event reports a file that has arrived and settled.
type Event struct {
	Path string
}

// Watcher monitors a directory tree for files matching the configured
// glob patterns.
type Watcher struct {
	fsw          *fsnotify.Watcher
	Events       chan Event
	patterns     []string
	settle       time.Duration
	processedDir string

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// New creates a Watcher over dir and its subdirectories (excluding
// processedDir trees). Patterns are doublestar globs matched
// case-insensitively against the base name; settle is how long a file must
// stay quiet before an event is emitted.
func New(dir string, patterns []string, processedDir string, settle time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:          fsw,
		Events:       make(chan Event, 256),
		patterns:     patterns,
		settle:       settle,
		processedDir: processedDir,
		pending:      make(map[string]*time.Timer),
	}

	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == processedDir && path != dir {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
	if err != nil {
		fsw.Close()
		return nil, err
	}

	return w, nil
}

// Run listens for filesystem events until the context is cancelled. New
// subdirectories are added to the watch as they appear.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()
	defer w.stopPending()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}
	if underDir(ev.Name, w.processedDir) {
		return
	}

	if ev.Op&fsnotify.Create != 0 {
		if info, err := os.Lstat(ev.Name); err == nil && info.IsDir() {
			if err := w.fsw.Add(ev.Name); err != nil {
				log.Printf("warning: cannot watch %s: %v", ev.Name, err)
			}
			return
		}
	}

	if !w.matches(filepath.Base(ev.Name)) {
		return
	}
	w.schedule(ev.Name)
}

// schedule (re)arms the settle timer for a path. Every write restarts the
// countdown; the event fires only once the file has been quiet for the
// full settle window.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.pending[path]; ok {
		t.Reset(w.settle)
		return
	}
	w.pending[path] = time.AfterFunc(w.settle, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()
		w.Events <- Event{Path: path}
	})
}

func (w *Watcher) stopPending() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.pending {
		t.Stop()
		delete(w.pending, path)
	}
}

func (w *Watcher) matches(base string) bool {
	base = strings.ToLower(base)
	for _, pattern := range w.patterns {
		if ok, err := doublestar.Match(strings.ToLower(pattern), base); err == nil && ok {
			return true
		}
	}
	return false
}

// underDir reports whether any path component equals name.
func underDir(path, name string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == name {
			return true
		}
	}
	return false
}
