package codebase

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dhamidi/xjava/project"
)

// Watcher reparses files of a codebase as they change on disk. Reparses
// run one at a time on the goroutine calling Run, so the last parse of a
// file always reflects its latest content.
type Watcher struct {
	codebase *Codebase
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu      sync.Mutex
	pending map[string]*time.Timer

	ready chan string
	done  chan struct{}
}

func NewWatcher(c *Codebase) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		codebase: c,
		watcher:  fsWatcher,
		debounce: 100 * time.Millisecond,
		pending:  make(map[string]*time.Timer),
		ready:    make(chan string),
		done:     make(chan struct{}),
	}, nil
}

// Run scans the codebase once and then processes change events until ctx
// is done.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.done)
	defer w.watcher.Close()

	for _, dir := range w.codebase.Project().SourceDirs {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(w.codebase.RootDir(), dir)
		}
		if err := w.watchDirRecursive(dir); err != nil {
			return err
		}
	}
	if err := w.codebase.ScanAll(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			w.stopTimers()
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case path := <-w.ready:
			w.reparse(path)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Errorf("watcher error: %v", err)
		}
	}
}

func (w *Watcher) watchDirRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		log.Debugf("watching %s", path)
		return w.watcher.Add(path)
	})
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if err := w.watchDirRecursive(path); err != nil {
				log.Warningf("watch %s: %v", path, err)
			}
			return
		}
	}
	if !project.IsJavaFile(path) {
		return
	}
	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		w.codebase.RemoveFile(path)
		return
	}
	if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
		w.schedule(path)
	}
}

// schedule queues path for reparsing once events for it have been quiet
// for the debounce interval.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Reset(w.debounce)
		return
	}
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()

		select {
		case w.ready <- path:
		case <-w.done:
		}
	})
}

// reparse reads path again; a file that is gone is removed.
func (w *Watcher) reparse(path string) {
	if _, err := w.codebase.ScanFile(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			w.codebase.RemoveFile(path)
			return
		}
		log.Warningf("reparse %s: %v", path, err)
	}
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
}
