// Package watch refreshes the catalog when video files appear under a
// source root.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vmunix/vidcat/internal/ingest"
	"github.com/vmunix/vidcat/internal/scan"
)

// Runner synchronizes the named sources.
type Runner interface {
	Run(ctx context.Context, names ...string) (*ingest.Report, error)
}

// Watcher watches every directory below the source roots and schedules a
// refresh of the affected sources once events have been quiet for the
// debounce window.
type Watcher struct {
	runner   Runner
	sources  []ingest.Source
	debounce time.Duration
	log      *slog.Logger
	fsw      *fsnotify.Watcher

	mu    sync.Mutex
	dirty map[string]bool
}

// New creates a watcher and registers the existing directory trees.
// A root that does not exist yet is logged and skipped.
func New(runner Runner, sources []ingest.Source, debounce time.Duration, log *slog.Logger) (*Watcher, error) {
	if log == nil {
		log = slog.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		runner:   runner,
		debounce: debounce,
		log:      log.With("component", "watch"),
		fsw:      fsw,
		dirty:    make(map[string]bool),
	}
	for _, src := range sources {
		src.Root = filepath.Clean(src.Root)
		w.sources = append(w.sources, src)
		if err := w.addTree(scan.DirRoot(src.Root)); err != nil {
			w.log.Warn("source root not watched", "source", src.Name, "root", src.Root, "error", err)
		}
	}
	return w, nil
}

// Run processes events until ctx is canceled. Refreshes run on a separate
// goroutine; Run returns only after it has exited.
func (w *Watcher) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer func() { _ = w.fsw.Close() }()

	ready := make(chan struct{}, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		w.refreshLoop(ctx, ready)
	}()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	w.log.Info("watching sources", "sources", len(w.sources), "debounce", w.debounce)
	for {
		select {
		case <-ctx.Done():
			w.log.Info("watcher stopped")
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if w.handle(event) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watcher error", "error", err)

		case <-timer.C:
			select {
			case ready <- struct{}{}:
			default:
			}
		}
	}
}

// Close releases the underlying watcher. Run closes it on return.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// handle records the event and reports whether it should (re)arm the
// debounce timer.
func (w *Watcher) handle(event fsnotify.Event) bool {
	src, ok := w.sourceFor(event.Name)
	if !ok {
		return false
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				w.log.Warn("directory not watched", "path", event.Name, "error", err)
			}
			w.markDirty(src)
			return true
		}
	}

	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return false
	}
	if !scan.IsVideoFile(event.Name) {
		return false
	}
	w.log.Debug("video changed", "source", src, "path", event.Name, "op", event.Op.String())
	w.markDirty(src)
	return true
}

func (w *Watcher) refreshLoop(ctx context.Context, ready <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-ready:
			names := w.takeDirty()
			if len(names) == 0 {
				continue
			}
			report, err := w.runner.Run(ctx, names...)
			if err != nil {
				w.log.Error("refresh failed", "sources", names, "error", err)
				continue
			}
			w.log.Info("refresh finished", "run_id", report.RunID, "sources", names, "added", report.Added())
		}
	}
}

func (w *Watcher) markDirty(source string) {
	w.mu.Lock()
	w.dirty[source] = true
	w.mu.Unlock()
}

// takeDirty returns and clears the pending sources, in configured order.
func (w *Watcher) takeDirty() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	var names []string
	for _, src := range w.sources {
		if w.dirty[src.Name] {
			names = append(names, src.Name)
		}
	}
	clear(w.dirty)
	return names
}

// sourceFor returns the name of the source whose root contains path.
func (w *Watcher) sourceFor(path string) (string, bool) {
	for _, src := range w.sources {
		rel, err := filepath.Rel(src.Root, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		return src.Name, true
	}
	return "", false
}

// addTree watches dir and every directory below it.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			w.log.Debug("skipping unreadable path", "path", path, "error", err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}
