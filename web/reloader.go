package web

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 200 * time.Millisecond

// Reloader serves templates from a directory on disk and reparses them
// whenever a file in it changes.
type Reloader struct {
	dir     string
	logger  *slog.Logger
	tmpl    atomic.Pointer[template.Template]
	watcher *fsnotify.Watcher
	once    sync.Once
}

// NewReloader parses the *.html files in dir and starts watching it.
func NewReloader(dir string, logger *slog.Logger) (*Reloader, error) {
	r := &Reloader{dir: dir, logger: logger}
	if err := r.reload(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	r.watcher = watcher
	return r, nil
}

func (r *Reloader) reload() error {
	tmpl, err := Parse(os.DirFS(r.dir), "*.html")
	if err != nil {
		return err
	}
	r.tmpl.Store(tmpl)
	return nil
}

// ExecuteTemplate renders with the most recently parsed templates.
func (r *Reloader) ExecuteTemplate(wr io.Writer, name string, data any) error {
	return r.tmpl.Load().ExecuteTemplate(wr, name, data)
}

// Run reloads on change until ctx is done. A failed parse keeps the
// previous templates.
func (r *Reloader) Run(ctx context.Context) {
	defer func() { _ = r.Close() }()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			r.logger.Debug("Template change detected", slog.String("file", event.Name), slog.String("op", event.Op.String()))
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(reloadDebounce, func() {
				if err := r.reload(); err != nil {
					r.logger.Error("Failed to reload templates", "error", err)
					return
				}
				r.logger.Info("Templates reloaded")
			})
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			r.logger.Warn("Watcher error", "error", err)
		}
	}
}

// Close stops watching. It is safe to call more than once.
func (r *Reloader) Close() error {
	var err error
	r.once.Do(func() { err = r.watcher.Close() })
	return err
}
