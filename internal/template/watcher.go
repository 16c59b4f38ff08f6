package template

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher observes a template directory and fires onChange when a
// template file is written, created, or removed, debouncing rapid
// bursts so one save triggers one gallery reload.
type Watcher struct {
	watcher  *fsnotify.Watcher
	onChange func(dir string)
	mu       sync.Mutex
	pending  map[string]*time.Timer
	done     chan struct{}
}

// NewWatcher starts watching dir. The callback receives the watched
// directory and runs on the watcher goroutine; callers hand the signal
// off to their own event loop.
func NewWatcher(dir string, onChange func(dir string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		fsw.Close()
		return nil, err
	}
	if err := fsw.Add(absDir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:  fsw,
		onChange: onChange,
		pending:  make(map[string]*time.Timer),
		done:     make(chan struct{}),
	}

	go w.watch(absDir)
	return w, nil
}

func isTemplateFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func (w *Watcher) watch(dir string) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !isTemplateFile(event.Name) {
				continue
			}

			// Debounce rapid events from a single save.
			w.mu.Lock()
			if timer, exists := w.pending[event.Name]; exists {
				timer.Stop()
			}
			w.pending[event.Name] = time.AfterFunc(100*time.Millisecond, func() {
				w.mu.Lock()
				delete(w.pending, event.Name)
				w.mu.Unlock()

				if w.onChange != nil {
					w.onChange(dir)
				}
			})
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Keep watching; a transient error should not kill the gallery.
			_ = err

		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
