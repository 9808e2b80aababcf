// Package watch notifies a callback when a file on disk changes.
package watch

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay batches the burst of events most editors emit for one save.
const debounceDelay = 100 * time.Millisecond

// Watcher invokes a callback when one file is written or replaced. Editors
// often save by renaming a temp file over the target, so the parent directory
// is watched and events are filtered by name.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onChange func()
	stopCh   chan struct{}
}

// New starts watching path. The callback runs on the watcher's goroutine
// once events settle; it must not block for long.
func New(path string, onChange func()) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:  fw,
		path:     abs,
		onChange: onChange,
		stopCh:   make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Path returns the watched file's absolute path.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and releases the directory watch.
func (w *Watcher) Close() error {
	close(w.stopCh)
	return w.watcher.Close()
}

// loop processes filesystem events for the watched file.
func (w *Watcher) loop() {
	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C // drain initial timer
	pending := false

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			pending = true
			debounceTimer.Reset(debounceDelay)

		case <-debounceTimer.C:
			if pending {
				pending = false
				w.onChange()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
