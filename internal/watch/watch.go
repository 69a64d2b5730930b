// Package watch reports edits to scenario files. It watches the parent
// directory of each file so that editors which save by rename are still
// seen, and reports a file only once it has been quiet for Debounce, so a
// save made of several writes produces one event after the last write.
package watch

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce is how long a file must stay quiet before it is reported.
const Debounce = 100 * time.Millisecond

// Watcher forwards scenario file changes on Events. Both channels are
// closed once the watcher stops.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	files   map[string]bool
	dirs    map[string]bool
	fired   chan string
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// New watches the given scenario files and directories. A file path
// reports only that file; a directory path reports every .yaml/.yml file
// inside it.
func New(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		files:   make(map[string]bool),
		dirs:    make(map[string]bool),
		fired:   make(chan string),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	added := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fw.Close()
			return nil, err
		}
		info, err := os.Stat(abs)
		if err != nil {
			_ = fw.Close()
			return nil, err
		}
		dir := abs
		if info.IsDir() {
			w.dirs[abs] = true
		} else {
			w.files[abs] = true
			dir = filepath.Dir(abs)
		}
		if added[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
		added[dir] = true
	}

	go w.run()
	return w, nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	pending := make(map[string]*time.Timer)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !w.wants(event.Name) {
				continue
			}
			if t, ok := pending[event.Name]; ok {
				t.Reset(Debounce)
				continue
			}
			pending[event.Name] = w.settle(event.Name)
		case name := <-w.fired:
			delete(pending, name)
			select {
			case w.Events <- name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

// settle starts the quiet-period timer for name. When it fires, name is
// handed back to run unless the watcher is closing.
func (w *Watcher) settle(name string) *time.Timer {
	return time.AfterFunc(Debounce, func() {
		select {
		case w.fired <- name:
		case <-w.closeCh:
		}
	})
}

func (w *Watcher) wants(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	if w.files[abs] {
		return true
	}
	return w.dirs[filepath.Dir(abs)] && isScenarioFile(abs)
}

func isScenarioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
