package profiles

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDelay = 100 * time.Millisecond

// Reload reports one changed file. Script distinguishes condition scripts
// from profile yaml, since a script edit only needs the conditions rebuilt.
type Reload struct {
	Path   string
	Script bool
}

// Watcher reports changed profile and script files so a host can hot-reload
// its bindings. Bursts of filesystem events for one file (editors tend to
// write, chmod, and rename in quick succession) coalesce into one Reload.
type Watcher struct {
	fs      *fsnotify.Watcher
	Events  chan Reload
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once

	mu      sync.Mutex
	pending map[string]*time.Timer
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fsw,
		Events:  make(chan Reload, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		pending: make(map[string]*time.Timer),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
		w.mu.Lock()
		for _, t := range w.pending {
			t.Stop()
		}
		w.pending = nil
		w.mu.Unlock()
	})
	return err
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			script := isScriptFile(event.Name)
			if !script && !isProfileFile(event.Name) {
				continue
			}
			w.schedule(event.Name, script)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// schedule arms (or re-arms) the per-file debounce timer. The Reload is
// emitted once the file has been quiet for reloadDelay.
func (w *Watcher) schedule(path string, script bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending == nil {
		return
	}
	if t, ok := w.pending[path]; ok {
		t.Reset(reloadDelay)
		return
	}
	w.pending[path] = time.AfterFunc(reloadDelay, func() {
		w.mu.Lock()
		if w.pending != nil {
			delete(w.pending, path)
		}
		w.mu.Unlock()
		select {
		case w.Events <- Reload{Path: path, Script: script}:
		case <-w.closeCh:
		}
	})
}

func isProfileFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
