package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

type ChangeKind int

const (
	ChangeSpec ChangeKind = iota
	ChangeScript
)

func (k ChangeKind) String() string {
	if k == ChangeScript {
		return "script"
	}
	return "spec"
}

// Change is one settled edit of a watched file.
type Change struct {
	Path string
	Kind ChangeKind
}

// Watcher reports edits to YAML specs and tengo scripts in the watched
// directories. Bursts of writes to one file are reported once, after the file
// has been quiet for the settle period.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Change
	Errors  chan error
	settle  time.Duration
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

const defaultSettle = 100 * time.Millisecond

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		watcher: fw,
		Events:  make(chan Change, 16),
		Errors:  make(chan error, 1),
		settle:  defaultSettle,
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	pending := make(map[string]time.Time)
	tick := time.NewTicker(w.settle / 4)
	defer tick.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if _, ok := classify(event.Name); ok {
				pending[event.Name] = time.Now().Add(w.settle)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case now := <-tick.C:
			for name, due := range pending {
				if now.Before(due) {
					continue
				}
				delete(pending, name)
				kind, _ := classify(name)
				select {
				case w.Events <- Change{Path: name, Kind: kind}:
				case <-w.closeCh:
					return
				}
			}
		case <-w.closeCh:
			return
		}
	}
}

func classify(name string) (ChangeKind, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return ChangeSpec, true
	case ".tengo":
		return ChangeScript, true
	}
	return 0, false
}
