package deck

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Change reports that a row file of the deck changed on disk.
type Change struct {
	Path string
	Op   fsnotify.Op
	Err  error
}

// Watcher follows a deck directory and reports row file changes.
type Watcher struct {
	watcher *fsnotify.Watcher
	changes chan Change
	quit    chan struct{}
	done    chan struct{}
}

// Watch starts watching dir.
func Watch(dir string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create watcher")
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "watch %s", dir)
	}
	w := &Watcher{
		watcher: watcher,
		changes: make(chan Change, 10),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Changes returns the channel of row changes. It is closed by Close.
func (w *Watcher) Changes() <-chan Change { return w.changes }

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.quit)
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	defer close(w.changes)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isMarkdown(filepath.Base(event.Name)) {
				continue
			}
			if !w.send(Change{Path: event.Name, Op: event.Op}) {
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if !w.send(Change{Err: err}) {
				return
			}
		}
	}
}

func (w *Watcher) send(c Change) bool {
	select {
	case w.changes <- c:
		return true
	case <-w.quit:
		return false
	}
}
