package explore

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a single file. It watches the parent directory
// because editors often replace files instead of writing them in place.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
}

// NewWatcher starts watching path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	return &Watcher{watcher: w, path: abs}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops watching.
func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}
	return w.watcher.Close()
}

// Next returns a command that blocks until the file changes. It yields nil
// once the watcher is closed.
func (w *Watcher) Next() tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != w.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					return FileChangedMsg{Path: w.path}
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				return WatchErrorMsg{Err: err}
			}
		}
	}
}
