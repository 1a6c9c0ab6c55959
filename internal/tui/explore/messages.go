package explore

import "github.com/alexisbeaulieu97/flexkit/internal/config"

// DocumentLoadedMsg carries the result of (re)loading the layout document.
type DocumentLoadedMsg struct {
	Document *config.Document
	Err      error
}

// FileChangedMsg reports that the watched document changed on disk.
type FileChangedMsg struct {
	Path string
}

// WatchErrorMsg reports a file watcher failure. Watching stops afterwards.
type WatchErrorMsg struct {
	Err error
}
