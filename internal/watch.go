package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	tt "github.com/formalverse/flin/internal/types"
)

// WatchReport receives the result of re-checking a file in watch mode. On a
// watcher error, filename is empty and err carries the error.
type WatchReport func(filename string, issues []tt.Issue, err error)

// StartWatching begins watching the given directories (recursively) for
// changes to formula files. Each time a watched file is written it is
// re-checked and the result is delivered to report from the watch goroutine.
func (e *Engine) StartWatching(dirs []string, report WatchReport) error {
	if e.isWatching {
		return fmt.Errorf("already watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	e.watcher = watcher

	for _, dir := range dirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return e.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			e.watcher.Close()
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	e.isWatching = true
	go e.watchLoop(report)
	return nil
}

// StopWatching stops a running watch and closes the underlying watcher.
func (e *Engine) StopWatching() error {
	if !e.isWatching {
		return nil
	}
	e.isWatching = false
	return e.watcher.Close()
}

func (e *Engine) watchLoop(report WatchReport) {
	for e.isWatching {
		select {
		case event, ok := <-e.watcher.Events:
			if !ok {
				return
			}
			e.handleFileEvent(event, report)
		case err, ok := <-e.watcher.Errors:
			if !ok {
				return
			}
			report("", nil, err)
		}
	}
}

func (e *Engine) handleFileEvent(event fsnotify.Event, report WatchReport) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !e.hasTargetExtension(event.Name) {
		return
	}

	// editors often produce bursts of writes; treat them as one change
	time.Sleep(100 * time.Millisecond)

	issues, err := e.Run(event.Name)
	report(event.Name, issues, err)
}

func (e *Engine) hasTargetExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, target := range e.extensions {
		if ext == target {
			return true
		}
	}
	return false
}
