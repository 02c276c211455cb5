package config

import (
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch watches the settings file for external changes and calls onChange
// after each relevant write. The returned watcher should be closed on
// shutdown.
func Watch(path string, onChange func()) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watching the directory is more reliable than watching the file itself:
	// editors often replace the file, which drops a file-level watch.
	path = filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}
	base := filepath.Base(path)

	go func() {
		var last time.Time
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !shouldReload(base, event) {
					continue
				}
				// Debounce noisy editor save patterns.
				if time.Since(last) < 200*time.Millisecond {
					continue
				}
				last = time.Now()
				log.Printf("Settings file changed on disk: %s", event.Name)
				onChange()

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Settings watcher error: %v", err)
			}
		}
	}()
	return watcher, nil
}

// shouldReload reports whether a filesystem event concerns the settings file
// and represents new content. Remove and chmod events are ignored.
func shouldReload(base string, event fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Base(event.Name), base) {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}
