// Package syncfile persists the most recent sync snapshot on disk.
package syncfile

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yndnr/syncvault-go/internal/telemetry/logger"
)

// debounceWindow absorbs the create/rename burst an atomic replace
// produces, so one replacement yields one notification.
const debounceWindow = 50 * time.Millisecond

// Watcher reports when another process replaces one of the cache
// files for this identity. It is purely advisory: there is no
// cross-process locking, and a notification only means a fresh read
// will observe different bytes.
type Watcher struct {
	paths   Paths
	watcher *fsnotify.Watcher
	changes chan string
	done    chan struct{}
	log     logger.Logger
}

// NewWatcher watches the identity's namespace directory. The directory
// is watched rather than the files themselves so rename-based atomic
// replaces are caught.
func NewWatcher(paths Paths, log logger.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(paths.Dir); err != nil {
		fw.Close()
		return nil, err
	}
	if log == nil {
		log = logger.Default()
	}

	w := &Watcher{
		paths:   paths,
		watcher: fw,
		changes: make(chan string, 8),
		done:    make(chan struct{}),
		log:     log,
	}
	go w.loop()
	return w, nil
}

// Changes delivers the base name of each replaced cache file. The
// channel is never closed while the watcher runs; slow receivers drop
// notifications rather than block the loop.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	pending := make(map[string]bool)
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
				continue
			}
			name := filepath.Base(event.Name)
			if name != payloadFileName && name != metadataFileName {
				continue
			}
			pending[name] = true
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
			} else {
				timer.Reset(debounceWindow)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			for name := range pending {
				select {
				case w.changes <- name:
				default:
					w.log.Debug("dropping change notification", "file", name)
				}
			}
			clear(pending)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("cache watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}
