// Package watch reports changes to scene, asset and configuration files so
// the running scene can be reloaded.
package watch

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const debounce = 100 * time.Millisecond

// Watcher forwards relevant file changes on Events. Events is closed once
// the watcher stops.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	log     logrus.FieldLogger
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// New watches dirs (not recursively)
func New(log logrus.FieldLogger, dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		log:     log,
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and waits for its goroutine to exit
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

// Reloads converts Events into reload signals. The returned channel drops
// signals while one is already pending.
func (w *Watcher) Reloads() <-chan struct{} {
	out := make(chan struct{}, 1)
	go func() {
		for range w.Events {
			select {
			case out <- struct{}{}:
			default:
			}
		}
	}()
	return out
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.Events)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !Relevant(event) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now

			w.log.WithField("file", event.Name).Info("file changed")
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("file watcher error")
		case <-w.closeCh:
			return
		}
	}
}

// Relevant reports whether event touches a file the game loads at runtime
func Relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	return isSceneFile(event.Name) || isConfigFile(event.Name)
}

// isSceneFile matches the files a scene reload re-reads. Textures are
// decoded once at startup, so image files are not listed.
func isSceneFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".tmx", ".tsx":
		return true
	}
	return false
}

func isConfigFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
