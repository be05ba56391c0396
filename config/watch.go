package config

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config file whenever it is written and publishes
// each valid version on Updates. Invalid edits are logged and skipped.
// Overrides are applied to every reload, and a reload that leaves the
// effective config unchanged is not published.
type Watcher struct {
	Updates <-chan *AppConfig

	watcher   *fsnotify.Watcher
	path      string
	overrides Overrides
	last      AppConfig
	updates   chan *AppConfig
	logger    *log.Logger
	done      chan struct{}
}

// Watch starts watching filePath. current is the config the game started with.
// The parent directory is watched so editors that replace the file on save are
// picked up too.
func Watch(filePath string, current *AppConfig, overrides Overrides, logger *log.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(filePath)
	if err != nil {
		fw.Close()
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	updates := make(chan *AppConfig, 1)
	w := &Watcher{
		Updates:   updates,
		watcher:   fw,
		path:      abs,
		overrides: overrides,
		last:      *current,
		updates:   updates,
		logger:    logger,
		done:      make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				w.reload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Printf("config watcher error: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.Printf("config reload failed: %v", err)
		return
	}
	w.overrides.Apply(cfg)
	if *cfg == w.last {
		return
	}
	if err := cfg.Validate(); err != nil {
		w.logger.Printf("config reload rejected: %v", err)
		return
	}
	w.last = *cfg
	// Keep only the newest version if the loop owner has not caught up.
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
