package compiler

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watch observes the import roots for proto file changes and invokes regen
// after each burst of edits settles. The first regeneration is the caller's
// responsibility; Watch only reacts to changes. It returns when ctx is done
// or the watcher fails.
func Watch(ctx context.Context, importPaths []string, debounce time.Duration, log *logrus.Logger, regen func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, root := range importPaths {
		if err := watchTree(watcher, root); err != nil {
			return err
		}
	}

	// The timer stays stopped until a proto file changes.
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	log.WithField("paths", importPaths).Info("watching for proto changes")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// New directories need their own watches.
			if event.Op&fsnotify.Create != 0 {
				if fi, statErr := os.Stat(event.Name); statErr == nil && fi.IsDir() {
					if err := watchTree(watcher, event.Name); err != nil {
						log.WithError(err).Warn("failed to watch new directory")
					}
					continue
				}
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 || filepath.Ext(event.Name) != ".proto" {
				continue
			}
			log.WithField("file", event.Name).Debug("proto file changed")
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watch error")

		case <-timer.C:
			log.Info("regenerating documentation")
			if err := regen(); err != nil {
				log.WithError(err).Error("regeneration failed")
			}
		}
	}
}

// watchTree adds root and every directory below it to the watcher.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
