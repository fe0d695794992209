package tutorial

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/reusedev/tutor-voice/internal/modules/logs"
)

const reloadDelay = 200 * time.Millisecond

// Watch reloads the catalog whenever a tutorial file changes, until ctx is done.
// Bursts of events are folded into a single reload.
func (c *Catalog) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(c.dir); err != nil {
		watcher.Close()
		return err
	}
	go func() {
		defer watcher.Close()
		timer := time.NewTimer(reloadDelay)
		timer.Stop()
		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !isTutorialFile(event.Name) {
					continue
				}
				logs.Logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("tutorial changed")
				timer.Reset(reloadDelay)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logs.Logger.Err(err).Msg("tutorial watcher")
			case <-timer.C:
				if err := c.Reload(); err != nil {
					logs.Logger.Err(err).Str("dir", c.dir).Msg("reload tutorials")
				}
			}
		}
	}()
	return nil
}
