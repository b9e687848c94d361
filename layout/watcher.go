package layout

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/dasdy/layerlens/model"
	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watch reloads the keyboard info file whenever it is written and sends every
// successfully parsed version on the returned channel. Parse failures are
// logged and the previous version stays in effect. The channel is closed
// when ctx is done.
func Watch(ctx context.Context, path string) (<-chan *model.KeyboardInfo, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create watcher: %w", err)
	}

	// Editors often replace the file, so the directory is watched instead.
	if err := watcher.Add(filepath.Dir(resolved)); err != nil {
		watcher.Close()

		return nil, fmt.Errorf("could not watch %s: %w", filepath.Dir(resolved), err)
	}

	updates := make(chan *model.KeyboardInfo, 1)

	go watchLoop(ctx, watcher, resolved, updates)

	return updates, nil
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, updates chan<- *model.KeyboardInfo) {
	defer close(updates)
	defer watcher.Close()

	reload := make(chan struct{}, 1)

	var debounce *time.Timer

	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != path || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if debounce != nil {
				debounce.Stop()
			}

			debounce = time.AfterFunc(reloadDebounce, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})
		case <-reload:
			info, err := LoadFile(path)
			if err != nil {
				slog.Error("Keyboard info reload failed, keeping previous version", "path", path, "error", err)

				continue
			}

			slog.Info("Keyboard info reloaded", "path", path, "layouts", len(info.Layouts))

			select {
			case updates <- info:
			case <-ctx.Done():
				return
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}

			slog.Error("Keyboard info watcher error", "error", err)
		}
	}
}
