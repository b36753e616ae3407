package index

import (
	"context"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/whatson-app/whatson/internal/pathutil"
)

// EventCallback is called after a watcher-driven registry change.
// kind is one of "created", "removed".
type EventCallback func(kind string, hubName string)

// debounce window between a burst of filesystem events and the reconcile
// pass that folds them into the registry. Hub creation touches many paths
// in quick succession (scaffold dirs, manifest, package), so per-event
// indexing would observe half-built hubs.
const reconcileDelay = 250 * time.Millisecond

// Watch starts an fsnotify watcher on the hubs root and reconciles the
// registry whenever its contents change, until ctx is cancelled. It calls
// cb (if non-nil) once per hub added or removed by a reconcile pass.
func Watch(ctx context.Context, db HubIndex, hubsRoot string, logger *slog.Logger, cb EventCallback) error {
	// The hubs root may not exist until the first hub is created; the
	// watcher needs it present to register.
	if err := pathutil.EnsureDir(hubsRoot); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(hubsRoot); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("root", hubsRoot))

	var timer *time.Timer
	var timerCh <-chan time.Time

	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(reconcileDelay)
			timerCh = timer.C
		} else {
			timer.Reset(reconcileDelay)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-timerCh:
			added, removed, recErr := Reconcile(db, hubsRoot, logger)
			if recErr != nil {
				logger.Warn("watcher: reconcile failed", slog.String("error", recErr.Error()))
				continue
			}
			if cb != nil {
				for _, name := range added {
					cb("created", name)
				}
				for _, name := range removed {
					cb("removed", name)
				}
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) != 0 {
				logger.Debug("watcher: change", slog.String("path", ev.Name), slog.String("op", ev.Op.String()))
				schedule()
			}

		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher: error", slog.String("error", werr.Error()))
		}
	}
}
