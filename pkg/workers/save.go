package workers

import (
	"context"
	"time"

	"github.com/cbodonnell/civboard/pkg/log"
	"github.com/cbodonnell/civboard/pkg/queue"
	"github.com/cbodonnell/civboard/pkg/repositories"
	"github.com/cbodonnell/civboard/pkg/repositories/models"
	"github.com/cbodonnell/civboard/pkg/state"
)

type SaveBoardWorker struct {
	repository repositories.Repository
	manager    state.BoardManager
	dirty      queue.Queue[string]
	interval   time.Duration
}

type NewSaveBoardWorkerOptions struct {
	Repository repositories.Repository
	Manager    state.BoardManager
	// DirtyQueue must be the queue the manager reports changed boards on
	DirtyQueue queue.Queue[string]
	Interval   time.Duration
}

// NewSaveBoardWorker creates a new SaveBoardWorker.
// The worker periodically writes changed boards to the repository and
// removes deleted ones from it.
func NewSaveBoardWorker(opts NewSaveBoardWorkerOptions) *SaveBoardWorker {
	return &SaveBoardWorker{
		repository: opts.Repository,
		manager:    opts.Manager,
		dirty:      opts.DirtyQueue,
		interval:   opts.Interval,
	}
}

// Start runs the save loop until ctx is done, then flushes once more with a
// fresh context so pending changes are not lost on shutdown.
func (w *SaveBoardWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			n := w.Flush(flushCtx)
			cancel()
			log.Info("Save worker stopped after flushing %d boards", n)
			return
		case <-ticker.C:
			if n := w.Flush(ctx); n > 0 {
				log.Debug("Saved %d boards", n)
			}
		}
	}
}

// Flush persists every board queued since the last flush, including those
// the manager held back while the queue was full, and returns the number of
// boards written or deleted.
func (w *SaveBoardWorker) Flush(ctx context.Context) int {
	ids := append(w.dirty.ReadAll(), w.manager.TakePending(ctx)...)
	seen := make(map[string]bool, len(ids))
	n := 0
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if w.saveBoard(ctx, id) {
			n++
		}
	}
	return n
}

func (w *SaveBoardWorker) saveBoard(ctx context.Context, id string) bool {
	b, err := w.manager.Snapshot(ctx, id)
	if err != nil {
		if state.IsNotFound(err) {
			return w.deleteBoard(ctx, id)
		}
		log.Error("Failed to get board %s: %v", id, err)
		return false
	}

	record := &models.Board{
		ID:   id,
		Size: b.Size(),
		Data: b.String(),
	}
	if err := w.repository.SaveBoard(ctx, record); err != nil {
		log.Error("Failed to save board %s: %v", id, err)
		w.manager.MarkDirty(ctx, id)
		return false
	}
	return true
}

func (w *SaveBoardWorker) deleteBoard(ctx context.Context, id string) bool {
	err := w.repository.DeleteBoard(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			// never saved
			return false
		}
		log.Error("Failed to delete board %s: %v", id, err)
		w.manager.MarkDirty(ctx, id)
		return false
	}
	return true
}
