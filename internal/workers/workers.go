package workers

import (
	"context"

	"geonotes/internal/config"
	"geonotes/internal/logger"
	"geonotes/internal/service"
	"geonotes/internal/store"
)

// Workers runs the client's background jobs, one goroutine each.
type Workers struct {
	workers []Worker
}

func NewWorkers(records service.RecordStore, cache store.LocalNoteCache, cfg config.ClientWorkers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewSnapshotPump(records, cache, cfg.ResubscribeInterval, logger),
		},
	}
}

// Run starts every worker and returns immediately. Workers stop when ctx is
// cancelled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		go worker.Run(ctx)
	}
}
