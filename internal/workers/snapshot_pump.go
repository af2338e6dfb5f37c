package workers

import (
	"context"
	"time"

	"geonotes/internal/logger"
	"geonotes/internal/service"
	"geonotes/internal/store"
)

// snapshotPump keeps the local note cache aligned with the server: it holds
// the live subscription open, writes every received snapshot into the cache
// and re-establishes the stream when it drops. Each fresh stream starts with
// a full snapshot, so nothing is missed across reconnects.
type snapshotPump struct {
	records             service.RecordStore
	cache               store.LocalNoteCache
	resubscribeInterval time.Duration
	logger              *logger.Logger
}

func NewSnapshotPump(records service.RecordStore, cache store.LocalNoteCache, resubscribeInterval time.Duration, logger *logger.Logger) Worker {
	if resubscribeInterval <= 0 {
		resubscribeInterval = 5 * time.Second
	}

	return &snapshotPump{
		records:             records,
		cache:               cache,
		resubscribeInterval: resubscribeInterval,
		logger:              logger,
	}
}

func (p *snapshotPump) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		snapshots, err := p.records.SubscribeNotes(ctx)
		if err != nil {
			p.logger.Warn().Err(err).
				Str("func", "snapshotPump.Run").
				Msg("subscription failed, retrying")
			if !p.wait(ctx) {
				return
			}
			continue
		}

		for snapshot := range snapshots {
			if err = p.cache.SaveSnapshot(ctx, snapshot); err != nil {
				p.logger.Warn().Err(err).
					Str("func", "snapshotPump.Run").
					Msg("could not cache received snapshot")
			}
		}

		// The channel closed: the server went away or ctx was cancelled.
		p.logger.Debug().
			Str("func", "snapshotPump.Run").
			Msg("subscription stream ended")
		if !p.wait(ctx) {
			return
		}
	}
}

func (p *snapshotPump) wait(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(p.resubscribeInterval):
		return true
	}
}
