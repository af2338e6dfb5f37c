package store

import (
	"context"
	"fmt"

	"geonotes/internal/config"
	"geonotes/internal/logger"
)

// ClientStorages groups the client-side storage layer: the SQLite cache of
// the last-seen note snapshot and the active edit draft.
type ClientStorages struct {
	NoteCache LocalNoteCache
}

// NewClientStorages opens the local cache database, creating the file and
// schema on first run, and wires the cache repository.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	cache, err := NewLocalNoteCache(db, logger)
	if err != nil {
		return nil, fmt.Errorf("cache initialisation error: %w", err)
	}

	return &ClientStorages{
		NoteCache: cache,
	}, nil
}
