package store

import (
	"context"
	"fmt"

	"geonotes/internal/config"
	"geonotes/internal/logger"
)

// Storages aggregates every server-side persistence backend behind the
// repository interfaces consumed by the service layer.
type Storages struct {
	UserRepository   UserRepository
	NoteRepository   NoteRepository
	MarkerRepository MarkerRepository
	BlobStorage      BlobStorage
	NoteChanges      *NoteChangeHub
}

// NewStorages opens the PostgreSQL connection, runs pending migrations,
// initialises the blob store, and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	blobs, err := NewBlobFileStorage(cfg.Blobs, log)
	if err != nil {
		return nil, fmt.Errorf("error creating blob storage: %w", err)
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		NoteRepository:   NewNoteRepository(db, log),
		MarkerRepository: NewMarkerRepository(db, log),
		BlobStorage:      blobs,
		NoteChanges:      NewNoteChangeHub(),
	}, nil
}
