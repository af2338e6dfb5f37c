package service

import (
	"context"
	"fmt"

	"geonotes/internal/logger"
	"geonotes/internal/store"
	"geonotes/models"
)

type clientNoteService struct {
	records RecordStore
	markers MarkerRegistry
	cache   store.LocalNoteCache
	logger  *logger.Logger
}

func NewClientNoteService(
	records RecordStore,
	markers MarkerRegistry,
	cache store.LocalNoteCache,
	logger *logger.Logger,
) ClientNoteService {
	return &clientNoteService{
		records: records,
		markers: markers,
		cache:   cache,
		logger:  logger,
	}
}

// ListNotes prefers the server's note set and refreshes the local cache
// with it. When the server is unreachable the last cached snapshot is
// served instead, so the list survives transient outages read-only.
func (c *clientNoteService) ListNotes(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	notes, err := c.records.GetAllNotes(ctx)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "clientNoteService.ListNotes").
			Msg("server list failed, falling back to cache")

		cached, cacheErr := c.cache.LoadSnapshot(ctx)
		if cacheErr != nil {
			return nil, fmt.Errorf("list notes: %w", err)
		}
		return cached.Notes, nil
	}

	if err = c.cache.SaveSnapshot(ctx, models.NoteSnapshot{Notes: notes}); err != nil {
		log.Warn().Err(err).
			Str("func", "clientNoteService.ListNotes").
			Msg("could not refresh note cache")
	}

	return notes, nil
}

func (c *clientNoteService) DeleteNote(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := c.records.DeleteNote(ctx, id); err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}

	// Any leftover draft for the deleted note is meaningless now.
	if err := c.cache.DeleteDraft(ctx, id); err != nil {
		log.Warn().Err(err).
			Str("func", "clientNoteService.DeleteNote").
			Str("note_id", id).
			Msg("could not drop draft of deleted note")
	}

	if notes, err := c.records.GetAllNotes(ctx); err == nil {
		if err = c.cache.SaveSnapshot(ctx, models.NoteSnapshot{Notes: notes}); err != nil {
			log.Warn().Err(err).
				Str("func", "clientNoteService.DeleteNote").
				Msg("could not refresh note cache")
		}
	}

	return nil
}

func (c *clientNoteService) ListMarkers(ctx context.Context) ([]models.Marker, error) {
	markers, err := c.markers.GetAllMarkers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list markers: %w", err)
	}
	return markers, nil
}
