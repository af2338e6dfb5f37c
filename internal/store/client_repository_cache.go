package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"geonotes/internal/logger"
	"geonotes/models"
)

type localNoteCache struct {
	*DB
	logger *logger.Logger
}

func NewLocalNoteCache(db *DB, logger *logger.Logger) (LocalNoteCache, error) {
	if _, err := db.Exec(createCacheSchema); err != nil {
		logger.Err(err).Str("func", "NewLocalNoteCache").Msg("failed to create cache schema")
		return nil, fmt.Errorf("create cache schema: %w", err)
	}

	return &localNoteCache{
		DB:     db,
		logger: logger,
	}, nil
}

func (c *localNoteCache) SaveSnapshot(ctx context.Context, snapshot models.NoteSnapshot) error {
	log := logger.FromContext(ctx)

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localNoteCache.SaveSnapshot").Msg("failed to begin transaction")
		return fmt.Errorf("begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, clearNoteCache); err != nil {
		log.Err(err).Str("func", "localNoteCache.SaveSnapshot").Msg("failed to clear note cache")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for position, note := range snapshot.Notes {
		payload, err := json.Marshal(note)
		if err != nil {
			return fmt.Errorf("encode cached note %s: %w", note.ID, err)
		}

		if _, err = tx.ExecContext(ctx, insertCachedNote, note.ID, string(payload), position); err != nil {
			log.Err(err).
				Str("func", "localNoteCache.SaveSnapshot").
				Str("note_id", note.ID).
				Msg("failed to insert cached note")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "localNoteCache.SaveSnapshot").Msg("failed to commit snapshot")
		return fmt.Errorf("commit snapshot transaction: %w", err)
	}

	return nil
}

func (c *localNoteCache) LoadSnapshot(ctx context.Context) (models.NoteSnapshot, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, selectCachedNotes)
	if err != nil {
		log.Err(err).Str("func", "localNoteCache.LoadSnapshot").Msg("failed to query cached notes")
		return models.NoteSnapshot{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var payload string
		if err = rows.Scan(&payload); err != nil {
			log.Err(err).Str("func", "localNoteCache.LoadSnapshot").Msg("failed to scan cached note")
			return models.NoteSnapshot{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		var note models.Note
		if err = json.Unmarshal([]byte(payload), &note); err != nil {
			return models.NoteSnapshot{}, fmt.Errorf("decode cached note: %w", err)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return models.NoteSnapshot{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(notes) == 0 {
		return models.NoteSnapshot{}, ErrNoCachedSnapshot
	}

	return models.NoteSnapshot{Notes: notes}, nil
}

func (c *localNoteCache) SaveDraft(ctx context.Context, draft models.Draft) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}

	if _, err = c.DB.ExecContext(ctx, upsertDraft, draft.NoteID, string(payload)); err != nil {
		log.Err(err).
			Str("func", "localNoteCache.SaveDraft").
			Str("note_id", draft.NoteID).
			Msg("failed to save draft")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (c *localNoteCache) LoadDraft(ctx context.Context, noteID string) (models.Draft, error) {
	log := logger.FromContext(ctx)

	var payload string
	err := c.DB.QueryRowContext(ctx, selectDraft, noteID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Draft{}, ErrNoDraftFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localNoteCache.LoadDraft").
			Str("note_id", noteID).
			Msg("failed to load draft")
		return models.Draft{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var draft models.Draft
	if err = json.Unmarshal([]byte(payload), &draft); err != nil {
		return models.Draft{}, fmt.Errorf("decode draft: %w", err)
	}

	return draft, nil
}

func (c *localNoteCache) DeleteDraft(ctx context.Context, noteID string) error {
	log := logger.FromContext(ctx)

	if _, err := c.DB.ExecContext(ctx, deleteDraft, noteID); err != nil {
		log.Err(err).
			Str("func", "localNoteCache.DeleteDraft").
			Str("note_id", noteID).
			Msg("failed to delete draft")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
