package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"geonotes/internal/logger"
	"geonotes/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// It executes all note CRUD operations against the "notes" table using the
// embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (owner_id, note_id).
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateNote inserts a new note record. The id is assigned here: the record
// store owns note identity, callers never supply one.
//
// Returns the persisted note with server-side timestamps, or a wrapped
// low-level error.
func (n *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	note.ID = uuid.NewString()

	query, args, err := buildInsertNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.CreateNote").Int64("owner_id", note.OwnerID).Msg("failed to build insert query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := scanNote(n.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "noteRepository.CreateNote").Int64("owner_id", note.OwnerID).Msg("failed to insert note")
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotSaved
		}
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}

// UpdateNote applies the non-nil fields of update to the note identified by
// (ownerID, id) and returns the updated record.
//
// Returns [ErrNoteNotFound] when the note does not exist — a partial update
// never creates a record.
func (n *noteRepository) UpdateNote(ctx context.Context, ownerID int64, id string, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(ownerID, id, update)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.UpdateNote").Int64("owner_id", ownerID).Str("note_id", id).Msg("failed to build update query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanNote(n.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Str("func", "noteRepository.UpdateNote").Int64("owner_id", ownerID).Str("note_id", id).Msg("note to update was not found")
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "noteRepository.UpdateNote").Int64("owner_id", ownerID).Str("note_id", id).Msg("failed to update note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteNote removes the note identified by (ownerID, id).
//
// Returns [ErrNoteNotFound] when nothing was deleted. Markers previously
// appended from this note are left untouched.
func (n *noteRepository) DeleteNote(ctx context.Context, ownerID int64, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(ownerID, id)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Int64("owner_id", ownerID).Str("note_id", id).Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Int64("owner_id", ownerID).Str("note_id", id).Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Int64("owner_id", ownerID).Str("note_id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// GetAllNotes returns every note owned by ownerID, oldest first.
// Returns an empty slice when the owner has no notes.
func (n *noteRepository) GetAllNotes(ctx context.Context, ownerID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNotesQuery(ownerID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.GetAllNotes").Int64("owner_id", ownerID).Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := n.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.GetAllNotes").Int64("owner_id", ownerID).Msg("failed to execute query for getting all owner notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 16)

	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "noteRepository.GetAllNotes").Int64("owner_id", ownerID).Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "noteRepository.GetAllNotes").Int64("owner_id", ownerID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}
