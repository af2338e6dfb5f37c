package service

import (
	"context"
	"fmt"
	"strings"

	"geonotes/internal/logger"
	"geonotes/internal/store"
	"geonotes/models"
)

// noteService is the concrete implementation of NoteService. It guards every
// write with validation, delegates persistence to a NoteRepository, and
// announces each committed write on the change hub so that live
// subscriptions receive a fresh snapshot.
type noteService struct {
	noteRepository store.NoteRepository
	changes        *store.NoteChangeHub
	logger         *logger.Logger
}

// NewNoteService constructs a NoteService backed by the given repository and
// change hub.
func NewNoteService(noteRepository store.NoteRepository, changes *store.NoteChangeHub, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		changes:        changes,
		logger:         logger,
	}
}

// CreateNote validates fields and persists a new note for ownerID. The note
// id is assigned by the record store.
//
// Returns ErrValidationEmptyNoteText when the text is blank after trimming,
// ErrValidationBadLocation when the location is out of range.
func (n *noteService) CreateNote(ctx context.Context, ownerID int64, fields models.NoteFields) (models.Note, error) {
	log := logger.FromContext(ctx)

	text := strings.TrimSpace(fields.Text)
	if text == "" {
		return models.Note{}, ErrValidationEmptyNoteText
	}
	if err := validateLocation(fields.Location); err != nil {
		return models.Note{}, err
	}

	created, err := n.noteRepository.CreateNote(ctx, models.Note{
		OwnerID:  ownerID,
		Text:     text,
		ImageRef: fields.ImageRef,
		AudioRef: fields.AudioRef,
		Location: fields.Location,
	})
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	n.changes.Publish(ownerID)

	return created, nil
}

// UpdateNote applies a partial update to an existing note. An update never
// creates a record: store.ErrNoteNotFound passes through when the id does
// not exist for ownerID.
func (n *noteService) UpdateNote(ctx context.Context, ownerID int64, id string, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	if update.Text == nil && update.ImageRef == nil && update.AudioRef == nil && update.Location == nil {
		return models.Note{}, ErrValidationEmptyUpdate
	}
	if update.Text != nil {
		text := strings.TrimSpace(*update.Text)
		if text == "" {
			return models.Note{}, ErrValidationEmptyNoteText
		}
		update.Text = &text
	}
	if err := validateLocation(update.Location); err != nil {
		return models.Note{}, err
	}

	updated, err := n.noteRepository.UpdateNote(ctx, ownerID, id, update)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Str("note_id", id).Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	n.changes.Publish(ownerID)

	return updated, nil
}

// DeleteNote removes a note. Markers appended from it stay behind.
func (n *noteService) DeleteNote(ctx context.Context, ownerID int64, id string) error {
	log := logger.FromContext(ctx)

	if err := n.noteRepository.DeleteNote(ctx, ownerID, id); err != nil {
		log.Err(err).Int64("owner_id", ownerID).Str("note_id", id).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	n.changes.Publish(ownerID)

	return nil
}

// GetAllNotes returns every note owned by ownerID, oldest first.
func (n *noteService) GetAllNotes(ctx context.Context, ownerID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	notes, err := n.noteRepository.GetAllNotes(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("getting all notes ended with error")
		return nil, fmt.Errorf("getting all notes ended with error: %w", err)
	}

	return notes, nil
}

// Subscribe opens a snapshot stream for ownerID. The first snapshot is sent
// immediately; after that, every committed change to the owner's note set
// triggers a re-read and a new full snapshot. The stream carries state, not
// deltas, so a consumer that misses intermediate signals still converges.
//
// The returned channel closes when ctx is cancelled or when a re-read fails;
// consumers recover by subscribing again.
func (n *noteService) Subscribe(ctx context.Context, ownerID int64) (<-chan models.NoteSnapshot, error) {
	log := logger.FromContext(ctx)

	signals, cancel := n.changes.Subscribe(ownerID)
	out := make(chan models.NoteSnapshot, 1)

	go func() {
		defer close(out)
		defer cancel()

		for {
			notes, err := n.noteRepository.GetAllNotes(ctx, ownerID)
			if err != nil {
				if ctx.Err() == nil {
					log.Err(err).Int64("owner_id", ownerID).Msg("snapshot read failed, closing subscription")
				}
				return
			}

			select {
			case out <- models.NoteSnapshot{Notes: notes}:
			case <-ctx.Done():
				return
			}

			select {
			case <-signals:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
