package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"dario.cat/mergo"

	"geonotes/internal/logger"
	"geonotes/internal/store"
	"geonotes/models"
)

// noteEditor holds at most one edit session at a time, mirroring the single
// edit surface of the UI. The session moves Clean -> Editing -> Saving and
// lands back in Clean on success or in SaveFailed otherwise; the draft is
// kept across failures so the user decides whether to retry or abandon.
type noteEditor struct {
	records  RecordStore
	uploader AttachmentUploader
	markers  MarkerRegistry
	cache    store.LocalNoteCache
	logger   *logger.Logger

	mu     sync.Mutex
	active bool
	state  SessionState
	base   *models.Note
	draft  models.Draft
}

func NewNoteEditor(
	records RecordStore,
	uploader AttachmentUploader,
	markers MarkerRegistry,
	cache store.LocalNoteCache,
	logger *logger.Logger,
) NoteEditor {
	return &noteEditor{
		records:  records,
		uploader: uploader,
		markers:  markers,
		cache:    cache,
		logger:   logger,
	}
}

func (e *noteEditor) Begin(ctx context.Context, base *models.Note) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active && e.state == StateSaving {
		return ErrSaveInProgress
	}

	noteID := ""
	if base != nil {
		copied := *base
		base = &copied
		noteID = base.ID
	}

	e.active = true
	e.base = base
	e.state = StateClean
	e.draft = models.Draft{NoteID: noteID}
	if base != nil {
		e.draft.Text = base.Text
	}

	// A draft left behind by a crashed or abandoned-on-exit session is
	// restored so the user does not lose typed text.
	if restored, err := e.cache.LoadDraft(ctx, noteID); err == nil {
		e.draft = restored
		e.state = StateEditing
		logger.FromContext(ctx).Info().
			Str("func", "noteEditor.Begin").
			Str("note_id", noteID).
			Msg("restored unsaved draft from local cache")
	} else if !errors.Is(err, store.ErrNoDraftFound) {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "noteEditor.Begin").
			Msg("could not read draft cache")
	}

	return nil
}

func (e *noteEditor) SetText(ctx context.Context, text string) error {
	return e.edit(ctx, func(d *models.Draft) { d.Text = text })
}

func (e *noteEditor) SetImage(ctx context.Context, attachment *models.Attachment) error {
	return e.edit(ctx, func(d *models.Draft) { d.Image = attachment })
}

func (e *noteEditor) SetAudio(ctx context.Context, attachment *models.Attachment) error {
	return e.edit(ctx, func(d *models.Draft) { d.Audio = attachment })
}

func (e *noteEditor) SetLocation(ctx context.Context, location *models.GeoPoint) error {
	return e.edit(ctx, func(d *models.Draft) { d.Location = location })
}

func (e *noteEditor) edit(ctx context.Context, apply func(*models.Draft)) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.active {
		return ErrNoActiveSession
	}
	if e.state == StateSaving {
		return ErrSaveInProgress
	}

	apply(&e.draft)
	e.state = StateEditing

	// Checkpoint failures do not block editing; the draft only loses its
	// crash resilience.
	if err := e.cache.SaveDraft(ctx, e.draft); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "noteEditor.edit").
			Msg("could not checkpoint draft")
	}

	return nil
}

// Save runs one attempt of the save workflow:
//
//  1. trim-validate the text; an empty result blocks the save with no I/O
//     and leaves the session state where it was;
//  2. upload the newly picked image, then the newly picked audio;
//  3. merge resolved references with those kept from the base note;
//  4. commit the record: create for a new note, update for an existing one;
//  5. best-effort marker append when the location was set or changed in
//     this session.
//
// An upload failure aborts before any record write; objects already uploaded
// in the attempt are not deleted. The record commit alone defines success.
// There are no automatic retries at any step.
func (e *noteEditor) Save(ctx context.Context) (models.Note, error) {
	e.mu.Lock()
	if !e.active {
		e.mu.Unlock()
		return models.Note{}, ErrNoActiveSession
	}
	if e.state == StateSaving {
		e.mu.Unlock()
		return models.Note{}, ErrSaveInProgress
	}
	prev := e.state
	e.state = StateSaving
	draft := e.draft
	base := e.base
	e.mu.Unlock()

	log := logger.FromContext(ctx)

	trimmed := strings.TrimSpace(draft.Text)
	if trimmed == "" {
		// A locally blocked save leaves the session exactly as it was.
		e.setState(prev)
		return models.Note{}, ErrValidationEmptyNoteText
	}

	var imageRef, audioRef *string

	// Image strictly before audio.
	if draft.Image != nil {
		ref, err := e.uploader.Upload(ctx, *draft.Image)
		if err != nil {
			e.setState(StateSaveFailed)
			return models.Note{}, err
		}
		imageRef = &ref.URL
	}
	if draft.Audio != nil {
		ref, err := e.uploader.Upload(ctx, *draft.Audio)
		if err != nil {
			e.setState(StateSaveFailed)
			return models.Note{}, err
		}
		audioRef = &ref.URL
	}

	// Honour cancellation between the uploads and the commit: nothing has
	// been written to the record store yet, so the attempt stops cleanly.
	if err := ctx.Err(); err != nil {
		e.setState(StateSaveFailed)
		return models.Note{}, fmt.Errorf("save cancelled before commit: %w", err)
	}

	fields := models.NoteFields{
		Text:     trimmed,
		ImageRef: imageRef,
		AudioRef: audioRef,
		Location: draft.Location,
	}
	if base != nil {
		// References not replaced in this session carry over from the
		// base note.
		kept := models.NoteFields{
			ImageRef: base.ImageRef,
			AudioRef: base.AudioRef,
			Location: base.Location,
		}
		if err := mergo.Merge(&fields, kept); err != nil {
			e.setState(StateSaveFailed)
			return models.Note{}, fmt.Errorf("merge base note fields: %w", err)
		}
	}

	saved, err := e.commit(ctx, base, fields)
	if err != nil {
		log.Err(err).
			Str("func", "noteEditor.Save").
			Str("note_id", draft.NoteID).
			Msg("record commit failed")
		e.setState(StateSaveFailed)
		return models.Note{}, fmt.Errorf("%w: %w", ErrRecordStore, err)
	}

	if locationChanged(base, draft.Location) {
		e.appendMarker(ctx, saved, *draft.Location)
	}

	if err = e.cache.DeleteDraft(ctx, draft.NoteID); err != nil {
		log.Warn().Err(err).
			Str("func", "noteEditor.Save").
			Msg("could not drop committed draft from cache")
	}

	e.mu.Lock()
	e.base = &saved
	e.draft = models.Draft{NoteID: saved.ID, Text: saved.Text}
	e.state = StateClean
	e.mu.Unlock()

	return saved, nil
}

func (e *noteEditor) commit(ctx context.Context, base *models.Note, fields models.NoteFields) (models.Note, error) {
	if base == nil {
		return e.records.CreateNote(ctx, fields)
	}

	update := models.NoteUpdate{
		Text:     &fields.Text,
		ImageRef: fields.ImageRef,
		AudioRef: fields.AudioRef,
		Location: fields.Location,
	}
	return e.records.UpdateNote(ctx, base.ID, update)
}

// appendMarker copies the persisted note's text and references into a new
// marker. A failure here never fails the save: the note is already
// committed, so the error is logged and swallowed.
func (e *noteEditor) appendMarker(ctx context.Context, saved models.Note, location models.GeoPoint) {
	marker := models.Marker{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		Note:      saved.Text,
		ImageRef:  saved.ImageRef,
		AudioRef:  saved.AudioRef,
	}

	if _, err := e.markers.AppendMarker(ctx, marker); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "noteEditor.appendMarker").
			Str("note_id", saved.ID).
			Msg("marker append failed; note is saved")
	}
}

// locationChanged reports whether the session picked a location the base
// note did not already have. Markers are appended only then: re-saving a
// note without touching its location appends nothing.
func locationChanged(base *models.Note, picked *models.GeoPoint) bool {
	if picked == nil {
		return false
	}
	if base == nil || base.Location == nil {
		return true
	}
	return *base.Location != *picked
}

func (e *noteEditor) Abandon(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.active {
		return ErrNoActiveSession
	}
	if e.state == StateSaving {
		return ErrSaveInProgress
	}

	if err := e.cache.DeleteDraft(ctx, e.draft.NoteID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "noteEditor.Abandon").
			Msg("could not drop abandoned draft from cache")
	}

	e.active = false
	e.base = nil
	e.draft = models.Draft{}
	e.state = StateClean

	return nil
}

func (e *noteEditor) State() SessionState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *noteEditor) Draft() (models.Draft, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.active {
		return models.Draft{}, ErrNoActiveSession
	}
	return e.draft, nil
}

func (e *noteEditor) setState(s SessionState) {
	e.mu.Lock()
	e.state = s
	e.mu.Unlock()
}
