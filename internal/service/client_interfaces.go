package service

import (
	"context"
	"io"

	"geonotes/models"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=client_interfaces.go -destination=../mock/client_mocks.go -package=mock

// RecordStore is the client's view of the note persistence service. The edit
// workflow depends on this interface only; the HTTP adapter satisfies it.
type RecordStore interface {
	// CreateNote persists a new note and returns it with id and timestamps
	// assigned.
	CreateNote(ctx context.Context, fields models.NoteFields) (models.Note, error)

	// UpdateNote applies a partial patch to an existing note. Updating an
	// unknown id is an error, never an upsert.
	UpdateNote(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error)

	// DeleteNote removes a note by id.
	DeleteNote(ctx context.Context, id string) error

	// GetAllNotes returns the caller's full note set, oldest first.
	GetAllNotes(ctx context.Context) ([]models.Note, error)

	// SubscribeNotes streams a fresh full snapshot on every change to the
	// caller's note set. The channel closes when ctx is cancelled or the
	// stream drops; consumers resubscribe to recover.
	SubscribeNotes(ctx context.Context) (<-chan models.NoteSnapshot, error)
}

// ObjectStore is the client's view of binary attachment storage.
type ObjectStore interface {
	// UploadAttachment stores one object and returns its retrieval
	// reference. Each call produces a new object; nothing is overwritten.
	UploadAttachment(ctx context.Context, kind models.AttachmentKind, body io.Reader) (models.RemoteRef, error)
}

// MarkerRegistry is the client's view of the shared append-only marker
// collection.
type MarkerRegistry interface {
	AppendMarker(ctx context.Context, marker models.Marker) (models.Marker, error)
	GetAllMarkers(ctx context.Context) ([]models.Marker, error)
}

// SessionState is the lifecycle state of a local edit session.
type SessionState int

const (
	// StateClean: session open, no unsaved modifications.
	StateClean SessionState = iota

	// StateEditing: the draft differs from the base note.
	StateEditing

	// StateSaving: a save attempt is in flight. A second trigger is
	// rejected with ErrSaveInProgress.
	StateSaving

	// StateSaveFailed: the last save attempt failed; the draft is kept so
	// the user can retry or abandon. There are no automatic retries.
	StateSaveFailed
)

func (s SessionState) String() string {
	switch s {
	case StateClean:
		return "clean"
	case StateEditing:
		return "editing"
	case StateSaving:
		return "saving"
	case StateSaveFailed:
		return "save-failed"
	default:
		return "unknown"
	}
}

// NoteEditor drives the note edit workflow: one session at a time, from
// opening a draft through uploads and the record commit.
type NoteEditor interface {
	// Begin opens an edit session. base is nil for a brand-new note. An
	// abandoned draft for the same note found in the local cache is
	// restored into the session.
	Begin(ctx context.Context, base *models.Note) error

	// SetText, SetImage, SetAudio and SetLocation modify the draft and
	// move the session to Editing. The draft is checkpointed to the local
	// cache on every change.
	SetText(ctx context.Context, text string) error
	SetImage(ctx context.Context, attachment *models.Attachment) error
	SetAudio(ctx context.Context, attachment *models.Attachment) error
	SetLocation(ctx context.Context, location *models.GeoPoint) error

	// Save runs one save attempt: validate, upload attachments in order,
	// commit the record, then best-effort marker append. On success the
	// session returns to Clean with the persisted note as its new base.
	Save(ctx context.Context) (models.Note, error)

	// Abandon discards the draft and closes the session. Nothing already
	// persisted is touched.
	Abandon(ctx context.Context) error

	// State reports the current session state.
	State() SessionState

	// Draft returns a copy of the current draft.
	Draft() (models.Draft, error)
}

// AttachmentUploader stores one staged attachment per call.
type AttachmentUploader interface {
	// Upload opens the staged attachment and streams it to the object
	// store. Failures are wrapped in ErrUpload.
	Upload(ctx context.Context, attachment models.Attachment) (models.RemoteRef, error)
}

// ClientNoteService is the read-and-delete side of the client: the list the
// user sees and the delete action. Editing goes through NoteEditor.
type ClientNoteService interface {
	// ListNotes returns the freshest note set available: the server's if
	// reachable, otherwise the locally cached snapshot.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// DeleteNote removes a note on the server and refreshes the cache.
	DeleteNote(ctx context.Context, id string) error

	// ListMarkers returns the shared marker collection.
	ListMarkers(ctx context.Context) ([]models.Marker, error)
}
