package store

import (
	"context"
	"io"

	"geonotes/models"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=../mock/store_mocks.go -package=mock

// UserRepository persists user accounts for the authentication supplement.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns [ErrLoginAlreadyExists] if the login is
	// taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns the user with the given login or
	// [ErrNoUserWasFound].
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// NoteRepository is the persistence half of the record store: a per-owner
// mapping from note id to note record.
type NoteRepository interface {
	// CreateNote inserts a new note, assigning its id, and returns the
	// persisted record.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// UpdateNote applies a partial patch to an existing note and returns
	// the updated record. Returns [ErrNoteNotFound] when the id does not
	// exist for the owner; there are no upsert semantics.
	UpdateNote(ctx context.Context, ownerID int64, id string, update models.NoteUpdate) (models.Note, error)

	// DeleteNote removes the note by id. Returns [ErrNoteNotFound] when
	// nothing was deleted.
	DeleteNote(ctx context.Context, ownerID int64, id string) error

	// GetAllNotes returns every note owned by ownerID, oldest first.
	GetAllNotes(ctx context.Context, ownerID int64) ([]models.Note, error)
}

// MarkerRepository is the append-only marker registry collection. No update
// or delete operations exist by design.
type MarkerRepository interface {
	// AppendMarker inserts a marker, assigning its id, and returns the
	// persisted record.
	AppendMarker(ctx context.Context, marker models.Marker) (models.Marker, error)

	// GetAllMarkers returns the full shared collection, oldest first.
	GetAllMarkers(ctx context.Context) ([]models.Marker, error)
}

// BlobStorage is a name-addressed, write-once binary object store. Object
// names carry a namespace prefix ("images/...", "audio/...") generated by
// the caller; names are never reused.
type BlobStorage interface {
	// Save streams r into a new object under name. Returns
	// [ErrObjectAlreadyExists] when the name is taken — callers generate a
	// fresh name per upload instead of overwriting.
	Save(ctx context.Context, name string, r io.Reader) error

	// Open returns a reader over a previously written object, or
	// [ErrObjectNotFound].
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// URL resolves the publicly fetchable URL of a written object.
	URL(name string) string
}
