// Package adapter provides the transport layer used by the client to talk to
// the notes server.
//
// The primary abstraction is [ServerAdapter], which decouples the client's
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) whose subscription stream is carried
// over server-sent events.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"

	"geonotes/models"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the notes
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account and stores the returned bearer token.
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login authenticates and stores the returned bearer token.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// CreateNote asks the server to persist a new note built from fields.
	// The server assigns the note id.
	CreateNote(ctx context.Context, fields models.NoteFields) (models.Note, error)

	// UpdateNote applies a partial patch to an existing note. Returns
	// [ErrNotFound] (wrapped) when the id does not exist; an update never
	// creates a record.
	UpdateNote(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error)

	// DeleteNote removes a note by id.
	DeleteNote(ctx context.Context, id string) error

	// GetAllNotes returns the full current note set of the authenticated
	// user, oldest first.
	GetAllNotes(ctx context.Context) ([]models.Note, error)

	// SubscribeNotes opens the live snapshot stream. Every element is the
	// full note set at the moment of a change, starting with an immediate
	// initial snapshot. The channel closes when ctx is cancelled or the
	// stream drops; callers resubscribe to recover.
	SubscribeNotes(ctx context.Context) (<-chan models.NoteSnapshot, error)

	// UploadAttachment streams body into server-side object storage under
	// the kind's namespace and returns the stable reference.
	UploadAttachment(ctx context.Context, kind models.AttachmentKind, body io.Reader) (models.RemoteRef, error)

	// AppendMarker appends a marker to the shared registry collection.
	AppendMarker(ctx context.Context, marker models.Marker) (models.Marker, error)

	// GetAllMarkers returns the full shared marker collection, oldest first.
	GetAllMarkers(ctx context.Context) ([]models.Marker, error)
}
