package service

import (
	"context"
	"io"

	"geonotes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type NoteService interface {
	CreateNote(ctx context.Context, ownerID int64, fields models.NoteFields) (models.Note, error)
	UpdateNote(ctx context.Context, ownerID int64, id string, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, ownerID int64, id string) error
	GetAllNotes(ctx context.Context, ownerID int64) ([]models.Note, error)

	// Subscribe emits a full snapshot of ownerID's notes immediately and then
	// again after every committed change, until ctx is cancelled. The channel
	// closes when the subscription ends for any reason; consumers restart by
	// subscribing again.
	Subscribe(ctx context.Context, ownerID int64) (<-chan models.NoteSnapshot, error)
}

type MarkerService interface {
	AppendMarker(ctx context.Context, marker models.Marker) (models.Marker, error)
	GetAllMarkers(ctx context.Context) ([]models.Marker, error)
}

type AttachmentService interface {
	Upload(ctx context.Context, kind models.AttachmentKind, body io.Reader) (models.RemoteRef, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
