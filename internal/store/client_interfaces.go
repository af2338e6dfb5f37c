package store

import (
	"context"

	"geonotes/models"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=client_interfaces.go -destination=../mock/client_store_mocks.go -package=mock

// LocalNoteCache is the client's local persistence: the last note snapshot
// received from the live subscription and the active draft of an edit
// session. Drafts are destroyed when a session commits or is abandoned.
type LocalNoteCache interface {
	// SaveSnapshot replaces the cached note set wholesale.
	SaveSnapshot(ctx context.Context, snapshot models.NoteSnapshot) error

	// LoadSnapshot returns the cached note set or [ErrNoCachedSnapshot].
	LoadSnapshot(ctx context.Context) (models.NoteSnapshot, error)

	// SaveDraft checkpoints the draft keyed by its note id. The empty note
	// id keys the draft of a brand-new note.
	SaveDraft(ctx context.Context, draft models.Draft) error

	// LoadDraft returns the draft for the note id or [ErrNoDraftFound].
	LoadDraft(ctx context.Context, noteID string) (models.Draft, error)

	// DeleteDraft removes the draft for the note id. Deleting an absent
	// draft is not an error.
	DeleteDraft(ctx context.Context, noteID string) error
}
