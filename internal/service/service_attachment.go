package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"geonotes/internal/logger"
	"geonotes/internal/store"
	"geonotes/models"
)

// attachmentService is the concrete implementation of AttachmentService over
// the blob store. Every upload gets a fresh generated object name, so two
// uploads never collide and an attachment reference, once handed out, keeps
// pointing at the same bytes forever.
type attachmentService struct {
	blobStorage store.BlobStorage
	logger      *logger.Logger
}

// NewAttachmentService constructs an AttachmentService backed by the given
// blob store.
func NewAttachmentService(blobStorage store.BlobStorage, logger *logger.Logger) AttachmentService {
	return &attachmentService{
		blobStorage: blobStorage,
		logger:      logger,
	}
}

// Upload streams body into a new object under the kind's namespace and
// returns its stable reference.
//
// Returns ErrUnsupportedAttachmentKind for kinds other than image or audio
// and ErrValidationEmptyAttachmentBody when body is nil.
func (a *attachmentService) Upload(ctx context.Context, kind models.AttachmentKind, body io.Reader) (models.RemoteRef, error) {
	log := logger.FromContext(ctx)

	if !kind.Valid() {
		return models.RemoteRef{}, ErrUnsupportedAttachmentKind
	}
	if body == nil {
		return models.RemoteRef{}, ErrValidationEmptyAttachmentBody
	}

	name := fmt.Sprintf("%s/%d-%s", kind.Namespace(), time.Now().UnixMilli(), uuid.NewString())

	if err := a.blobStorage.Save(ctx, name, body); err != nil {
		log.Err(err).Str("object", name).Msg("attachment upload ended with error")
		return models.RemoteRef{}, fmt.Errorf("attachment upload ended with error: %w", err)
	}

	return models.RemoteRef{
		Name: name,
		URL:  a.blobStorage.URL(name),
	}, nil
}

// Open returns a reader over a previously uploaded attachment.
// store.ErrObjectNotFound passes through when the name is unknown.
func (a *attachmentService) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	rc, err := a.blobStorage.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("attachment open ended with error: %w", err)
	}

	return rc, nil
}
