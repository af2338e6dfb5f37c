package service

import (
	"context"
	"fmt"

	"geonotes/internal/logger"
	"geonotes/models"
)

type attachmentUploader struct {
	objects ObjectStore
	logger  *logger.Logger
}

func NewAttachmentUploader(objects ObjectStore, logger *logger.Logger) AttachmentUploader {
	return &attachmentUploader{
		objects: objects,
		logger:  logger,
	}
}

// Upload stores one staged attachment. Every failure, from opening the local
// handle to the transfer itself, is wrapped in ErrUpload so the edit workflow
// can abort the save attempt with a single errors.Is check.
func (u *attachmentUploader) Upload(ctx context.Context, attachment models.Attachment) (models.RemoteRef, error) {
	log := logger.FromContext(ctx)

	if !attachment.Kind.Valid() {
		return models.RemoteRef{}, fmt.Errorf("%w: %w", ErrUpload, ErrUnsupportedAttachmentKind)
	}

	body, err := attachment.Open()
	if err != nil {
		log.Err(err).
			Str("func", "attachmentUploader.Upload").
			Str("kind", string(attachment.Kind)).
			Msg("failed to open staged attachment")
		return models.RemoteRef{}, fmt.Errorf("%w: %w", ErrUpload, err)
	}
	defer body.Close()

	ref, err := u.objects.UploadAttachment(ctx, attachment.Kind, body)
	if err != nil {
		log.Err(err).
			Str("func", "attachmentUploader.Upload").
			Str("kind", string(attachment.Kind)).
			Msg("attachment upload failed")
		return models.RemoteRef{}, fmt.Errorf("%w: %w", ErrUpload, err)
	}

	log.Debug().
		Str("func", "attachmentUploader.Upload").
		Str("name", ref.Name).
		Msg("attachment uploaded")

	return ref, nil
}
