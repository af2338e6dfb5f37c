package service

import (
	"geonotes/internal/config"
	"geonotes/internal/logger"
	"geonotes/internal/store"
)

type Services struct {
	AuthService       AuthService
	NoteService       NoteService
	MarkerService     MarkerService
	AttachmentService AttachmentService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg.App, logger),
		NoteService:       NewNoteService(storages.NoteRepository, storages.NoteChanges, logger),
		MarkerService:     NewMarkerService(storages.MarkerRepository, logger),
		AttachmentService: NewAttachmentService(storages.BlobStorage, logger),
	}
}
