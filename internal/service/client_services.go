package service

import (
	"geonotes/internal/adapter"
	"geonotes/internal/logger"
	"geonotes/internal/store"
)

// ClientServices groups the client-side service layer. The edit workflow
// sees the server only through the narrow RecordStore, ObjectStore and
// MarkerRegistry interfaces; the HTTP adapter happens to satisfy all three.
type ClientServices struct {
	Editor   NoteEditor
	Notes    ClientNoteService
	Uploader AttachmentUploader
}

func NewClientServices(server adapter.ServerAdapter, storages *store.ClientStorages, logger *logger.Logger) *ClientServices {
	uploader := NewAttachmentUploader(server, logger)

	return &ClientServices{
		Uploader: uploader,
		Editor:   NewNoteEditor(server, uploader, server, storages.NoteCache, logger),
		Notes:    NewClientNoteService(server, server, storages.NoteCache, logger),
	}
}
