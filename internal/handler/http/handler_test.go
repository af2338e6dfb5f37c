package http

import (
	"testing"

	"go.uber.org/mock/gomock"

	"geonotes/internal/logger"
	"geonotes/internal/mock"
	"geonotes/internal/service"
	"geonotes/models"
)

type handlerMocks struct {
	auth        *mock.MockAuthService
	notes       *mock.MockNoteService
	markers     *mock.MockMarkerService
	attachments *mock.MockAttachmentService
}

func newTestHandler(t *testing.T) (*Handler, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := handlerMocks{
		auth:        mock.NewMockAuthService(ctrl),
		notes:       mock.NewMockNoteService(ctrl),
		markers:     mock.NewMockMarkerService(ctrl),
		attachments: mock.NewMockAttachmentService(ctrl),
	}

	services := &service.Services{
		AuthService:       m.auth,
		NoteService:       m.notes,
		MarkerService:     m.markers,
		AttachmentService: m.attachments,
	}

	return NewHandler(services, "v1.0.0-test", logger.Nop()), m
}

// expectAuthorized makes the auth middleware accept the "Bearer valid-token"
// header and resolve it to userID.
func expectAuthorized(m handlerMocks, userID int64) {
	m.auth.EXPECT().
		ParseToken(gomock.Any(), "valid-token").
		Return(models.Token{UserID: userID}, nil).
		AnyTimes()
}
