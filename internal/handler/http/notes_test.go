package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"geonotes/internal/service"
	"geonotes/internal/store"
	"geonotes/models"
)

func TestListNotes_RequiresAuth(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListNotes_Success(t *testing.T) {
	h, m := newTestHandler(t)
	expectAuthorized(m, 1)

	m.notes.EXPECT().
		GetAllNotes(gomock.Any(), int64(1)).
		Return([]models.Note{{ID: "n-1", OwnerID: 1, Text: "hello"}}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("Authorization", "Bearer valid-token")

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var snapshot models.NoteSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	require.Len(t, snapshot.Notes, 1)
	assert.Equal(t, "n-1", snapshot.Notes[0].ID)
}

func TestCreateNote_Success(t *testing.T) {
	h, m := newTestHandler(t)
	expectAuthorized(m, 1)

	m.notes.EXPECT().
		CreateNote(gomock.Any(), int64(1), models.NoteFields{Text: "Buy milk"}).
		Return(models.Note{ID: "n-1", OwnerID: 1, Text: "Buy milk"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(`{"fields":{"text":"Buy milk"}}`))
	req.Header.Set("Authorization", "Bearer valid-token")

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "n-1", created.ID)
}

func TestCreateNote_EmptyText(t *testing.T) {
	h, m := newTestHandler(t)
	expectAuthorized(m, 1)

	m.notes.EXPECT().
		CreateNote(gomock.Any(), int64(1), gomock.Any()).
		Return(models.Note{}, service.ErrValidationEmptyNoteText)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(`{"fields":{"text":"   "}}`))
	req.Header.Set("Authorization", "Bearer valid-token")

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateNote_Success(t *testing.T) {
	h, m := newTestHandler(t)
	expectAuthorized(m, 1)

	m.notes.EXPECT().
		UpdateNote(gomock.Any(), int64(1), "n-1", gomock.Any()).
		DoAndReturn(func(_ any, _ int64, _ string, update models.NoteUpdate) (models.Note, error) {
			require.NotNil(t, update.Text)
			return models.Note{ID: "n-1", OwnerID: 1, Text: *update.Text}, nil
		})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/notes/n-1", strings.NewReader(`{"update":{"text":"edited"}}`))
	req.Header.Set("Authorization", "Bearer valid-token")

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateNote_NotFound(t *testing.T) {
	h, m := newTestHandler(t)
	expectAuthorized(m, 1)

	m.notes.EXPECT().
		UpdateNote(gomock.Any(), int64(1), "missing", gomock.Any()).
		Return(models.Note{}, store.ErrNoteNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/notes/missing", strings.NewReader(`{"update":{"text":"edited"}}`))
	req.Header.Set("Authorization", "Bearer valid-token")

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteNote_Success(t *testing.T) {
	h, m := newTestHandler(t)
	expectAuthorized(m, 1)

	m.notes.EXPECT().
		DeleteNote(gomock.Any(), int64(1), "n-1").
		Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/notes/n-1", nil)
	req.Header.Set("Authorization", "Bearer valid-token")

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteNote_NotFound(t *testing.T) {
	h, m := newTestHandler(t)
	expectAuthorized(m, 1)

	m.notes.EXPECT().
		DeleteNote(gomock.Any(), int64(1), "missing").
		Return(store.ErrNoteNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/notes/missing", nil)
	req.Header.Set("Authorization", "Bearer valid-token")

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
