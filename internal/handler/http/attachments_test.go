package http

import (
	"encoding/json"
	"io"
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

func TestUploadAttachment_Image(t *testing.T) {
	h, m := newTestHandler(t)
	expectAuthorized(m, 1)

	m.attachments.EXPECT().
		Upload(gomock.Any(), models.AttachmentImage, gomock.Any()).
		DoAndReturn(func(_ any, _ models.AttachmentKind, body io.Reader) (models.RemoteRef, error) {
			data, err := io.ReadAll(body)
			require.NoError(t, err)
			require.Equal(t, "jpeg bytes", string(data))
			return models.RemoteRef{Name: "images/1-abc", URL: "http://localhost/attachments/images/1-abc"}, nil
		})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/attachments/image", strings.NewReader("jpeg bytes"))
	req.Header.Set("Authorization", "Bearer valid-token")

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var ref models.RemoteRef
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ref))
	assert.Equal(t, "images/1-abc", ref.Name)
	assert.NotEmpty(t, ref.URL)
}

func TestUploadAttachment_UnsupportedKind(t *testing.T) {
	h, m := newTestHandler(t)
	expectAuthorized(m, 1)

	m.attachments.EXPECT().
		Upload(gomock.Any(), models.AttachmentKind("video"), gomock.Any()).
		Return(models.RemoteRef{}, service.ErrUnsupportedAttachmentKind)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/attachments/video", strings.NewReader("x"))
	req.Header.Set("Authorization", "Bearer valid-token")

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadAttachment_RequiresAuth(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/attachments/image", strings.NewReader("x"))

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServeAttachment_Success(t *testing.T) {
	h, m := newTestHandler(t)

	m.attachments.EXPECT().
		Open(gomock.Any(), "images/1-abc").
		Return(io.NopCloser(strings.NewReader("jpeg bytes")), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/attachments/images/1-abc", nil)

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jpeg bytes", rec.Body.String())
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
}

func TestServeAttachment_AudioContentType(t *testing.T) {
	h, m := newTestHandler(t)

	m.attachments.EXPECT().
		Open(gomock.Any(), "audio/1-abc").
		Return(io.NopCloser(strings.NewReader("m4a bytes")), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/attachments/audio/1-abc", nil)

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "audio/mp4", rec.Header().Get("Content-Type"))
}

func TestServeAttachment_NotFound(t *testing.T) {
	h, m := newTestHandler(t)

	m.attachments.EXPECT().
		Open(gomock.Any(), "images/missing").
		Return(nil, store.ErrObjectNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/attachments/images/missing", nil)

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
