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
	"geonotes/models"
)

func TestListMarkers_Success(t *testing.T) {
	h, m := newTestHandler(t)
	expectAuthorized(m, 1)

	m.markers.EXPECT().
		GetAllMarkers(gomock.Any()).
		Return([]models.Marker{{ID: "m-1", Note: "hello"}}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/markers", nil)
	req.Header.Set("Authorization", "Bearer valid-token")

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var listing models.MarkerListing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Len(t, listing.Markers, 1)
	assert.Equal(t, "m-1", listing.Markers[0].ID)
}

func TestAppendMarker_Success(t *testing.T) {
	h, m := newTestHandler(t)
	expectAuthorized(m, 1)

	m.markers.EXPECT().
		AppendMarker(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, marker models.Marker) (models.Marker, error) {
			require.Equal(t, "Buy milk", marker.Note)
			marker.ID = "m-1"
			return marker, nil
		})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/markers",
		strings.NewReader(`{"marker":{"latitude":55.67,"longitude":12.56,"note":"Buy milk"}}`))
	req.Header.Set("Authorization", "Bearer valid-token")

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var saved models.Marker
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, "m-1", saved.ID)
}

func TestAppendMarker_BadData(t *testing.T) {
	h, m := newTestHandler(t)
	expectAuthorized(m, 1)

	m.markers.EXPECT().
		AppendMarker(gomock.Any(), gomock.Any()).
		Return(models.Marker{}, service.ErrValidationBadMarker)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/markers",
		strings.NewReader(`{"marker":{"latitude":123,"longitude":0,"note":"x"}}`))
	req.Header.Set("Authorization", "Bearer valid-token")

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAppendMarker_RequiresAuth(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/markers", strings.NewReader(`{}`))

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
