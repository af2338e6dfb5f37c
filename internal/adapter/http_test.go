package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geonotes/internal/utils"
	"geonotes/models"
)

func testToken(t *testing.T, userID int64) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("geonotes-test", userID, time.Hour, "test-key")
	require.NoError(t, err)
	return token.SignedString
}

func newTestAdapter(serverURL string) ServerAdapter {
	return NewHTTPServerAdapter(HTTPClientConfig{
		BaseURL: serverURL,
		Timeout: 5 * time.Second,
	})
}

func TestRegister_StoresToken(t *testing.T) {
	signed := testToken(t, 42)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/register", r.URL.Path)

		var credentials models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&credentials))
		require.Equal(t, "alice", credentials.Login)

		w.Header().Set("Authorization", "Bearer "+signed)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)

	user, err := a.Register(context.Background(), models.Credentials{Login: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.UserID)
	assert.Equal(t, signed, a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid login/password", http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)

	_, err := a.Login(context.Background(), models.Credentials{Login: "alice", Password: "wrong"})
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestCreateNote_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))
		require.Equal(t, "/api/notes", r.URL.Path)

		var req models.CreateNoteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "Buy milk", req.Fields.Text)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Note{ID: "n-1", Text: req.Fields.Text})
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	a.SetToken("stored-token")

	created, err := a.CreateNote(context.Background(), models.NoteFields{Text: "Buy milk"})
	require.NoError(t, err)
	assert.Equal(t, "n-1", created.ID)
}

func TestUpdateNote_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/notes/missing", r.URL.Path)
		http.Error(w, "error updating note", http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	a.SetToken("stored-token")

	text := "edited"
	_, err := a.UpdateNote(context.Background(), "missing", models.NoteUpdate{Text: &text})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteNote_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/notes/n-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	a.SetToken("stored-token")

	require.NoError(t, a.DeleteNote(context.Background(), "n-1"))
}

func TestGetAllNotes_DecodesSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/notes", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.NoteSnapshot{Notes: []models.Note{
			{ID: "n-1", Text: "hello"},
			{ID: "n-2", Text: "world"},
		}})
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	a.SetToken("stored-token")

	notes, err := a.GetAllNotes(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "n-2", notes[1].ID)
}

func TestUploadAttachment_StreamsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/attachments/image", r.URL.Path)
		require.Equal(t, "image/jpeg", r.Header.Get("Content-Type"))

		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Equal(t, "jpeg bytes", string(data))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.RemoteRef{
			Name: "images/1-abc",
			URL:  "http://" + r.Host + "/attachments/images/1-abc",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	a.SetToken("stored-token")

	ref, err := a.UploadAttachment(context.Background(), models.AttachmentImage, strings.NewReader("jpeg bytes"))
	require.NoError(t, err)
	assert.Equal(t, "images/1-abc", ref.Name)
	assert.Contains(t, ref.URL, "/attachments/images/1-abc")
}

func TestAppendMarker_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/markers", r.URL.Path)

		var req models.AppendMarkerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, 55.67, req.Marker.Latitude)

		saved := req.Marker
		saved.ID = "m-1"
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(saved)
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	a.SetToken("stored-token")

	saved, err := a.AppendMarker(context.Background(), models.Marker{Latitude: 55.67, Longitude: 12.56, Note: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "m-1", saved.ID)
}

func TestGetAllMarkers_DecodesListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/markers", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.MarkerListing{Markers: []models.Marker{{ID: "m-1"}}})
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	a.SetToken("stored-token")

	markers, err := a.GetAllMarkers(context.Background())
	require.NoError(t, err)
	require.Len(t, markers, 1)
}

func TestSubscribeNotes_StreamsSnapshots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/notes/events", r.URL.Path)
		require.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))

		flusher, ok := w.(http.Flusher)
		require.True(t, ok)

		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)

		for _, snapshot := range []models.NoteSnapshot{
			{Notes: []models.Note{{ID: "n-1", Text: "hello"}}},
			{Notes: []models.Note{{ID: "n-1", Text: "hello"}, {ID: "n-2", Text: "world"}}},
		} {
			payload, err := json.Marshal(snapshot)
			require.NoError(t, err)
			fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)
	a.SetToken("stored-token")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	snapshots, err := a.SubscribeNotes(ctx)
	require.NoError(t, err)

	var received []models.NoteSnapshot
	for snapshot := range snapshots {
		received = append(received, snapshot)
	}

	require.Len(t, received, 2)
	assert.Len(t, received[0].Notes, 1)
	assert.Len(t, received[1].Notes, 2)
}

func TestSubscribeNotes_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(srv.URL)

	_, err := a.SubscribeNotes(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}
