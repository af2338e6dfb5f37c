package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"geonotes/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	// stream carries the subscription connection. It has no client-side
	// timeout: the event stream stays open until the context is cancelled
	// or the server goes away.
	stream *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	stream := resty.New().
		SetBaseURL(baseURL)

	return &httpServerAdapter{client: cli, stream: stream}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("register parse user id: %w", err)
	}

	h.SetToken(token)
	return models.User{UserID: userID, Login: credentials.Login}, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(token)
	return models.User{UserID: userID, Login: credentials.Login}, nil
}

func (h *httpServerAdapter) CreateNote(ctx context.Context, fields models.NoteFields) (models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateNoteRequest{Fields: fields}).
		Post("/api/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var created models.Note
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Note{}, fmt.Errorf("decode create note response: %w", err)
	}

	return created, nil
}

func (h *httpServerAdapter) UpdateNote(ctx context.Context, id string, update models.NoteUpdate) (models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UpdateNoteRequest{Update: update}).
		Put("/api/notes/" + id)
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var updated models.Note
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.Note{}, fmt.Errorf("decode update note response: %w", err)
	}

	return updated, nil
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/notes/" + id)
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetAllNotes(ctx context.Context) ([]models.Note, error) {
	resp, err := h.authedRequest(ctx).Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("get notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var snapshot models.NoteSnapshot
	if err = json.Unmarshal(resp.Body(), &snapshot); err != nil {
		return nil, fmt.Errorf("decode notes response: %w", err)
	}

	return snapshot.Notes, nil
}

func (h *httpServerAdapter) UploadAttachment(ctx context.Context, kind models.AttachmentKind, body io.Reader) (models.RemoteRef, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", kind.ContentType()).
		SetBody(body).
		Post("/api/attachments/" + string(kind))
	if err != nil {
		return models.RemoteRef{}, fmt.Errorf("upload attachment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteRef{}, err
	}

	var ref models.RemoteRef
	if err = json.Unmarshal(resp.Body(), &ref); err != nil {
		return models.RemoteRef{}, fmt.Errorf("decode attachment response: %w", err)
	}

	return ref, nil
}

func (h *httpServerAdapter) AppendMarker(ctx context.Context, marker models.Marker) (models.Marker, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AppendMarkerRequest{Marker: marker}).
		Post("/api/markers")
	if err != nil {
		return models.Marker{}, fmt.Errorf("append marker request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Marker{}, err
	}

	var saved models.Marker
	if err = json.Unmarshal(resp.Body(), &saved); err != nil {
		return models.Marker{}, fmt.Errorf("decode marker response: %w", err)
	}

	return saved, nil
}

func (h *httpServerAdapter) GetAllMarkers(ctx context.Context) ([]models.Marker, error) {
	resp, err := h.authedRequest(ctx).Get("/api/markers")
	if err != nil {
		return nil, fmt.Errorf("get markers request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var listing models.MarkerListing
	if err = json.Unmarshal(resp.Body(), &listing); err != nil {
		return nil, fmt.Errorf("decode markers response: %w", err)
	}

	return listing.Markers, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// parseUserIDFromJWT reads the "sub" claim without verifying the signature.
// The client only needs its own id for display; authorization is enforced by
// the server on every request.
func parseUserIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}
