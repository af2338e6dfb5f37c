package adapter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"geonotes/models"
)

// SubscribeNotes opens the server-sent event stream of note snapshots. The
// response body stays open for the lifetime of the subscription; events are
// decoded as they arrive and forwarded on the returned channel.
//
// The channel closes when ctx is cancelled, the connection drops, or the
// stream carries an undecodable event. Callers resubscribe to recover; the
// first event of a fresh stream is always a full snapshot, so nothing is
// lost across reconnects.
func (h *httpServerAdapter) SubscribeNotes(ctx context.Context) (<-chan models.NoteSnapshot, error) {
	req := h.stream.R().SetContext(ctx).SetDoNotParseResponse(true)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	resp, err := req.Get("/api/notes/events")
	if err != nil {
		return nil, fmt.Errorf("subscribe request: %w", err)
	}

	raw := resp.RawBody()
	if resp.StatusCode() != http.StatusOK {
		raw.Close()
		if resp.StatusCode() == http.StatusUnauthorized {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("http %d opening subscription", resp.StatusCode())
	}

	out := make(chan models.NoteSnapshot)

	go func() {
		defer close(out)
		defer raw.Close()

		scanner := bufio.NewScanner(raw)
		// Snapshots grow with the note set; allow events well beyond the
		// default line limit.
		scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data: ") {
				continue
			}

			var snapshot models.NoteSnapshot
			if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &snapshot); err != nil {
				return
			}

			select {
			case out <- snapshot:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
