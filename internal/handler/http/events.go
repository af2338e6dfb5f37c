package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"geonotes/internal/logger"
	"geonotes/internal/utils"
)

// noteEvents serves the live note subscription as a server-sent event
// stream. Every event carries the owner's full note set at the moment of a
// change; the first event arrives immediately after the stream opens.
//
// The stream ends when the client disconnects or a snapshot read fails.
// Clients are expected to reconnect and will receive a fresh initial
// snapshot, so a dropped stream never loses state.
func (h *Handler) noteEvents(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		log.Error().Msg("response writer does not support streaming")
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	snapshots, err := h.services.NoteService.Subscribe(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.noteEvents").Msg("error opening subscription")
		http.Error(w, "error opening subscription", statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for snapshot := range snapshots {
		payload, marshalErr := json.Marshal(snapshot)
		if marshalErr != nil {
			log.Err(marshalErr).Str("func", "*Handler.noteEvents").Msg("error encoding snapshot")
			return
		}

		if _, writeErr := fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", payload); writeErr != nil {
			log.Debug().Err(writeErr).Msg("subscriber went away")
			return
		}
		flusher.Flush()
	}
}
