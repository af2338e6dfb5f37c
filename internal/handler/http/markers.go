package http

import (
	"encoding/json"
	"net/http"

	"geonotes/internal/logger"
	"geonotes/internal/utils"
	"geonotes/models"
)

func (h *Handler) listMarkers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	markers, err := h.services.MarkerService.GetAllMarkers(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listMarkers").Msg("error getting markers")
		http.Error(w, "error getting markers", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.MarkerListing{Markers: markers}, http.StatusOK)
}

func (h *Handler) appendMarker(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AppendMarkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.appendMarker").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.MarkerService.AppendMarker(r.Context(), req.Marker)
	if err != nil {
		log.Err(err).Str("func", "*Handler.appendMarker").Msg("error appending marker")
		http.Error(w, "error appending marker", statusFromError(err))
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}
