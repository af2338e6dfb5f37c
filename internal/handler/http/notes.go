package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"geonotes/internal/logger"
	"geonotes/internal/utils"
	"geonotes/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	notes, err := h.services.NoteService.GetAllNotes(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listNotes").Msg("error getting notes")
		http.Error(w, "error getting notes", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.NoteSnapshot{Notes: notes}, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.NoteService.CreateNote(r.Context(), userID, req.Fields)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("error creating note")
		http.Error(w, "error creating note", statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID := chi.URLParam(r, "id")
	if noteID == "" {
		http.Error(w, "missing note id", http.StatusBadRequest)
		return
	}

	var req models.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.NoteService.UpdateNote(r.Context(), userID, noteID, req.Update)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Str("note_id", noteID).Msg("error updating note")
		http.Error(w, "error updating note", statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID := chi.URLParam(r, "id")
	if noteID == "" {
		http.Error(w, "missing note id", http.StatusBadRequest)
		return
	}

	if err := h.services.NoteService.DeleteNote(r.Context(), userID, noteID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteNote").Str("note_id", noteID).Msg("error deleting note")
		http.Error(w, "error deleting note", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
