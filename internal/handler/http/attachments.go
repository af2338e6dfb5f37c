package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"geonotes/internal/logger"
	"geonotes/internal/utils"
	"geonotes/models"
)

// uploadAttachment streams the raw request body into the blob store under a
// generated object name and returns the stable reference. The body is not
// buffered: large recordings pass straight through to storage.
func (h *Handler) uploadAttachment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	kind := models.AttachmentKind(chi.URLParam(r, "kind"))

	ref, err := h.services.AttachmentService.Upload(r.Context(), kind, r.Body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadAttachment").Str("kind", string(kind)).Msg("error uploading attachment")
		http.Error(w, "error uploading attachment", statusFromError(err))
		return
	}

	utils.WriteJSON(w, ref, http.StatusCreated)
}

// serveAttachment streams a stored object back to the client. The content
// type is derived from the object's namespace prefix; objects themselves are
// stored without metadata.
func (h *Handler) serveAttachment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "*")
	if name == "" {
		http.Error(w, "missing object name", http.StatusBadRequest)
		return
	}

	rc, err := h.services.AttachmentService.Open(r.Context(), name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.serveAttachment").Str("object", name).Msg("error opening attachment")
		http.Error(w, "error opening attachment", statusFromError(err))
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", contentTypeForObject(name))
	w.WriteHeader(http.StatusOK)

	if _, err = io.Copy(w, rc); err != nil {
		log.Debug().Err(err).Str("object", name).Msg("attachment download interrupted")
	}
}

func contentTypeForObject(name string) string {
	if strings.HasPrefix(name, models.AttachmentAudio.Namespace()+"/") {
		return models.AttachmentAudio.ContentType()
	}
	return models.AttachmentImage.ContentType()
}
