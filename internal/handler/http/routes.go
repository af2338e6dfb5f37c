package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Group(func(r chi.Router) {
			r.Use(withGZip)

			r.Get("/api/notes", h.listNotes)
			r.Post("/api/notes", h.createNote)
			r.Put("/api/notes/{id}", h.updateNote)
			r.Delete("/api/notes/{id}", h.deleteNote)

			r.Get("/api/markers", h.listMarkers)
			r.Post("/api/markers", h.appendMarker)

			r.Post("/api/attachments/{kind}", h.uploadAttachment)
		})

		// The subscription stream is never compressed: events must reach the
		// client the moment they are flushed.
		r.Get("/api/notes/events", h.noteEvents)
	})

	// Attachment bytes are fetched by the unguessable generated object name
	// embedded in note references.
	router.Get("/attachments/*", h.serveAttachment)

	router.Method("GET", "/metrics", promhttp.HandlerFor(h.metrics.registry, promhttp.HandlerOpts{}))

	return router
}
