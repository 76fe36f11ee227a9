package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.withTimeout, withGZip)
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// blob retrieval is authorized by the signed token in the URL
	router.With(h.withTimeout).Get("/api/blobs/*", h.getBlob)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/documents/users/{subject}/{collection}", func(r chi.Router) {
			r.Use(h.withTimeout, h.ownScope, withGZip)
			r.Post("/", h.insertDocument)
			r.Get("/", h.listDocuments)
			r.Get("/{id}", h.getDocument)
			r.Patch("/{id}", h.patchDocument)
			r.Delete("/{id}", h.deleteDocument)
		})

		r.With(h.withTimeout, middleware.RequestSize(maxBlobSize), h.verifyContentDigest).Put("/api/blobs/*", h.putBlob)
		r.With(h.withTimeout, withGZip).Post("/api/blobs/url", h.blobURL)

		// the websocket upgrade needs the raw connection, so no gzip here
		r.Get("/api/watch", h.watch)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) withTimeout(next http.Handler) http.Handler {
	if h.requestTimeout <= 0 {
		return next
	}
	return middleware.Timeout(h.requestTimeout)(next)
}
