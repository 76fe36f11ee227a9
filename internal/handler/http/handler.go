package http

import (
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
)

// maxBlobSize bounds the body of a blob upload.
const maxBlobSize = 10 << 20

type Handler struct {
	services *service.Services

	// requestTimeout bounds every non-streaming request; zero disables it.
	requestTimeout time.Duration

	logger *logger.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithRequestTimeout bounds document, blob and account requests. The watch
// stream is exempt.
func WithRequestTimeout(d time.Duration) Option {
	return func(h *Handler) {
		h.requestTimeout = d
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Dur("request_timeout", h.requestTimeout).Msg("http handler created")
	return h
}
