package http

import (
	"geonotes/internal/logger"
	"geonotes/internal/service"
)

type Handler struct {
	services *service.Services

	// version is the server build version reported by the version endpoint.
	version string

	metrics *requestMetrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		version:  version,
		metrics:  newRequestMetrics(),
		logger:   logger,
	}
}
