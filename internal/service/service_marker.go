package service

import (
	"context"
	"fmt"
	"strings"

	"geonotes/internal/logger"
	"geonotes/internal/store"
	"geonotes/models"
)

// markerService is the concrete implementation of MarkerService over the
// append-only marker registry. There is no update or delete path: a marker
// freezes the note content it was created from and never changes after that,
// even when the source note is edited or removed.
type markerService struct {
	markerRepository store.MarkerRepository
	logger           *logger.Logger
}

// NewMarkerService constructs a MarkerService backed by the given repository.
func NewMarkerService(markerRepository store.MarkerRepository, logger *logger.Logger) MarkerService {
	return &markerService{
		markerRepository: markerRepository,
		logger:           logger,
	}
}

// AppendMarker validates and persists a marker, assigning its id.
//
// Returns ErrValidationBadMarker when the coordinates are out of range or
// the frozen note text is blank.
func (m *markerService) AppendMarker(ctx context.Context, marker models.Marker) (models.Marker, error) {
	log := logger.FromContext(ctx)

	if err := validateLocation(&models.GeoPoint{Latitude: marker.Latitude, Longitude: marker.Longitude}); err != nil {
		return models.Marker{}, fmt.Errorf("%w: %w", ErrValidationBadMarker, err)
	}

	marker.Note = strings.TrimSpace(marker.Note)
	if marker.Note == "" {
		return models.Marker{}, fmt.Errorf("%w: empty note text", ErrValidationBadMarker)
	}

	saved, err := m.markerRepository.AppendMarker(ctx, marker)
	if err != nil {
		log.Err(err).Msg("marker append ended with error")
		return models.Marker{}, fmt.Errorf("marker append ended with error: %w", err)
	}

	return saved, nil
}

// GetAllMarkers returns the full shared marker collection, oldest first.
func (m *markerService) GetAllMarkers(ctx context.Context) ([]models.Marker, error) {
	log := logger.FromContext(ctx)

	markers, err := m.markerRepository.GetAllMarkers(ctx)
	if err != nil {
		log.Err(err).Msg("getting all markers ended with error")
		return nil, fmt.Errorf("getting all markers ended with error: %w", err)
	}

	return markers, nil
}
