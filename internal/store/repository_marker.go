package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"geonotes/internal/logger"
	"geonotes/models"
)

// markerRepository is the PostgreSQL-backed implementation of
// [MarkerRepository]. The "markers" table is append-only: this type exposes
// no update or delete path, and rows stay behind when their source note is
// later edited or removed.
type markerRepository struct {
	*DB
	logger *logger.Logger
}

// NewMarkerRepository constructs a [MarkerRepository] backed by the provided
// database connection and logger.
func NewMarkerRepository(db *DB, logger *logger.Logger) MarkerRepository {
	logger.Debug().Msg("creating marker repository")
	return &markerRepository{
		DB:     db,
		logger: logger,
	}
}

// AppendMarker inserts a marker record, assigning its id, and returns the
// persisted row.
func (m *markerRepository) AppendMarker(ctx context.Context, marker models.Marker) (models.Marker, error) {
	log := logger.FromContext(ctx)

	marker.ID = uuid.NewString()

	query, args, err := buildInsertMarkerQuery(marker)
	if err != nil {
		log.Err(err).Str("func", "markerRepository.AppendMarker").Msg("failed to build insert query")
		return models.Marker{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := scanMarker(m.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "markerRepository.AppendMarker").Msg("failed to insert marker")
		if errors.Is(err, sql.ErrNoRows) {
			return models.Marker{}, ErrMarkerNotSaved
		}
		return models.Marker{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}

// GetAllMarkers returns the full shared marker collection, oldest first.
func (m *markerRepository) GetAllMarkers(ctx context.Context) ([]models.Marker, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMarkersQuery()
	if err != nil {
		log.Err(err).Str("func", "markerRepository.GetAllMarkers").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := m.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "markerRepository.GetAllMarkers").Msg("failed to execute query for getting all markers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	markers := make([]models.Marker, 0, 16)

	for rows.Next() {
		marker, scanErr := scanMarker(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "markerRepository.GetAllMarkers").Msg("failed to scan marker row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		markers = append(markers, marker)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "markerRepository.GetAllMarkers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return markers, nil
}
