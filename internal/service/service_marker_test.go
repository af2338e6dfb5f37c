package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"geonotes/internal/logger"
	"geonotes/internal/mock"
	"geonotes/models"
)

func TestMarkerService_AppendMarker_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockMarkerRepository(ctrl)

	repo.EXPECT().
		AppendMarker(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, marker models.Marker) (models.Marker, error) {
			require.Equal(t, "Buy milk", marker.Note)
			marker.ID = "m-1"
			return marker, nil
		})

	svc := NewMarkerService(repo, logger.Nop())

	saved, err := svc.AppendMarker(context.Background(), models.Marker{
		Latitude:  55.67,
		Longitude: 12.56,
		Note:      "  Buy milk ",
	})
	require.NoError(t, err)
	assert.Equal(t, "m-1", saved.ID)
}

func TestMarkerService_AppendMarker_OutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockMarkerRepository(ctrl)

	svc := NewMarkerService(repo, logger.Nop())

	for _, marker := range []models.Marker{
		{Latitude: 91, Longitude: 0, Note: "x"},
		{Latitude: -91, Longitude: 0, Note: "x"},
		{Latitude: 0, Longitude: 181, Note: "x"},
		{Latitude: 0, Longitude: -181, Note: "x"},
	} {
		_, err := svc.AppendMarker(context.Background(), marker)
		require.ErrorIs(t, err, ErrValidationBadMarker)
	}
}

func TestMarkerService_AppendMarker_EmptyNoteText(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockMarkerRepository(ctrl)

	svc := NewMarkerService(repo, logger.Nop())

	_, err := svc.AppendMarker(context.Background(), models.Marker{Latitude: 1, Longitude: 2, Note: "   "})
	require.ErrorIs(t, err, ErrValidationBadMarker)
}

func TestMarkerService_AppendMarker_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockMarkerRepository(ctrl)

	repoErr := errors.New("db down")
	repo.EXPECT().
		AppendMarker(gomock.Any(), gomock.Any()).
		Return(models.Marker{}, repoErr)

	svc := NewMarkerService(repo, logger.Nop())

	_, err := svc.AppendMarker(context.Background(), models.Marker{Latitude: 1, Longitude: 2, Note: "x"})
	require.ErrorIs(t, err, repoErr)
}

func TestMarkerService_GetAllMarkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockMarkerRepository(ctrl)

	repo.EXPECT().
		GetAllMarkers(gomock.Any()).
		Return([]models.Marker{{ID: "m-1"}, {ID: "m-2"}}, nil)

	svc := NewMarkerService(repo, logger.Nop())

	markers, err := svc.GetAllMarkers(context.Background())
	require.NoError(t, err)
	assert.Len(t, markers, 2)
}
