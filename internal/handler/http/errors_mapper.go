package http

import (
	"errors"
	"net/http"

	"geonotes/internal/service"
	"geonotes/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrValidationEmptyNoteText:       http.StatusBadRequest,
	service.ErrValidationBadLocation:         http.StatusBadRequest,
	service.ErrValidationEmptyUpdate:         http.StatusBadRequest,
	service.ErrValidationBadMarker:           http.StatusBadRequest,
	service.ErrUnsupportedAttachmentKind:     http.StatusBadRequest,
	service.ErrValidationEmptyAttachmentBody: http.StatusBadRequest,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrNoteNotFound:       http.StatusNotFound,
	store.ErrNoteNotSaved:       http.StatusInternalServerError,
	store.ErrMarkerNotSaved:     http.StatusInternalServerError,
	store.ErrObjectNotFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
