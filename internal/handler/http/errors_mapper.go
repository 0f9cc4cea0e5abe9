package http

import (
	"errors"
	"net/http"

	"github.com/soundshelf/soundshelf/internal/adapter"
	"github.com/soundshelf/soundshelf/internal/service"
	"github.com/soundshelf/soundshelf/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidUsername:     http.StatusBadRequest,
	service.ErrWeakPassword:        http.StatusBadRequest,
	service.ErrEmptyTitle:          http.StatusBadRequest,
	service.ErrMissingTrackData:    http.StatusBadRequest,
	service.ErrEmptySearchQuery:    http.StatusBadRequest,

	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrNotOwner: http.StatusForbidden,

	service.ErrTrackNotInList: http.StatusNotFound,
	store.ErrUserNotFound:     http.StatusNotFound,
	store.ErrPlaylistNotFound: http.StatusNotFound,
	adapter.ErrTrackNotFound:  http.StatusNotFound,

	service.ErrDuplicateTrack: http.StatusConflict,
	store.ErrUsernameTaken:    http.StatusConflict,
	store.ErrDuplicateTitle:   http.StatusConflict,
	store.ErrVersionConflict:  http.StatusConflict,

	adapter.ErrUpstreamUnavailable: http.StatusBadGateway,

	service.ErrTokenCreationFailed: http.StatusInternalServerError,
	adapter.ErrMissingAPIKey:       http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrExecutingStatement:    http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
	store.ErrScanningRows:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
