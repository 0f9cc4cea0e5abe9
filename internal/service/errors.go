package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidUsername     = errors.New("username must be 1-16 characters of letters, digits, '_', '.' or '-'")
	ErrWeakPassword        = errors.New("password must be at least 8 characters and include letters and numbers")
	ErrWrongCredentials    = errors.New("invalid username or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrEmptyTitle       = errors.New("playlist title is required")
	ErrNotOwner         = errors.New("caller does not own this playlist")
	ErrMissingTrackData = errors.New("missing required track fields: name, artist, mbid")
	ErrDuplicateTrack   = errors.New("track with this mbid already in playlist")
	ErrTrackNotInList   = errors.New("track with this mbid not found in playlist")

	ErrEmptySearchQuery = errors.New("search query is required")
)
