package searchcore

import "github.com/connecthub/searchcore/internal/domain"

// Sentinel errors returned by Client methods, matchable with errors.Is.
var (
	ErrSavedSearchNotFound = domain.ErrSavedSearchNotFound
	ErrPresetNotFound      = domain.ErrPresetNotFound
	ErrInvalidCoordinates  = domain.ErrInvalidCoordinates
	ErrEmptyPresetName     = domain.ErrEmptyPresetName
)
