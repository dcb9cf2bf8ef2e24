// Package domain holds sentinel errors shared across use cases.
package domain

import "errors"

var (
	// ErrSavedSearchNotFound signals a missing saved search.
	ErrSavedSearchNotFound = errors.New("saved search not found")
	// ErrPresetNotFound signals a missing filter preset.
	ErrPresetNotFound = errors.New("filter preset not found")
	// ErrInvalidCoordinates signals latitude/longitude out of range.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	// ErrEmptyPresetName signals a preset created or renamed without a name.
	ErrEmptyPresetName = errors.New("preset name is required")
)
