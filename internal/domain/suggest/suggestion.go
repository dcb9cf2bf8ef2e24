// Package suggest defines the autocomplete suggestion value type.
package suggest

import "github.com/connecthub/searchcore/internal/domain/entity"

// Suggestion is a single autocomplete entry.
type Suggestion struct {
	Kind        entity.Kind `json:"kind"`
	DisplayText string      `json:"display_text"`
	Subtext     string      `json:"subtext,omitempty"`
	Icon        string      `json:"icon,omitempty"`
	// SourceID identifies the entity the suggestion came from. For hashtags
	// this is the tag itself.
	SourceID string `json:"source_id,omitempty"`
}
