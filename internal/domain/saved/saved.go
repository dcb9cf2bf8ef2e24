// Package saved defines user-curated saved searches and filter presets.
package saved

import (
	"time"

	"github.com/connecthub/searchcore/internal/domain/search/filter"
)

// Search is a persisted query plus filter snapshot the user can revisit.
type Search struct {
	ID                   string         `json:"id"`
	Query                string         `json:"query"`
	Filters              filter.Filters `json:"filters"`
	CreatedAt            time.Time      `json:"created_at"`
	NotificationsEnabled bool           `json:"notifications_enabled"`
}

// Preset is a named, reusable filter snapshot.
type Preset struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Filters   filter.Filters `json:"filters"`
	CreatedAt time.Time      `json:"created_at"`
}
