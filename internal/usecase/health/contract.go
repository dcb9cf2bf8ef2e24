package health

import (
	"context"

	"github.com/connecthub/searchcore/internal/domain/entity"
)

// DBPinger checks persistence-store connectivity.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// IndexReader reports per-collection entity counts.
type IndexReader interface {
	Counts() map[entity.Kind]int
}
