// Package health aggregates component health checks.
package health

import (
	"context"

	"github.com/connecthub/searchcore/internal/domain/entity"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status                 `json:"status"`
	Checks map[string]CheckResult `json:"checks"`
	Index  map[entity.Kind]int    `json:"index"`
}

// Service coordinates health checks.
type Service struct {
	db    DBPinger
	index IndexReader
}

// New creates a health service.
func New(db DBPinger, index IndexReader) *Service {
	return &Service{db: db, index: index}
}

// Check pings the persistence store and reports index collection counts.
// A failing store degrades the report; search itself keeps working off the
// in-memory state.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if err := s.db.Ping(ctx); err != nil {
		checks["database"] = CheckError
	} else {
		checks["database"] = CheckOK
	}

	counts := s.index.Counts()
	loaded := false
	for _, n := range counts {
		if n > 0 {
			loaded = true
			break
		}
	}
	if loaded {
		checks["index"] = CheckOK
	} else {
		checks["index"] = CheckError
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks, Index: counts}
}
