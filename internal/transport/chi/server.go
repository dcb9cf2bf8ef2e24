// Package chi exposes the search surface over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/connecthub/searchcore/internal/domain"
	"github.com/connecthub/searchcore/internal/domain/search/filter"
	"github.com/connecthub/searchcore/internal/metrics"
	healthuc "github.com/connecthub/searchcore/internal/usecase/health"
	historyuc "github.com/connecthub/searchcore/internal/usecase/history"
	insightsuc "github.com/connecthub/searchcore/internal/usecase/insights"
	nearbyuc "github.com/connecthub/searchcore/internal/usecase/nearby"
	saveduc "github.com/connecthub/searchcore/internal/usecase/saved"
	searchuc "github.com/connecthub/searchcore/internal/usecase/search"
	suggestuc "github.com/connecthub/searchcore/internal/usecase/suggest"
)

// Server routes HTTP requests to the search use cases.
type Server struct {
	search   *searchuc.Service
	suggest  *suggestuc.Service
	nearby   *nearbyuc.Service
	history  *historyuc.Service
	saved    *saveduc.Service
	insights *insightsuc.Service
	health   *healthuc.Service
	logger   *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	suggest *suggestuc.Service,
	nearby *nearbyuc.Service,
	history *historyuc.Service,
	saved *saveduc.Service,
	insights *insightsuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	return &Server{
		search:   search,
		suggest:  suggest,
		nearby:   nearby,
		history:  history,
		saved:    saved,
		insights: insights,
		health:   health,
		logger:   logger,
	}
}

// Routes mounts all endpoints on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/search", s.handleSearch)
		r.Get("/search/interests", s.handleSearchByInterests)
		r.Get("/search/workplace", s.handleSearchByWorkplace)
		r.Get("/suggest", s.handleSuggest)
		r.Get("/nearby", s.handleNearby)
		r.Get("/filters", s.handleCurrentFilters)
		r.Get("/insights", s.handleInsights)

		r.Get("/history", s.handleHistoryList)
		r.Delete("/history", s.handleHistoryClear)
		r.Delete("/history/{query}", s.handleHistoryDelete)

		r.Get("/saved-searches", s.handleSavedList)
		r.Post("/saved-searches", s.handleSavedCreate)
		r.Post("/saved-searches/{id}/notifications", s.handleSavedToggle)
		r.Delete("/saved-searches/{id}", s.handleSavedDelete)

		r.Get("/presets", s.handlePresetList)
		r.Post("/presets", s.handlePresetCreate)
		r.Put("/presets/{id}", s.handlePresetUpdate)
		r.Delete("/presets/{id}", s.handlePresetDelete)
		r.Post("/presets/{id}/apply", s.handlePresetApply)
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	upd, err := filterUpdateFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	bundle := s.search.Search(r.Context(), q, upd)
	metrics.SearchesTotal.WithLabelValues(string(s.search.CurrentFilters().Type)).Inc()
	writeJSON(w, http.StatusOK, bundle)
}

func (s *Server) handleSearchByInterests(w http.ResponseWriter, r *http.Request) {
	interests := r.URL.Query()["i"]
	writeJSON(w, http.StatusOK, s.search.SearchByInterests(interests))
}

func (s *Server) handleSearchByWorkplace(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.search.SearchByWorkplace(r.URL.Query().Get("q")))
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.suggest.Suggest(r.URL.Query().Get("q")))
}

func (s *Server) handleNearby(w http.ResponseWriter, r *http.Request) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if errLat != nil || errLng != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "lat and lng are required numbers")
		return
	}
	radius := 0
	if v := r.URL.Query().Get("radius_km"); v != "" {
		radius, _ = strconv.Atoi(v)
	}

	bundle, err := s.nearby.Nearby(lat, lng, radius)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bundle)
}

func (s *Server) handleCurrentFilters(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.search.CurrentFilters())
}

func (s *Server) handleInsights(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.insights.Insights())
}

func (s *Server) handleHistoryList(w http.ResponseWriter, r *http.Request) {
	n := 0
	if v := r.URL.Query().Get("n"); v != "" {
		n, _ = strconv.Atoi(v)
	}
	writeJSON(w, http.StatusOK, s.history.Recent(n))
}

func (s *Server) handleHistoryClear(w http.ResponseWriter, r *http.Request) {
	if err := s.history.Clear(r.Context()); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHistoryDelete(w http.ResponseWriter, r *http.Request) {
	query, err := url.PathUnescape(chi.URLParam(r, "query"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid query parameter")
		return
	}
	found, err := s.history.Delete(r.Context(), query)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "not_found", "no such history entry")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type savedCreateRequest struct {
	Query   string          `json:"query"`
	Filters *filter.Filters `json:"filters,omitempty"`
}

func (s *Server) handleSavedList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.saved.Searches())
}

func (s *Server) handleSavedCreate(w http.ResponseWriter, r *http.Request) {
	var req savedCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body: "+err.Error())
		return
	}
	f := s.search.CurrentFilters()
	if req.Filters != nil {
		f = req.Filters.Normalize()
	}

	sv, err := s.saved.SaveSearch(r.Context(), req.Query, f)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sv)
}

func (s *Server) handleSavedToggle(w http.ResponseWriter, r *http.Request) {
	sv, err := s.saved.ToggleNotifications(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sv)
}

func (s *Server) handleSavedDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.saved.DeleteSearch(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type presetRequest struct {
	Name    string          `json:"name"`
	Filters *filter.Filters `json:"filters,omitempty"`
}

func (s *Server) handlePresetList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.saved.Presets())
}

func (s *Server) handlePresetCreate(w http.ResponseWriter, r *http.Request) {
	var req presetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body: "+err.Error())
		return
	}
	f := s.search.CurrentFilters()
	if req.Filters != nil {
		f = req.Filters.Normalize()
	}

	p, err := s.saved.SavePreset(r.Context(), req.Name, f)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handlePresetUpdate(w http.ResponseWriter, r *http.Request) {
	var req presetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body: "+err.Error())
		return
	}
	id := chi.URLParam(r, "id")

	if req.Filters != nil {
		if _, err := s.saved.UpdatePreset(r.Context(), id, req.Filters.Normalize()); err != nil {
			s.handleDomainError(w, err)
			return
		}
	}
	if req.Name != "" {
		if _, err := s.saved.RenamePreset(r.Context(), id, req.Name); err != nil {
			s.handleDomainError(w, err)
			return
		}
	}

	p, err := s.saved.Preset(id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handlePresetDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.saved.DeletePreset(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePresetApply(w http.ResponseWriter, r *http.Request) {
	p, err := s.saved.Preset(chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	s.search.ReplaceFilters(p.Filters)
	writeJSON(w, http.StatusOK, s.search.CurrentFilters())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())
	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, report)
}

// filterUpdateFromQuery builds a partial filter update from query params.
// Absent params leave the engine's sticky state untouched.
func filterUpdateFromQuery(q url.Values) (filter.Update, error) {
	var upd filter.Update

	if v := q.Get("type"); v != "" {
		t := filter.Type(v)
		upd.Type = &t
	}
	if q.Has("location") {
		loc := q.Get("location")
		upd.Location = &loc
	}
	if v := q.Get("sort"); v != "" {
		sb := filter.Sort(v)
		upd.SortBy = &sb
	}
	if v := q.Get("radius_km"); v != "" {
		r, err := strconv.Atoi(v)
		if err != nil {
			return filter.Update{}, errors.New("radius_km must be an integer")
		}
		upd.RadiusKm = &r
	}
	start, end := q.Get("start"), q.Get("end")
	if start != "" || end != "" {
		var dr filter.DateRange
		var err error
		if start != "" {
			if dr.Start, err = time.Parse(time.RFC3339, start); err != nil {
				return filter.Update{}, errors.New("start must be RFC3339")
			}
		}
		if end != "" {
			if dr.End, err = time.Parse(time.RFC3339, end); err != nil {
				return filter.Update{}, errors.New("end must be RFC3339")
			}
		}
		upd.DateRange = &dr
	}
	return upd, nil
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSavedSearchNotFound):
		writeError(w, http.StatusNotFound, "saved_search_not_found", err.Error())
	case errors.Is(err, domain.ErrPresetNotFound):
		writeError(w, http.StatusNotFound, "preset_not_found", err.Error())
	case errors.Is(err, domain.ErrInvalidCoordinates):
		writeError(w, http.StatusBadRequest, "invalid_coordinates", err.Error())
	case errors.Is(err, domain.ErrEmptyPresetName):
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
	default:
		s.logger.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
