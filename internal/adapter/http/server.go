// Package http exposes the dashboard API plus health, readiness, and metrics
// endpoints.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/filipe4ndrade/dados-sds-provisorios/internal/dataset"
	"github.com/filipe4ndrade/dados-sds-provisorios/internal/domain"
	"github.com/filipe4ndrade/dados-sds-provisorios/internal/export"
	"github.com/filipe4ndrade/dados-sds-provisorios/internal/observability"
)

// RecordSource provides the cached canonical records for a dataset id.
type RecordSource interface {
	Records(id string) ([]domain.Record, error)
}

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Options configure the API server.
type Options struct {
	Addr        string
	Source      RecordSource
	Ready       ReadinessChecker
	Exporter    *export.Exporter
	Lookup      domain.CoordinateLookup
	Logger      *slog.Logger
	Metrics     *observability.Metrics
	DefaultTopN int
	MaxTopN     int
	CORSOrigins []string
}

// Server exposes the dashboard API over HTTP.
type Server struct {
	httpServer *http.Server
	opts       Options
	logger     *slog.Logger
}

// NewServer builds the router and wraps it in a server with conservative
// read/write/idle timeouts.
func NewServer(opts Options) *Server {
	s := &Server{opts: opts, logger: opts.Logger}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(s.countRequests)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/datasets", s.handleDatasets)
		r.Route("/datasets/{id}", func(r chi.Router) {
			r.Get("/summary", s.handleSummary)
			r.Get("/heatmap", s.handleHeatmap)
			r.Get("/rankings", s.handleRankings)
			r.Get("/series", s.handleSeries)
			r.Get("/export", s.handleExport)
		})
	})

	s.httpServer = &http.Server{
		Addr:         opts.Addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		s.opts.Metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(ww.Status())).Inc()
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.opts.Ready.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleDatasets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dataset.Catalog())
}

// records resolves the dataset id from the URL and returns its records with
// the common filter already applied, plus the filter itself so handlers can
// echo it. A false return means a response has been written.
func (s *Server) records(w http.ResponseWriter, r *http.Request) ([]domain.Record, dataset.Descriptor, domain.Filter, bool) {
	id := chi.URLParam(r, "id")
	d, ok := dataset.ByID(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown dataset " + id})
		return nil, d, domain.Filter{}, false
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return nil, d, filter, false
	}

	records, err := s.opts.Source.Records(id)
	if err != nil {
		s.logger.Error("dataset load failed", "dataset", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "dataset unavailable"})
		return nil, d, filter, false
	}

	if filter.IsZero() {
		return records, d, filter, true
	}
	return filter.Apply(records), d, filter, true
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	records, d, filter, ok := s.records(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Dataset string         `json:"dataset"`
		Filter  domain.Filter  `json:"filter"`
		Summary domain.Summary `json:"summary"`
	}{Dataset: d.ID, Filter: filter, Summary: domain.Summarize(records)})
}

func (s *Server) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	records, _, _, ok := s.records(w, r)
	if !ok {
		return
	}

	year, err := intParam(r, "year", 0)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	month, err := intParam(r, "month", 0)
	if err != nil || month < 0 || month > 12 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid month"})
		return
	}
	topN, err := intParam(r, "top_n", s.opts.DefaultTopN)
	if err != nil || topN <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid top_n"})
		return
	}
	if topN > s.opts.MaxTopN {
		topN = s.opts.MaxTopN
	}

	start := time.Now()
	scene := domain.RenderHeatMap(records, s.opts.Lookup, domain.HeatMapOptions{
		Year:  year,
		Month: month,
		TopN:  topN,
	})
	s.opts.Metrics.HeatmapRenders.Inc()
	s.opts.Metrics.HeatmapRenderDuration.Observe(time.Since(start).Seconds())

	writeJSON(w, http.StatusOK, scene)
}

func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request) {
	records, _, _, ok := s.records(w, r)
	if !ok {
		return
	}
	limit, err := intParam(r, "limit", 20)
	if err != nil || limit <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Municipalities []domain.MunicipalityStats `json:"municipalities"`
		Regions        []domain.RegionStat        `json:"regions"`
	}{
		Municipalities: domain.MunicipalityRanking(records, limit),
		Regions:        domain.RegionStats(records),
	})
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	records, _, _, ok := s.records(w, r)
	if !ok {
		return
	}

	by := r.URL.Query().Get("by")
	var payload any
	switch by {
	case "", "year":
		payload = domain.SeriesByYear(records)
	case "month":
		payload = domain.SeriesByMonth(records)
	case "grid":
		payload = domain.YearMonthGrid(records)
	case "region", "nature", "sex", "age_band":
		payload = domain.TotalsBy(records, domain.Dimension(by))
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid series dimension " + by})
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	records, d, _, ok := s.records(w, r)
	if !ok {
		return
	}

	filename := s.opts.Exporter.Filename(d.ID)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := s.opts.Exporter.Write(w, records); err != nil {
		// Headers are already out; the truncated body is the best we can do.
		s.logger.Error("csv export failed", "dataset", d.ID, "error", err)
		return
	}
	s.opts.Metrics.ExportsTotal.WithLabelValues(d.ID).Inc()
}

// filterFromQuery builds the common record filter from query parameters.
func filterFromQuery(r *http.Request) (domain.Filter, error) {
	q := r.URL.Query()
	var f domain.Filter
	var err error

	if f.YearFrom, err = intParam(r, "year_from", 0); err != nil {
		return f, err
	}
	if f.YearTo, err = intParam(r, "year_to", 0); err != nil {
		return f, err
	}
	if f.Months, err = intListParam(q.Get("months")); err != nil {
		return f, err
	}

	f.Regions = listParam(q.Get("regions"))
	f.Municipalities = listParam(q.Get("municipalities"))
	f.Sexes = listParam(q.Get("sexes"))
	f.Natures = listParam(q.Get("natures"))
	f.AgeBands = listParam(q.Get("age_bands"))

	if f.AgeMin, err = optionalIntParam(q.Get("age_min")); err != nil {
		return f, err
	}
	if f.AgeMax, err = optionalIntParam(q.Get("age_max")); err != nil {
		return f, err
	}
	return f, nil
}

func intParam(r *http.Request, name string, fallback int) (int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &paramError{name: name}
	}
	return n, nil
}

func optionalIntParam(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, &paramError{name: "age bound"}
	}
	return &n, nil
}

func intListParam(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, &paramError{name: "months"}
		}
		out = append(out, n)
	}
	return out, nil
}

func listParam(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

type paramError struct{ name string }

func (e *paramError) Error() string { return "invalid " + e.name + " parameter" }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
