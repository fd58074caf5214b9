// Package adapthttp is the JSON HTTP adapter over the application services.
package adapthttp

import (
	"net/http"

	"slimtrack/internal/app"
	"slimtrack/internal/log"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	records     *app.RecordService
	charts      *app.ChartsService
	suggestions *app.SuggestionService
	logger      *log.Logger
}

// New creates a Server wired to the given application services. A nil
// logger discards request logs.
func New(rs *app.RecordService, cs *app.ChartsService, ss *app.SuggestionService, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Discard()
	}
	return &Server{
		records:     rs,
		charts:      cs,
		suggestions: ss,
		logger:      logger.WithComponent(log.ComponentHTTP),
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/records", s.handleRecords)
	api.HandleFunc("/records/{id}", s.handleRecord)

	api.HandleFunc("/charts/weight", s.handleChartsWeight)
	api.HandleFunc("/charts/bmi", s.handleChartsBMI)
	api.HandleFunc("/charts/distribution", s.handleChartsDistribution)

	api.HandleFunc("/suggestions", s.handleSuggestions)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))

	return s.loggingMiddleware(withNoCache(root))
}
