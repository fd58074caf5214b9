package adapthttp

import (
	"context"
	"net/http"

	"slimtrack/internal/app"
)

func (s *Server) handleChartsWeight(w http.ResponseWriter, r *http.Request) {
	s.writeSeries(w, r, s.charts.WeightSeries)
}

func (s *Server) handleChartsBMI(w http.ResponseWriter, r *http.Request) {
	s.writeSeries(w, r, s.charts.BMISeries)
}

func (s *Server) writeSeries(w http.ResponseWriter, r *http.Request, series func(ctx context.Context) []app.Point) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	points := series(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"items": points, "hasData": len(points) > 0})
}

func (s *Server) handleChartsDistribution(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	slices := s.charts.Distribution(r.Context())
	if slices == nil {
		slices = []app.Slice{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": slices, "hasData": len(slices) > 0})
}
