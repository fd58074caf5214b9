package adapthttp

import (
	"errors"
	"net/http"

	"slimtrack/internal/app"
	"slimtrack/internal/domain"
)

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		table := s.records.Table(ctx)
		writeJSON(w, http.StatusOK, map[string]any{"items": table.Rows, "count": table.Len()})

	case http.MethodPost:
		var body struct {
			Weight rawInput `json:"weight"`
			Height rawInput `json:"height"`
			Notes  string   `json:"notes"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		rec, err := s.records.Add(ctx, string(body.Weight), string(body.Height), body.Notes)
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err)
			return
		case err != nil:
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"record":   rec,
			"category": s.suggestions.Categorize(rec.BMI),
		})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.records.Delete(r.Context(), id); err != nil {
		if errors.Is(err, app.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "deleted": id})
}
