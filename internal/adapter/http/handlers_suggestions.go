package adapthttp

import "net/http"

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	report := s.suggestions.Generate(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"report": report, "text": report.Text()})
}
