package httpserver

import (
	"encoding/json"
	"net/http"
)

type healthResp struct {
	Status   string `json:"status"`
	Element  string `json:"element"`
	Rendered bool   `json:"rendered"`
}

// health reports liveness and whether the output element holds a result yet.
// An unreadable element still answers 200 with status "degraded".
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	resp := healthResp{Status: "ok", Element: s.element}

	_, ok, err := s.target.Text(r.Context())
	if err != nil {
		resp.Status = "degraded"
	}
	resp.Rendered = ok

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *Server) registerHealthRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", s.health)
}
