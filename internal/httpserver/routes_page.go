package httpserver

import (
	"log"
	"net/http"
)

const pageTemplate = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>healthping</title>
</head>
<body>
<pre id="{{.Element}}">{{.Text}}</pre>
</body>
</html>
`

type pageData struct {
	Element string
	Text    string
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	text, _, err := s.target.Text(r.Context())
	if err != nil {
		log.Printf("[ERROR] read output element %s: %v\n", s.element, err)
		http.Error(w, "failed to read output", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, pageData{Element: s.element, Text: text}); err != nil {
		log.Printf("[WARN] render page: %v\n", err)
	}
}

func (s *Server) out(w http.ResponseWriter, r *http.Request) {
	text, ok, err := s.target.Text(r.Context())
	if err != nil {
		log.Printf("[ERROR] read output element %s: %v\n", s.element, err)
		http.Error(w, "failed to read output", http.StatusInternalServerError)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(text))
}

func (s *Server) registerPageRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.index)
	mux.HandleFunc("GET /out", s.out)
}
