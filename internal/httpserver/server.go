package httpserver

import (
	"html/template"
	"net/http"

	"github.com/Rin0913/healthping/internal/output"
)

// Server hosts the page holding the output element.
type Server struct {
	target  output.Target
	element string
	page    *template.Template
}

func NewServer(target output.Target, element string) *Server {
	if element == "" {
		element = output.ElementID
	}
	return &Server{
		target:  target,
		element: element,
		page:    template.Must(template.New("page").Parse(pageTemplate)),
	}
}

func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	s.registerHealthRoutes(mux)
	s.registerPageRoutes(mux)
}
