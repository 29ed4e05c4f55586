package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"showbill/internal/forms"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"datetime": func(t time.Time) string {
		return t.Format("Mon Jan 2, 2006 3:04 PM")
	},
	"contains": func(list []string, v string) bool {
		for _, item := range list {
			if item == v {
				return true
			}
		}
		return false
	},
}).ParseFS(templateFS, "templates/*.html"))

// pageData is the envelope every template receives.
type pageData struct {
	Title  string
	Flash  *Flash
	Data   any
	Form   any
	Errors map[string]string
	Genres []string
	States []string
}

// render writes a page, buffering output so a template fault never produces
// a half-written document.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	if data.Flash == nil {
		data.Flash = popFlash(w, r)
	}
	if data.Genres == nil {
		data.Genres = forms.Genres
	}
	if data.States == nil {
		data.States = forms.States
	}

	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, page, data); err != nil {
		log.Error().Err(err).Str("page", page).Msg("render template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// NotFound renders the styled 404 page.
func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, "404", pageData{Title: "Not Found"})
}

// ServerError renders the styled 500 page; the recovery middleware calls it.
func (s *Server) ServerError(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusInternalServerError, "500", pageData{Title: "Server Error"})
}
