package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/vmunix/vidcat/internal/catalog"
)

//go:embed templates/*.html
var templateFS embed.FS

func parsePage() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/index.html")
}

type pageData struct {
	Title    string
	Videos   []*catalog.Video
	Total    int
	Sources  []string
	Selected string
}

// index renders every cataloged video, ordered by source then file name.
func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	filter := catalog.VideoFilter{Source: queryString(r, "source")}

	videos, total, err := s.deps.Catalog.ListVideos(filter)
	if err != nil {
		s.log.Error("list videos failed", "error", err)
		http.Error(w, "catalog unavailable", http.StatusInternalServerError)
		return
	}

	data := pageData{
		Title:  "Videos",
		Videos: videos,
		Total:  total,
	}
	if filter.Source != nil {
		data.Selected = *filter.Source
	}
	for _, src := range s.deps.Refresher.Sources() {
		data.Sources = append(data.Sources, src.Name)
	}

	var buf bytes.Buffer
	if err := s.page.ExecuteTemplate(&buf, "index.html", data); err != nil {
		s.log.Error("render page failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
