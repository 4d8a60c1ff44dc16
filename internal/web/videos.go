package web

import (
	"errors"
	"net/http"

	"github.com/vmunix/vidcat/internal/catalog"
)

func (s *Server) listVideos(w http.ResponseWriter, r *http.Request) {
	filter := catalog.VideoFilter{
		Source: queryString(r, "source"),
		Limit:  queryInt(r, "limit", 50),
		Offset: queryInt(r, "offset", 0),
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		writeError(w, http.StatusBadRequest, "INVALID_PAGINATION", "limit and offset must not be negative")
		return
	}

	items, total, err := s.deps.Catalog.ListVideos(filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	resp := listVideosResponse{
		Items:  make([]videoResponse, len(items)),
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}
	for i, v := range items {
		resp.Items[i] = videoToResponse(v)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getVideo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	v, err := s.deps.Catalog.GetVideo(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Video not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, videoToResponse(v))
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	counts, err := s.deps.Catalog.CountBySource()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	schema, err := s.deps.Catalog.SchemaVersion()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	resp := statusResponse{
		Status:        "ok",
		Version:       s.deps.Version,
		SchemaVersion: schema,
		Counts:        counts,
		Sources:       []sourceResponse{},
	}
	if resp.Counts == nil {
		resp.Counts = []catalog.SourceCount{}
	}
	for _, c := range counts {
		resp.Total += c.Count
	}
	for _, src := range s.deps.Refresher.Sources() {
		resp.Sources = append(resp.Sources, sourceResponse{Name: src.Name, Root: src.Root})
	}

	writeJSON(w, http.StatusOK, resp)
}
