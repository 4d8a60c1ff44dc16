package web

import (
	"context"
	"net/http"
)

// updateDB synchronizes all configured sources and blocks until the run is
// done. The body maps each source label to the file names it added. With
// ?detail=1 it is the full report instead: run id, duration, and per-source
// added, skipped, failed and error. The status is 200 unless the run itself
// could not start.
func (s *Server) updateDB(w http.ResponseWriter, r *http.Request) {
	// A client disconnect must not abandon a run other callers may share.
	ctx := context.WithoutCancel(r.Context())

	report, err := s.deps.Refresher.RunAll(ctx)
	if err != nil {
		s.log.Error("refresh failed", "error", err)
		writeError(w, http.StatusInternalServerError, "SYNC_ERROR", err.Error())
		return
	}

	if !queryBool(r, "detail") {
		added := make(map[string][]string, len(report.Sources))
		for _, sr := range report.Sources {
			added[sr.Source] = []string{}
			if sr.Result != nil {
				added[sr.Source] = nonNil(sr.Result.Added)
			}
		}
		writeJSON(w, http.StatusOK, added)
		return
	}

	resp := refreshResponse{
		RunID:      report.RunID,
		DurationMS: report.Duration.Milliseconds(),
		Sources:    make(map[string]sourceRefreshResponse, len(report.Sources)),
	}
	for _, sr := range report.Sources {
		out := sourceRefreshResponse{
			Added:  []string{},
			Failed: []failedResponse{},
		}
		if sr.Err != nil {
			out.Error = sr.Err.Error()
		}
		if res := sr.Result; res != nil {
			out.Added = nonNil(res.Added)
			out.Skipped = len(res.Skipped)
			for _, f := range res.Failed {
				out.Failed = append(out.Failed, failedResponse{Path: f.Path, Error: f.Error})
			}
		}
		resp.Sources[sr.Source] = out
	}

	writeJSON(w, http.StatusOK, resp)
}
