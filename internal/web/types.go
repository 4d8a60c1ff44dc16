package web

import (
	"time"

	"github.com/vmunix/vidcat/internal/catalog"
)

// videoResponse is the JSON form of a cataloged video.
type videoResponse struct {
	ID            int64     `json:"id"`
	Source        string    `json:"source"`
	FileName      string    `json:"file_name"`
	FileExtension string    `json:"file_extension"`
	FileSize      string    `json:"file_size"`
	OtherFileSize string    `json:"other_file_size"`
	Duration      string    `json:"duration"`
	OtherDuration string    `json:"other_duration"`
	VideoCodecs   []string  `json:"video_codecs"`
	AudioCodecs   []string  `json:"audio_codecs"`
	Path          string    `json:"path,omitempty"`
	AddedAt       time.Time `json:"added_at"`
}

// listVideosResponse is the response for GET /api/v1/videos.
type listVideosResponse struct {
	Items  []videoResponse `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// statusResponse is the response for GET /api/v1/status.
type statusResponse struct {
	Status        string                `json:"status"`
	Version       string                `json:"version,omitempty"`
	SchemaVersion int64                 `json:"schema_version"`
	Total         int                   `json:"total"`
	Counts        []catalog.SourceCount `json:"counts"`
	Sources       []sourceResponse      `json:"sources"`
}

type sourceResponse struct {
	Name string `json:"name"`
	Root string `json:"root"`
}

// refreshResponse is the response for GET /api/update_db?detail=1.
type refreshResponse struct {
	RunID      string                           `json:"run_id"`
	DurationMS int64                            `json:"duration_ms"`
	Sources    map[string]sourceRefreshResponse `json:"sources"`
}

// sourceRefreshResponse reports one source. Error is set when the source
// could not be walked; Added is then empty.
type sourceRefreshResponse struct {
	Added   []string         `json:"added"`
	Skipped int              `json:"skipped"`
	Failed  []failedResponse `json:"failed"`
	Error   string           `json:"error,omitempty"`
}

type failedResponse struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

func videoToResponse(v *catalog.Video) videoResponse {
	return videoResponse{
		ID:            v.ID,
		Source:        v.Source,
		FileName:      v.FileName,
		FileExtension: v.FileExtension,
		FileSize:      v.FileSize,
		OtherFileSize: v.OtherFileSize,
		Duration:      v.Duration,
		OtherDuration: v.OtherDuration,
		VideoCodecs:   nonNil(catalog.SplitCodecs(v.VideoCodecs)),
		AudioCodecs:   nonNil(catalog.SplitCodecs(v.AudioCodecs)),
		Path:          v.Path,
		AddedAt:       v.AddedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
