// Package catalog persists cataloged videos.
package catalog

import (
	"strings"
	"time"
)

// Video is one cataloged video file.
//
// FileName is the dedup key: the base name without extension. It is unique
// across all sources.
type Video struct {
	ID            int64     `json:"id"`
	Source        string    `json:"source"`
	FileName      string    `json:"file_name"`
	FileExtension string    `json:"file_extension"`
	FileSize      string    `json:"file_size"`
	OtherFileSize string    `json:"other_file_size"`
	Duration      string    `json:"duration"`
	OtherDuration string    `json:"other_duration"`
	VideoCodecs   string    `json:"video_codecs"`
	AudioCodecs   string    `json:"audio_codecs"`
	Path          string    `json:"path"`
	AddedAt       time.Time `json:"added_at"`
}

// VideoFilter specifies criteria for listing videos.
type VideoFilter struct {
	Source *string
	Limit  int // 0 = no limit
	Offset int
}

// SourceCount is the number of videos cataloged for one source.
type SourceCount struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// JoinCodecs formats a codec list the way it is stored.
func JoinCodecs(codecs []string) string {
	return strings.Join(codecs, " / ")
}

// SplitCodecs is the inverse of JoinCodecs.
func SplitCodecs(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, " / ")
}
