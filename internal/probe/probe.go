// Package probe extracts container and codec metadata from video files.
package probe

//go:generate mockgen -destination=mocks/prober.go -package=mocks . Prober

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

var (
	// ErrNoGeneralTrack indicates the container reported no general
	// (format-level) information at all.
	ErrNoGeneralTrack = errors.New("no general track")

	// ErrMissingField indicates a required general-track attribute is absent
	// or malformed.
	ErrMissingField = errors.New("missing required field")
)

// Attributes are the descriptive properties of one video file.
type Attributes struct {
	FileName      string
	FileExtension string
	FileSize      string // bytes
	OtherFileSize string // human readable, e.g. "1.2 GiB"
	Duration      string // milliseconds
	OtherDuration string // human readable, e.g. "1h2m3s"
	VideoCodecs   []string
	AudioCodecs   []string
}

// Prober extracts Attributes from a file.
// Failures are returned as *Error.
type Prober interface {
	Probe(ctx context.Context, path string) (*Attributes, error)
}

// Error is a probe failure for a single file.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("probe %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// general holds the format-level values read from a container before they
// are validated and formatted.
type general struct {
	path        string
	fileName    string
	extension   string
	size        string // bytes as reported by the prober
	duration    string // decimal seconds as reported by the prober
	videoCodecs []string
	audioCodecs []string
}

func (g general) empty() bool {
	return g.size == "" && g.duration == "" && len(g.videoCodecs) == 0 && len(g.audioCodecs) == 0
}

// attributes validates g and formats it. Size and duration are required;
// codec lists may be empty (e.g. a video without audio).
func (g general) attributes() (*Attributes, error) {
	if g.empty() {
		return nil, &Error{Path: g.path, Err: ErrNoGeneralTrack}
	}

	size, err := strconv.ParseUint(strings.TrimSpace(g.size), 10, 64)
	if err != nil {
		return nil, &Error{Path: g.path, Err: fmt.Errorf("%w: file size %q", ErrMissingField, g.size)}
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(g.duration), 64)
	if err != nil || seconds < 0 {
		return nil, &Error{Path: g.path, Err: fmt.Errorf("%w: duration %q", ErrMissingField, g.duration)}
	}
	d := time.Duration(seconds * float64(time.Second))

	return &Attributes{
		FileName:      g.fileName,
		FileExtension: g.extension,
		FileSize:      strconv.FormatUint(size, 10),
		OtherFileSize: humanize.IBytes(size),
		Duration:      strconv.FormatInt(d.Milliseconds(), 10),
		OtherDuration: d.Round(time.Second).String(),
		VideoCodecs:   g.videoCodecs,
		AudioCodecs:   g.audioCodecs,
	}, nil
}
