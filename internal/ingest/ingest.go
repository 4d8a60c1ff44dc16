// Package ingest synchronizes source directories into the video catalog.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vmunix/vidcat/internal/catalog"
	"github.com/vmunix/vidcat/internal/probe"
	"github.com/vmunix/vidcat/internal/scan"
)

// ErrDiscovery indicates the source root could not be walked.
var ErrDiscovery = errors.New("discovery failed")

// Catalog is the subset of the catalog store used during synchronization.
type Catalog interface {
	FileNames() (map[string]struct{}, error)
	AddVideo(v *catalog.Video) error
}

// Source is a labeled root directory.
type Source struct {
	Name string
	Root string
}

// SkipReason explains why a discovered file was not probed or inserted.
type SkipReason string

const (
	// SkipKnown means the file name was already cataloged before this run.
	SkipKnown SkipReason = "known"
	// SkipDuplicate means another file with the same name won earlier in
	// this run, or a concurrent writer inserted it first.
	SkipDuplicate SkipReason = "duplicate"
)

// Skip is a discovered file that was left alone.
type Skip struct {
	Path     string     `json:"path"`
	FileName string     `json:"file_name"`
	Reason   SkipReason `json:"reason"`
}

// Failure is a file that could not be probed or stored. It stays out of the
// catalog and is retried on the next run.
type Failure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
	Err   error  `json:"-"`
}

func newFailure(path string, err error) Failure {
	return Failure{Path: path, Error: err.Error(), Err: err}
}

// Result is the outcome of synchronizing one source.
type Result struct {
	Source  string    `json:"source"`
	Root    string    `json:"root"`
	Added   []string  `json:"added"`
	Skipped []Skip    `json:"skipped,omitempty"`
	Failed  []Failure `json:"failed,omitempty"`
}

// ProbeFailures counts failures caused by the metadata probe.
func (r *Result) ProbeFailures() int {
	n := 0
	for _, f := range r.Failed {
		var probeErr *probe.Error
		if errors.As(f.Err, &probeErr) {
			n++
		}
	}
	return n
}

// Synchronizer adds newly discovered videos to the catalog.
type Synchronizer struct {
	catalog Catalog
	prober  probe.Prober
	log     *slog.Logger
}

// NewSynchronizer creates a synchronizer.
func NewSynchronizer(c Catalog, p probe.Prober, log *slog.Logger) *Synchronizer {
	if log == nil {
		log = slog.Default()
	}
	return &Synchronizer{catalog: c, prober: p, log: log}
}

// Synchronize catalogs every video under src.Root whose file name is not yet
// known, labeling new records with src.Name.
//
// The set of known names is read once at the start. Within the run the
// first file to be inserted under a name wins; later files with the same
// name are skipped as duplicates. Probe and insert failures are collected in
// Result.Failed and do not stop the run. A discovery failure returns an
// error wrapping ErrDiscovery before anything is probed.
func (s *Synchronizer) Synchronize(ctx context.Context, src Source) (*Result, error) {
	log := s.log.With("source", src.Name)

	candidates, err := scan.FindVideos(src.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDiscovery, src.Root, err)
	}
	log.Debug("discovered videos", "root", src.Root, "count", len(candidates))

	known, err := s.catalog.FileNames()
	if err != nil {
		return nil, fmt.Errorf("load known file names: %w", err)
	}

	res := &Result{Source: src.Name, Root: src.Root, Added: []string{}}
	inserted := make(map[string]struct{})

	for _, path := range candidates {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		name := scan.FileName(path)
		if _, ok := known[name]; ok {
			res.Skipped = append(res.Skipped, Skip{Path: path, FileName: name, Reason: SkipKnown})
			continue
		}
		if _, ok := inserted[name]; ok {
			log.Info("duplicate file name in run, skipping", "path", path, "file_name", name)
			res.Skipped = append(res.Skipped, Skip{Path: path, FileName: name, Reason: SkipDuplicate})
			continue
		}

		log.Debug("probing", "path", path)
		attrs, err := s.prober.Probe(ctx, path)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return res, ctxErr
			}
			log.Warn("probe failed", "path", path, "error", err)
			res.Failed = append(res.Failed, newFailure(path, err))
			continue
		}

		video := newVideo(src.Name, name, path, attrs)
		if err := s.catalog.AddVideo(video); err != nil {
			if errors.Is(err, catalog.ErrDuplicate) {
				log.Info("file name cataloged concurrently, skipping", "path", path, "file_name", name)
				inserted[name] = struct{}{}
				res.Skipped = append(res.Skipped, Skip{Path: path, FileName: name, Reason: SkipDuplicate})
				continue
			}
			log.Error("insert failed", "path", path, "error", err)
			res.Failed = append(res.Failed, newFailure(path, err))
			continue
		}

		inserted[name] = struct{}{}
		res.Added = append(res.Added, name)
		log.Info("video cataloged", "file_name", name, "id", video.ID)
	}

	return res, nil
}

func newVideo(source, name, path string, attrs *probe.Attributes) *catalog.Video {
	ext := attrs.FileExtension
	if ext == "" {
		ext = scan.Extension(path)
	}
	return &catalog.Video{
		Source:        source,
		FileName:      name,
		FileExtension: ext,
		FileSize:      attrs.FileSize,
		OtherFileSize: attrs.OtherFileSize,
		Duration:      attrs.Duration,
		OtherDuration: attrs.OtherDuration,
		VideoCodecs:   catalog.JoinCodecs(attrs.VideoCodecs),
		AudioCodecs:   catalog.JoinCodecs(attrs.AudioCodecs),
		Path:          path,
	}
}
