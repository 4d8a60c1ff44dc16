package web

//go:generate mockgen -destination=mocks/web.go -package=mocks . Catalog,Refresher

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vmunix/vidcat/internal/catalog"
	"github.com/vmunix/vidcat/internal/ingest"
)

// Catalog is the read side of the catalog store.
type Catalog interface {
	ListVideos(f catalog.VideoFilter) ([]*catalog.Video, int, error)
	GetVideo(id int64) (*catalog.Video, error)
	CountBySource() ([]catalog.SourceCount, error)
	SchemaVersion() (int64, error)
}

// Refresher runs synchronization over the configured sources.
type Refresher interface {
	RunAll(ctx context.Context) (*ingest.Report, error)
	Sources() []ingest.Source
}

// ServerDeps contains all dependencies for the web server.
type ServerDeps struct {
	// Required dependencies
	Catalog   Catalog
	Refresher Refresher

	// Optional
	Logger  *slog.Logger
	Version string
	// RefreshLimit is the number of refresh requests allowed per client IP
	// per minute. 0 disables the limit.
	RefreshLimit int
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Catalog == nil {
		return errors.New("catalog is required")
	}
	if d.Refresher == nil {
		return errors.New("refresher is required")
	}
	if d.RefreshLimit < 0 {
		return errors.New("refresh limit must not be negative")
	}
	return nil
}
