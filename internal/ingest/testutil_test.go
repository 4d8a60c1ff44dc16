package ingest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vmunix/vidcat/internal/catalog"
	"github.com/vmunix/vidcat/internal/probe"
	"github.com/vmunix/vidcat/internal/scan"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupStore(t *testing.T) *catalog.Store {
	t.Helper()
	db, err := catalog.Open(filepath.Join(t.TempDir(), "catalog.db"), nil)
	require.NoError(t, err, "open db")
	t.Cleanup(func() { _ = db.Close() })
	return catalog.NewStore(db)
}

// touch creates an empty file (and its parent directories) under root.
func touch(t *testing.T, root, rel string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
	return path
}

// fakeProber returns fixed attributes for every file except those whose
// base name is listed in fail.
type fakeProber struct {
	mu    sync.Mutex
	fail  map[string]bool
	calls []string
}

func newFakeProber(fail ...string) *fakeProber {
	p := &fakeProber{fail: make(map[string]bool)}
	for _, name := range fail {
		p.fail[name] = true
	}
	return p
}

func (p *fakeProber) Probe(_ context.Context, path string) (*probe.Attributes, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, path)
	if p.fail[filepath.Base(path)] {
		return nil, &probe.Error{Path: path, Err: probe.ErrNoGeneralTrack}
	}
	return &probe.Attributes{
		FileName:      scan.FileName(path),
		FileExtension: scan.Extension(path),
		FileSize:      "1048576",
		OtherFileSize: "1.0 MiB",
		Duration:      "60000",
		OtherDuration: "1m0s",
		VideoCodecs:   []string{"h264"},
		AudioCodecs:   []string{"aac"},
	}, nil
}

func (p *fakeProber) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

var errDiskFull = errors.New("disk full")

// memCatalog is an in-memory Catalog. Inserts of names listed in failAdd
// return errDiskFull.
type memCatalog struct {
	mu      sync.Mutex
	nextID  int64
	videos  []*catalog.Video
	failAdd map[string]bool
}

func newMemCatalog() *memCatalog {
	return &memCatalog{failAdd: make(map[string]bool)}
}

func (c *memCatalog) FileNames() (map[string]struct{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	names := make(map[string]struct{}, len(c.videos))
	for _, v := range c.videos {
		names[v.FileName] = struct{}{}
	}
	return names, nil
}

func (c *memCatalog) AddVideo(v *catalog.Video) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failAdd[v.FileName] {
		return errDiskFull
	}
	for _, existing := range c.videos {
		if existing.FileName == v.FileName {
			return catalog.ErrDuplicate
		}
	}
	c.nextID++
	v.ID = c.nextID
	c.videos = append(c.videos, v)
	return nil
}
