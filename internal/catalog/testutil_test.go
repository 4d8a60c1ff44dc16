package catalog

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/vmunix/vidcat/internal/migrations"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := migrations.Up(db, nil); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return db
}

// ptr is a helper to create pointer to value
func ptr[T any](v T) *T {
	return &v
}

func newVideo(source, name string) *Video {
	return &Video{
		Source:        source,
		FileName:      name,
		FileExtension: "mp4",
		FileSize:      "1048576",
		OtherFileSize: "1.0 MiB",
		Duration:      "60000",
		OtherDuration: "1m0s",
		VideoCodecs:   "h264",
		AudioCodecs:   "aac",
		Path:          "/videos/" + source + "/" + name + ".mp4",
	}
}
