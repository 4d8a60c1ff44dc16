// Package migrations provides embedded SQL migration files and applies them
// with goose.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var FS embed.FS

const dir = "sql"

// goose keeps its dialect, base FS and logger in package globals.
var mu sync.Mutex

// Up applies all pending migrations to db.
// A nil logger discards goose output.
func Up(db *sql.DB, log *slog.Logger) error {
	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(FS)
	goose.SetLogger(&gooseLogger{log: log})
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Version returns the current schema version.
func Version(db *sql.DB) (int64, error) {
	mu.Lock()
	defer mu.Unlock()

	if err := goose.SetDialect("sqlite3"); err != nil {
		return 0, fmt.Errorf("set dialect: %w", err)
	}
	return goose.GetDBVersion(db)
}

// gooseLogger routes goose output through slog.
type gooseLogger struct {
	log *slog.Logger
}

func (l *gooseLogger) printf(format string, v ...any) {
	if l.log == nil {
		return
	}
	l.log.Debug(fmt.Sprintf(format, v...))
}

func (l *gooseLogger) Fatal(v ...any) {
	if l.log != nil {
		l.log.Error(fmt.Sprint(v...))
	}
}

func (l *gooseLogger) Fatalf(format string, v ...any) {
	if l.log != nil {
		l.log.Error(fmt.Sprintf(format, v...))
	}
}

func (l *gooseLogger) Print(v ...any)                 { l.printf("%s", fmt.Sprint(v...)) }
func (l *gooseLogger) Println(v ...any)               { l.printf("%s", fmt.Sprint(v...)) }
func (l *gooseLogger) Printf(format string, v ...any) { l.printf(format, v...) }
