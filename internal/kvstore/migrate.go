package kvstore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*/*.sql
var migrations embed.FS

// goose keeps its base FS and dialect in package globals.
var migrateMu sync.Mutex

// RunMigrations applies the embedded migrations for dialect ("sqlite3" or
// "postgres"). It is safe to call on an already migrated database.
func RunMigrations(ctx context.Context, db *sql.DB, dialect string) error {
	dir := dialect
	if dialect == "sqlite3" {
		dir = "sqlite"
	}
	sub, err := fs.Sub(migrations, "migrations/"+dir)
	if err != nil {
		return fmt.Errorf("migrations for %s: %w", dialect, err)
	}

	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(sub)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
