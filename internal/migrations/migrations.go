// Package migrations applies the embedded SQL schema with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/logger"
)

//go:embed sql/*.sql
var fs embed.FS

// dialects maps database/sql driver names to goose dialects.
var dialects = map[string]string{
	"pgx":    "postgres",
	"sqlite": "sqlite3",
}

// Up applies all pending migrations for the given driver.
func Up(ctx context.Context, db *sql.DB, driver string) error {
	dialect, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("no migration dialect for driver %q", driver)
	}

	goose.SetBaseFS(fs)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "sql"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// gooseLogger routes goose output through the application logger.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...any) {
	logger.Log.Infof(format, v...)
}

func (gooseLogger) Fatalf(format string, v ...any) {
	logger.Log.Fatalf(format, v...)
}
