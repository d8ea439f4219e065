package recorder

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/mpapenbr/acc-telemetry-bridge/log"
)

//go:embed migrations
var migrations embed.FS

// MigrateDB brings the schema of db to the latest version.
func MigrateDB(db *sql.DB) error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("sqlite driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return err
	}
	// m is not closed, this would close db as well
	m.Log = &migrateLogger{l: log.Default().Named("migrate")}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

type migrateLogger struct {
	l *log.Logger
}

func (m *migrateLogger) Printf(format string, v ...any) {
	m.l.Debug(fmt.Sprintf(format, v...))
}

func (m *migrateLogger) Verbose() bool {
	return m.l.IsDebugEnabled()
}
