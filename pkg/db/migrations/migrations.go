package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

// Migrator applies the embedded schema migrations to a SQLite database
type Migrator struct {
	db *sql.DB
}

// NewMigrator creates a new migrator
func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{db: db}
}

func (m *Migrator) migrate() (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFiles, "sql")
	if err != nil {
		return nil, fmt.Errorf("error opening embedded migrations: %w", err)
	}

	driver, err := sqlite3.WithInstance(m.db, &sqlite3.Config{})
	if err != nil {
		return nil, fmt.Errorf("error creating migration driver: %w", err)
	}

	mig, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return nil, fmt.Errorf("error creating migrator: %w", err)
	}
	return mig, nil
}

// MigrateUp applies all pending migrations. The *sql.DB is left open;
// closing the migrate instance would close it.
func (m *Migrator) MigrateUp() error {
	mig, err := m.migrate()
	if err != nil {
		return err
	}

	if err := mig.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("error applying migrations: %w", err)
	}
	return nil
}

// Version returns the current schema version, or 0 if none has been applied
func (m *Migrator) Version() (uint, error) {
	mig, err := m.migrate()
	if err != nil {
		return 0, err
	}

	version, _, err := mig.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	return version, err
}
