package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"kentkonut/config"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/mysql/*.sql migrations/sqlite/*.sql
var migrationFiles embed.FS

// NewMigrator builds a migrate instance over the embedded scripts for the configured driver.
// It owns its own connection; Close on the returned instance releases it.
func NewMigrator(cfg config.DatabaseConfig) (*migrate.Migrate, error) {
	var (
		name   string
		db     *sql.DB
		driver migratedb.Driver
		err    error
	)

	switch cfg.Driver {
	case "sqlite":
		name = "sqlite"
		if db, err = sql.Open("sqlite", SQLiteDSN(cfg.Path)); err != nil {
			return nil, fmt.Errorf("failed to open sqlite for migrations: %w", err)
		}
		driver, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	default:
		name = "mysql"
		if db, err = sql.Open("mysql", MySQLDSN(cfg, true)); err != nil {
			return nil, fmt.Errorf("failed to open mysql for migrations: %w", err)
		}
		driver, err = migratemysql.WithInstance(db, &migratemysql.Config{})
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init %s migration driver: %w", name, err)
	}

	src, err := iofs.New(migrationFiles, "migrations/"+name)
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("failed to read embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, name, driver)
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return m, nil
}

// MigrateUp applies all pending migrations; an up-to-date schema is not an error
func MigrateUp(cfg config.DatabaseConfig) error {
	m, err := NewMigrator(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is dirty at version %d, fix it with kkctl migrate force", version)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// MigrateDown rolls back the given number of steps
func MigrateDown(cfg config.DatabaseConfig, steps int) error {
	m, err := NewMigrator(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	if steps <= 0 {
		steps = 1
	}
	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	return nil
}

// MigrateForce sets the version without running scripts, clearing the dirty flag
func MigrateForce(cfg config.DatabaseConfig, version int) error {
	m, err := NewMigrator(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	return m.Force(version)
}

// MigrationVersion returns the current schema version; zero when nothing is applied
func MigrationVersion(cfg config.DatabaseConfig) (uint, bool, error) {
	m, err := NewMigrator(cfg)
	if err != nil {
		return 0, false, err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}
