package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// Runner applies SQL migrations from a directory
type Runner struct {
	sourceURL   string
	databaseURL string
	log         *zap.Logger
}

// NewRunner creates a migration runner. dir is the path to the
// migrations directory, databaseURL a postgres:// connection string.
func NewRunner(dir, databaseURL string, log *zap.Logger) *Runner {
	return &Runner{
		sourceURL:   "file://" + dir,
		databaseURL: databaseURL,
		log:         log,
	}
}

// Up applies all pending migrations
func (r *Runner) Up() error {
	m, err := migrate.New(r.sourceURL, r.databaseURL)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.log.Info("migrations already up to date")
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}
	r.log.Info("migrations applied")
	return nil
}

// Down rolls back the most recent migration
func (r *Runner) Down() error {
	m, err := migrate.New(r.sourceURL, r.databaseURL)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	defer m.Close()

	if err := m.Steps(-1); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.log.Info("nothing to roll back")
			return nil
		}
		return fmt.Errorf("roll back migration: %w", err)
	}
	r.log.Info("rolled back one migration")
	return nil
}

// Version reports the current migration version
func (r *Runner) Version() (uint, bool, error) {
	m, err := migrate.New(r.sourceURL, r.databaseURL)
	if err != nil {
		return 0, false, fmt.Errorf("init migrations: %w", err)
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}
