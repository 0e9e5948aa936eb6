package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	// Драйвер postgres и файловый источник регистрируются через blank import
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"travelmate/internal/app/server/config"
)

// Migrator - часть migrate.Migrate, которая нужна эмулятору
type Migrator interface {
	Up() error
	Close() (error, error)
}

// MigrationEngine создает мигратор, в тестах подменяется моком
type MigrationEngine func(sourceURL, databaseURL string) (Migrator, error)

type Migration struct {
	sourceURL   string
	databaseURL string
	engine      MigrationEngine
}

func NewMigration(conf *config.Config, engine MigrationEngine) *Migration {
	return &Migration{
		sourceURL:   "file://" + conf.DB.Migrations,
		databaseURL: conf.DB.DatabaseURI,
		engine:      engine,
	}
}

// DefaultEngine - golang-migrate поверх файлов схемы документов
func DefaultEngine(sourceURL, databaseURL string) (Migrator, error) {
	return migrate.New(sourceURL, databaseURL)
}

// Up применяет все миграции схемы documents
func (mg *Migration) Up() (err error) {
	m, err := mg.engine(mg.sourceURL, mg.databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			err = errors.Join(err, fmt.Errorf("migration source: %w", serr))
		}
		if dberr != nil {
			err = errors.Join(err, fmt.Errorf("migration database: %w", dberr))
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}
	return nil
}
