package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"

	"github.com/antrhizom/stud-i-agency-check/config"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// RunMigrations wendet alle ausstehenden Migrationen an
func RunMigrations(cfg *config.DatabaseConfig, log *zap.Logger) error {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("migrations-quelle: %w", err)
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name, cfg.SSLMode)

	m, err := migrate.NewWithSourceInstance("iofs", source, dsn)
	if err != nil {
		return fmt.Errorf("migrations-instanz: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("keine neuen migrationen")
			return nil
		}
		return fmt.Errorf("migrationen anwenden: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("migrations-version: %w", err)
	}
	log.Info("migrationen angewendet", zap.Uint("version", version), zap.Bool("dirty", dirty))

	return nil
}
