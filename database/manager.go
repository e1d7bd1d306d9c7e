// Package database owns the store lifecycle: existence check, one-time
// initialization (schema, sentinel rows, catalog load, synthetic users) and
// disposal.
package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"Ludex/config"
	seed "Ludex/constants/seed"
	"Ludex/models"
	"Ludex/services/catalog"
	"Ludex/services/seeder"
)

// Manager is the explicit store handle passed to the components; there is
// no ambient global connection.
type Manager struct {
	db      *gorm.DB
	cfg     *config.Config
	log     zerolog.Logger
	existed bool
}

// Open connects to the SQLite database named by the config, creating the
// parent directory when needed. Whether the file already existed is
// captured before the connection touches it.
func Open(cfg *config.Config, log zerolog.Logger) (*Manager, error) {
	if dir := filepath.Dir(cfg.DatabasePath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	_, statErr := os.Stat(cfg.DatabasePath)
	existed := statErr == nil

	db, err := config.ConnectGORM(cfg.DatabasePath, cfg.VerboseSQL)
	if err != nil {
		return nil, err
	}

	return &Manager{db: db, cfg: cfg, log: log, existed: existed}, nil
}

// Exists reports whether the database file was already present when the
// manager opened it.
func (m *Manager) Exists() bool {
	return m.existed
}

// DB exposes the underlying connection.
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Initialize creates the schema, guarantees the sentinel rows, loads the
// catalog CSV when a path is given and runs the configured synthetic user
// generation.
func (m *Manager) Initialize(csvPath string) error {
	if err := m.EnsureSchema(); err != nil {
		return err
	}

	if csvPath != "" {
		records, err := catalog.ReadCSV(csvPath)
		if err != nil {
			return err
		}
		loader := catalog.NewLoader(m.db, m.log)
		if _, err := loader.Load(records); err != nil {
			return err
		}
	}

	s := seeder.New(m.db, m.log)
	if _, err := s.Generate(seeder.Options{
		Count:       m.cfg.SeedUsers,
		MinGames:    m.cfg.MinGames,
		MaxGames:    m.cfg.MaxGames,
		ConsentRate: m.cfg.ConsentRate,
	}); err != nil {
		return err
	}

	m.log.Info().Str("path", m.cfg.DatabasePath).Msg("database initialized")
	return nil
}

// EnsureSchema migrates the models and guarantees the sentinel rows.
// Idempotent, safe to run against an already initialized database.
func (m *Manager) EnsureSchema() error {
	if err := config.MigrateDatabase(m.db); err != nil {
		return err
	}
	m.log.Info().Msg("database schema migrated")
	return m.EnsureSentinels()
}

// EnsureSentinels makes sure the "Unknown" fallback rows exist in genres
// and publishers. Idempotent.
func (m *Manager) EnsureSentinels() error {
	var genre models.Genre
	if err := m.db.FirstOrCreate(&genre, models.Genre{Name: seed.UnknownName}).Error; err != nil {
		return fmt.Errorf("ensuring genre sentinel: %w", err)
	}
	var publisher models.Publisher
	if err := m.db.FirstOrCreate(&publisher, models.Publisher{Name: seed.UnknownName}).Error; err != nil {
		return fmt.Errorf("ensuring publisher sentinel: %w", err)
	}
	return nil
}

// Close releases the underlying connection.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("reading underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}
