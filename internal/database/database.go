// Package database backs the visitor preference slot (the active display
// language) with a small key-value table. The job catalog itself is never
// stored here; it is read-only JSON input.
package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"techrecruit-portal/config"
	"techrecruit-portal/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const languageKey = "language"

// Preference is one persisted key-value entry.
type Preference struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store wraps the preference database.
type Store struct {
	db *gorm.DB
}

// Connect opens the preference database using the configured driver, in the
// same way the rest of the service reads its configuration.
func Connect(cfg *config.Config, zapLogger *zap.Logger) (*Store, error) {
	var db *gorm.DB
	var err error

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  getLogLevel(cfg.Log.Level),
			IgnoreRecordNotFoundError: true,
			Colorful:                  cfg.IsDevelopment(),
		},
	)

	gormConfig := &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	switch cfg.Database.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(cfg.GetDSN()), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		zapLogger.Info("Connected to PostgreSQL preference store")

	case "sqlite":
		if err := ensureDir(filepath.Dir(cfg.Database.SQLitePath)); err != nil {
			return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
		}

		db, err = gorm.Open(sqlite.Open(cfg.Database.SQLitePath), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
		}
		zapLogger.Info("Connected to SQLite preference store", zap.String("path", cfg.Database.SQLitePath))

	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	store := &Store{db: db}

	if cfg.Dev.AutoMigrate {
		if err := db.AutoMigrate(&Preference{}); err != nil {
			return nil, fmt.Errorf("auto-migration failed: %w", err)
		}
	}

	return store, nil
}

// SaveLanguage writes the active language, replacing any previous value.
func (s *Store) SaveLanguage(lang models.Language) error {
	pref := Preference{Key: languageKey, Value: string(lang)}
	return s.db.Save(&pref).Error
}

// LoadLanguage reads the persisted language. The fallback is returned when
// no preference has been written yet.
func (s *Store) LoadLanguage(fallback models.Language) (models.Language, error) {
	var pref Preference
	err := s.db.First(&pref, "key = ?", languageKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fallback, nil
	}
	if err != nil {
		return fallback, err
	}
	return models.Language(pref.Value), nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// IsHealthy checks that the preference store is reachable.
func (s *Store) IsHealthy() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func ensureDir(dir string) error {
	if dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}

func getLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	default:
		return logger.Info
	}
}
