// Package catalog holds the in-memory job catalog: the record list loaded
// once from the JSON source, the active display language, and the status
// derivation over deadlines.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"techrecruit-portal/internal/events"
	"techrecruit-portal/internal/models"
)

// ErrJobNotFound is returned when a detail lookup misses.
var ErrJobNotFound = errors.New("job not found")

// LoadError wraps a transport or parse failure on catalog load. The caller
// shows a degraded state; the load is not retried automatically.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load job catalog from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LanguagePersister stores the active language across restarts. The catalog
// treats persistence failures as non-fatal.
type LanguagePersister interface {
	SaveLanguage(lang models.Language) error
}

// Store is the single in-memory snapshot of the catalog. Records are
// replaced wholesale by Load and never mutated in place; readers always see
// either an empty catalog or a fully populated one.
type Store struct {
	mu       sync.RWMutex
	records  []models.JobRecord
	language models.Language
	loaded   bool

	hub    *events.Hub
	prefs  LanguagePersister
	logger *zap.Logger
}

func NewStore(defaultLang models.Language, hub *events.Hub, prefs LanguagePersister, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		language: defaultLang,
		hub:      hub,
		prefs:    prefs,
		logger:   logger,
	}
}

// Load reads and parses the catalog document, replacing the record list
// atomically on success. On failure the previous records (normally none)
// stay untouched and the error propagates to the caller.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}

	var records []models.JobRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return &LoadError{Path: path, Err: err}
	}

	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if rec.ID == "" {
			return &LoadError{Path: path, Err: errors.New("record without id")}
		}
		if _, dup := seen[rec.ID]; dup {
			return &LoadError{Path: path, Err: fmt.Errorf("duplicate job id %q", rec.ID)}
		}
		seen[rec.ID] = struct{}{}
	}

	s.mu.Lock()
	s.records = records
	s.loaded = true
	s.mu.Unlock()

	s.logger.Info("Job catalog loaded",
		zap.String("path", path),
		zap.Int("records", len(records)),
	)
	return nil
}

// Snapshot returns the current record list. The backing records are
// immutable; the returned slice is the caller's to iterate.
func (s *Store) Snapshot() []models.JobRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.JobRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Loaded reports whether a catalog document has been applied.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Language returns the active display language.
func (s *Store) Language() models.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// SetLanguage switches the active display language. The switch is
// idempotent and triggers no I/O on the catalog itself; on an actual change
// it is written to the preference store and broadcast so open views
// re-project before serving again.
func (s *Store) SetLanguage(lang models.Language) {
	s.mu.Lock()
	if s.language == lang {
		s.mu.Unlock()
		return
	}
	s.language = lang
	s.mu.Unlock()

	if s.prefs != nil {
		if err := s.prefs.SaveLanguage(lang); err != nil {
			s.logger.Warn("Failed to persist language preference",
				zap.String("language", string(lang)),
				zap.Error(err),
			)
		}
	}
	if s.hub != nil {
		s.hub.Publish(events.Event{Name: events.LanguageChanged, Language: string(lang)})
	}
}

// FindByID locates a single record. The returned pointer aliases immutable
// data and must not be written through.
func FindByID(records []models.JobRecord, id string) (*models.JobRecord, error) {
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, ErrJobNotFound
}
