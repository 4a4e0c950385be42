// Package localstate keeps client-side caches in a YAML file: the draft article text, the last
// settings snapshot, a capped list of processed articles and the theme. None of it is a source
// of truth, a snapshot is recorded from the settings store and never fed back into it.
package localstate

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/newsdesk/newsdesk/pkg/domain"
	"github.com/newsdesk/newsdesk/pkg/settings"
)

// DefaultMaxHistory is the history cap used when none is set
const DefaultMaxHistory = 20

// themes
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ErrCorrupted is returned by Open when the state file can't be parsed, the store is usable
// and starts empty
var ErrCorrupted = errors.New("local state file is corrupted")

// HistoryEntry is one processed article kept locally
type HistoryEntry struct {
	ID        string    `yaml:"id"`
	Input     string    `yaml:"input"`
	Title     string    `yaml:"title,omitempty"`
	Output    string    `yaml:"output"`
	Format    string    `yaml:"format,omitempty"`
	CreatedAt time.Time `yaml:"created_at"`
}

// State is the content of the state file
type State struct {
	Draft     string          `yaml:"draft,omitempty"`
	Settings  domain.Settings `yaml:"settings,omitempty"`
	SyncedAt  time.Time       `yaml:"synced_at,omitempty"`
	History   []HistoryEntry  `yaml:"history,omitempty"`
	Theme     string          `yaml:"theme,omitempty"`
	UpdatedAt time.Time       `yaml:"updated_at,omitempty"`
}

// Store reads and writes the state file, safe for concurrent use
type Store struct {
	path       string
	maxHistory int

	mu    sync.Mutex
	state State
}

// Open loads the state file at path. A missing file yields an empty state.
func Open(path string, maxHistory int) (*Store, error) {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	s := &Store{path: path, maxHistory: maxHistory}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from CLI flag
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read local state %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s.state); err != nil {
		s.state = State{}
		return s, fmt.Errorf("%w: %s: %v", ErrCorrupted, path, err)
	}
	return s, nil
}

// Draft returns the saved draft article text
func (s *Store) Draft() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Draft
}

// SetDraft saves the draft article text
func (s *Store) SetDraft(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Draft = text
	return s.save()
}

// Snapshot returns the last recorded settings and when they were recorded, nil if none
func (s *Store) Snapshot() (domain.Settings, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Settings == nil {
		return nil, time.Time{}
	}
	return s.state.Settings.Clone(), s.state.SyncedAt
}

// OnSettings records every snapshot delivered by the settings store
func (s *Store) OnSettings(ev settings.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Settings = ev.Settings.Clone()
	s.state.SyncedAt = time.Now().UTC()
	return s.save()
}

// Theme returns the theme preference, light if not set
func (s *Store) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Theme == "" {
		return ThemeLight
	}
	return s.state.Theme
}

// SetTheme saves the theme preference, only light and dark are accepted
func (s *Store) SetTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme %q, expected %s or %s", theme, ThemeLight, ThemeDark)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Theme = theme
	return s.save()
}

// History returns the local history, newest first
func (s *Store) History() []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]HistoryEntry, len(s.state.History))
	copy(res, s.state.History)
	return res
}

// AddHistory puts entry at the front of the history and drops the oldest entries over the cap.
// Missing id and creation time are filled in.
func (s *Store) AddHistory(entry HistoryEntry) (HistoryEntry, error) {
	if entry.ID == "" {
		entry.ID = newID()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.History = append([]HistoryEntry{entry}, s.state.History...)
	if len(s.state.History) > s.maxHistory {
		s.state.History = s.state.History[:s.maxHistory]
	}
	return entry, s.save()
}

// ClearHistory removes all local history entries
func (s *Store) ClearHistory() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.History = nil
	return s.save()
}

// save writes the state to a temp file and renames it over the target, must be called with mu held
func (s *Store) save() error {
	s.state.UpdatedAt = time.Now().UTC()
	data, err := yaml.Marshal(&s.state)
	if err != nil {
		return fmt.Errorf("marshal local state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create local state dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".state-*.yml")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // already renamed on success

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write local state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close local state: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename local state: %w", err)
	}
	return nil
}

func newID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
