// Package store provides SQLite-backed persistence for named household
// profiles ("scenarios").
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/hhfp/household-projector/internal/config"
	"github.com/hhfp/household-projector/internal/domain"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS scenarios (
	name       TEXT PRIMARY KEY,
	profile    TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// ScenarioStore persists household profiles by name. Profiles are stored as
// YAML so files stay hand-editable after export.
type ScenarioStore struct {
	db *sql.DB
}

// Open opens or creates the scenario database at the given path.
func Open(dbPath string) (*ScenarioStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating scenario dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening scenario db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &ScenarioStore{db: db}, nil
}

// Close closes the scenario database.
func (s *ScenarioStore) Close() error {
	return s.db.Close()
}

// Save upserts a profile under the given name.
func (s *ScenarioStore) Save(name string, profile *domain.HouseholdProfile) error {
	if name == "" {
		return fmt.Errorf("scenario name is required")
	}
	body, err := config.Marshal(profile)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(`
		INSERT INTO scenarios (name, profile, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET profile = excluded.profile, updated_at = excluded.updated_at`,
		name, string(body), now)
	if err != nil {
		return fmt.Errorf("saving scenario %q: %w", name, err)
	}
	return nil
}

// Load fetches and re-validates a profile by name.
func (s *ScenarioStore) Load(name string) (*domain.HouseholdProfile, error) {
	var body string
	err := s.db.QueryRow("SELECT profile FROM scenarios WHERE name = ?", name).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("scenario %q not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("loading scenario %q: %w", name, err)
	}

	profile, err := config.NewInputParser().Parse([]byte(body))
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", name, err)
	}
	return profile, nil
}

// ScenarioInfo describes one stored scenario.
type ScenarioInfo struct {
	Name      string
	UpdatedAt time.Time
}

// List returns all stored scenarios, newest first.
func (s *ScenarioStore) List() ([]ScenarioInfo, error) {
	rows, err := s.db.Query("SELECT name, updated_at FROM scenarios ORDER BY updated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("listing scenarios: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var infos []ScenarioInfo
	for rows.Next() {
		var info ScenarioInfo
		var updated string
		if err := rows.Scan(&info.Name, &updated); err != nil {
			return nil, err
		}
		info.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Delete removes a stored scenario. Deleting a missing name is not an error.
func (s *ScenarioStore) Delete(name string) error {
	if _, err := s.db.Exec("DELETE FROM scenarios WHERE name = ?", name); err != nil {
		return fmt.Errorf("deleting scenario %q: %w", name, err)
	}
	return nil
}
