package settings

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// SQLitePersister stores the settings record as one JSON blob in a
// single-row table. Unmarshalling over Defaults() gives field-level
// defaulting: fields added after a record was written pick up their
// hard-coded default on load.
type SQLitePersister struct {
	db *sql.DB
}

// NewSQLitePersister wraps db. The calculator_settings table must exist
// (created by migrations).
func NewSQLitePersister(db *sql.DB) *SQLitePersister {
	return &SQLitePersister{db: db}
}

// Load reads the stored record, if any.
func (p *SQLitePersister) Load() (Settings, bool, error) {
	var blob string
	err := p.db.QueryRow(`SELECT data FROM calculator_settings WHERE id = 1`).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return Settings{}, false, nil
	}
	if err != nil {
		return Settings{}, false, fmt.Errorf("query calculator_settings: %w", err)
	}

	s := Defaults()
	if err := json.Unmarshal([]byte(blob), &s); err != nil {
		return Settings{}, false, fmt.Errorf("decode calculator_settings: %w", err)
	}
	return s, true, nil
}

// Save writes the full record, replacing any previous one.
func (p *SQLitePersister) Save(s Settings) error {
	blob, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode calculator_settings: %w", err)
	}

	_, err = p.db.Exec(`
		INSERT INTO calculator_settings (id, data, updated_at)
		VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			data = excluded.data,
			updated_at = CURRENT_TIMESTAMP
	`, string(blob))
	if err != nil {
		return fmt.Errorf("upsert calculator_settings: %w", err)
	}
	return nil
}
