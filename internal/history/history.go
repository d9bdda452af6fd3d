// Package history stores saved calculations. Records are immutable once
// created: they hold the full snapshot of inputs, outputs, and settings so
// recomputing a loaded record reproduces the original breakdown exactly.
package history

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/printwise/printwise/internal/export"
)

var (
	// ErrUnauthenticated is returned when no owner identity was provided.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrNotFound is returned when a record does not exist for the owner.
	ErrNotFound = errors.New("calculation not found")
)

// Record is one saved calculation.
type Record struct {
	ID          int64           `json:"id"`
	ProjectName string          `json:"project_name"`
	Data        export.Snapshot `json:"calculation_data"`
	CreatedAt   string          `json:"created_at"`
}

// Store performs saved-calculation CRUD against the local database.
type Store struct {
	db *sql.DB
}

// NewStore wraps db. The calculations table is created by migrations.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Save inserts a new record and returns it with its assigned id and
// timestamp.
func (s *Store) Save(ownerID, projectName string, snap export.Snapshot) (Record, error) {
	if ownerID == "" {
		return Record{}, ErrUnauthenticated
	}
	if strings.TrimSpace(projectName) == "" {
		projectName = "Untitled Project"
	}

	blob, err := json.Marshal(snap)
	if err != nil {
		return Record{}, fmt.Errorf("encode calculation data: %w", err)
	}

	result, err := s.db.Exec(`
		INSERT INTO calculations (owner_id, project_name, calculation_data)
		VALUES (?, ?, ?)
	`, ownerID, projectName, string(blob))
	if err != nil {
		return Record{}, fmt.Errorf("insert calculation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return Record{}, fmt.Errorf("calculation insert id: %w", err)
	}
	return s.Get(ownerID, id)
}

// Get loads one record owned by ownerID.
func (s *Store) Get(ownerID string, id int64) (Record, error) {
	if ownerID == "" {
		return Record{}, ErrUnauthenticated
	}

	var rec Record
	var blob string
	err := s.db.QueryRow(`
		SELECT id, project_name, calculation_data, created_at
		FROM calculations
		WHERE id = ? AND owner_id = ?
	`, id, ownerID).Scan(&rec.ID, &rec.ProjectName, &blob, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("query calculation: %w", err)
	}

	if err := json.Unmarshal([]byte(blob), &rec.Data); err != nil {
		return Record{}, fmt.Errorf("decode calculation data: %w", err)
	}
	rec.Data.CreatedAt = rec.CreatedAt
	return rec, nil
}

// List returns the owner's records, newest first.
func (s *Store) List(ownerID string) ([]Record, error) {
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}

	rows, err := s.db.Query(`
		SELECT id, project_name, calculation_data, created_at
		FROM calculations
		WHERE owner_id = ?
		ORDER BY datetime(created_at) DESC, id DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query calculations: %w", err)
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var rec Record
		var blob string
		if err := rows.Scan(&rec.ID, &rec.ProjectName, &blob, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan calculation: %w", err)
		}
		if err := json.Unmarshal([]byte(blob), &rec.Data); err != nil {
			return nil, fmt.Errorf("decode calculation data: %w", err)
		}
		rec.Data.CreatedAt = rec.CreatedAt
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calculations: %w", err)
	}
	return records, nil
}

// Delete removes one record owned by ownerID.
func (s *Store) Delete(ownerID string, id int64) error {
	if ownerID == "" {
		return ErrUnauthenticated
	}

	result, err := s.db.Exec(`
		DELETE FROM calculations
		WHERE id = ? AND owner_id = ?
	`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete calculation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
