// Package profiles manages user-defined printer and material profiles.
// Every operation is scoped to an owner; unauthenticated callers are
// rejected before any database work, and each successful mutation refetches
// the owner's profiles so the caller always holds a fresh merged catalog.
package profiles

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/printwise/printwise/internal/catalog"
)

var (
	// ErrUnauthenticated is returned when no owner identity was provided.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrNotFound is returned when an id does not exist for the owner.
	ErrNotFound = errors.New("profile not found")
	// ErrInvalid wraps validation failures on submitted profiles.
	ErrInvalid = errors.New("invalid profile")
)

// Store performs profile CRUD against the local database.
type Store struct {
	db *sql.DB
}

// NewStore wraps db. Tables are created by migrations.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Catalog returns the merged catalog for the owner: built-ins plus the
// owner's custom profiles. An empty owner gets the built-ins only.
func (s *Store) Catalog(ownerID string) (*catalog.Catalog, error) {
	if ownerID == "" {
		return catalog.New(nil, nil), nil
	}

	printers, err := s.ListPrinters(ownerID)
	if err != nil {
		return nil, err
	}
	materials, err := s.ListMaterials(ownerID)
	if err != nil {
		return nil, err
	}
	return catalog.New(printers, materials), nil
}

// ListPrinters returns the owner's custom printer profiles.
func (s *Store) ListPrinters(ownerID string) ([]catalog.PrinterProfile, error) {
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}

	rows, err := s.db.Query(`
		SELECT id, name, power_watts, type
		FROM printer_profiles
		WHERE owner_id = ?
		ORDER BY created_at, id
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query printer profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]catalog.PrinterProfile, 0)
	for rows.Next() {
		p := catalog.PrinterProfile{IsCustom: true}
		var pt string
		if err := rows.Scan(&p.ID, &p.Name, &p.PowerWatts, &pt); err != nil {
			return nil, fmt.Errorf("scan printer profile: %w", err)
		}
		p.Type = catalog.PrintType(pt)
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate printer profiles: %w", err)
	}
	return profiles, nil
}

// AddPrinter inserts a profile and returns the owner's refetched list.
func (s *Store) AddPrinter(ownerID string, p catalog.PrinterProfile) ([]catalog.PrinterProfile, error) {
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}
	if err := validatePrinter(p); err != nil {
		return nil, err
	}

	_, err := s.db.Exec(`
		INSERT INTO printer_profiles (id, owner_id, name, power_watts, type)
		VALUES (?, ?, ?, ?, ?)
	`, uuid.NewString(), ownerID, p.Name, p.PowerWatts, string(p.Type))
	if err != nil {
		return nil, fmt.Errorf("insert printer profile: %w", err)
	}

	return s.ListPrinters(ownerID)
}

// UpdatePrinter rewrites a profile owned by ownerID and returns the
// refetched list.
func (s *Store) UpdatePrinter(ownerID, id string, p catalog.PrinterProfile) ([]catalog.PrinterProfile, error) {
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}
	if err := validatePrinter(p); err != nil {
		return nil, err
	}

	result, err := s.db.Exec(`
		UPDATE printer_profiles
		SET name = ?, power_watts = ?, type = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND owner_id = ?
	`, p.Name, p.PowerWatts, string(p.Type), id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("update printer profile: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return nil, err
	}

	return s.ListPrinters(ownerID)
}

// DeletePrinter removes a profile owned by ownerID and returns the
// refetched list.
func (s *Store) DeletePrinter(ownerID, id string) ([]catalog.PrinterProfile, error) {
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}

	result, err := s.db.Exec(`
		DELETE FROM printer_profiles
		WHERE id = ? AND owner_id = ?
	`, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("delete printer profile: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return nil, err
	}

	return s.ListPrinters(ownerID)
}

// ListMaterials returns the owner's custom material profiles.
func (s *Store) ListMaterials(ownerID string) ([]catalog.MaterialProfile, error) {
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}

	rows, err := s.db.Query(`
		SELECT id, name, cost_per_kg, type
		FROM material_profiles
		WHERE owner_id = ?
		ORDER BY created_at, id
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query material profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]catalog.MaterialProfile, 0)
	for rows.Next() {
		m := catalog.MaterialProfile{IsCustom: true}
		var pt string
		if err := rows.Scan(&m.ID, &m.Name, &m.CostPerKg, &pt); err != nil {
			return nil, fmt.Errorf("scan material profile: %w", err)
		}
		m.Type = catalog.PrintType(pt)
		profiles = append(profiles, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate material profiles: %w", err)
	}
	return profiles, nil
}

// AddMaterial inserts a profile and returns the owner's refetched list.
func (s *Store) AddMaterial(ownerID string, m catalog.MaterialProfile) ([]catalog.MaterialProfile, error) {
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}
	if err := validateMaterial(m); err != nil {
		return nil, err
	}

	_, err := s.db.Exec(`
		INSERT INTO material_profiles (id, owner_id, name, cost_per_kg, type)
		VALUES (?, ?, ?, ?, ?)
	`, uuid.NewString(), ownerID, m.Name, m.CostPerKg, string(m.Type))
	if err != nil {
		return nil, fmt.Errorf("insert material profile: %w", err)
	}

	return s.ListMaterials(ownerID)
}

// UpdateMaterial rewrites a profile owned by ownerID and returns the
// refetched list.
func (s *Store) UpdateMaterial(ownerID, id string, m catalog.MaterialProfile) ([]catalog.MaterialProfile, error) {
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}
	if err := validateMaterial(m); err != nil {
		return nil, err
	}

	result, err := s.db.Exec(`
		UPDATE material_profiles
		SET name = ?, cost_per_kg = ?, type = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND owner_id = ?
	`, m.Name, m.CostPerKg, string(m.Type), id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("update material profile: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return nil, err
	}

	return s.ListMaterials(ownerID)
}

// DeleteMaterial removes a profile owned by ownerID and returns the
// refetched list.
func (s *Store) DeleteMaterial(ownerID, id string) ([]catalog.MaterialProfile, error) {
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}

	result, err := s.db.Exec(`
		DELETE FROM material_profiles
		WHERE id = ? AND owner_id = ?
	`, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("delete material profile: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return nil, err
	}

	return s.ListMaterials(ownerID)
}

func validatePrinter(p catalog.PrinterProfile) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if p.PowerWatts < 0 {
		return fmt.Errorf("%w: powerWatts must be zero or greater", ErrInvalid)
	}
	switch p.Type {
	case catalog.PrintTypeFilament, catalog.PrintTypeResin, catalog.PrintTypeBoth:
		return nil
	}
	return fmt.Errorf("%w: type must be filament, resin or both", ErrInvalid)
}

func validateMaterial(m catalog.MaterialProfile) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if m.CostPerKg < 0 {
		return fmt.Errorf("%w: costPerKg must be zero or greater", ErrInvalid)
	}
	switch m.Type {
	case catalog.PrintTypeFilament, catalog.PrintTypeResin:
		return nil
	}
	return fmt.Errorf("%w: type must be filament or resin", ErrInvalid)
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
