package seed

import (
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/printwise/printwise/internal/db"
	"github.com/printwise/printwise/internal/migrations"
	"github.com/printwise/printwise/internal/settings"
)

func TestRunIsIdempotent(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "seed-test.db")
	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database, "../../migrations"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	cfg := Config{
		AdminEmail:    "admin@printwise.dev",
		AdminPassword: "12345",
	}

	for i := 0; i < 10; i++ {
		stats, err := Run(database, cfg)
		if err != nil {
			t.Fatalf("run seed (iteration=%d): %v", i, err)
		}
		if i == 0 {
			if stats.Inserts != 2 {
				t.Fatalf("expected 2 inserts in first run, got %d", stats.Inserts)
			}
			continue
		}
		if stats.Inserts != 0 {
			t.Fatalf("expected 0 inserts in iteration %d, got %d", i, stats.Inserts)
		}
	}

	assertCount(t, database, `SELECT COUNT(*) FROM users WHERE email = ?`, "admin@printwise.dev", 1)
	assertCount(t, database, `SELECT COUNT(*) FROM calculator_settings WHERE id = 1`, nil, 1)

	var hash string
	if err := database.QueryRow(`SELECT password_hash FROM users WHERE email = ?`, "admin@printwise.dev").Scan(&hash); err != nil {
		t.Fatalf("query admin hash: %v", err)
	}
	if hash != HashPassword("12345") {
		t.Fatalf("expected admin hash to match password")
	}
}

func TestRunSeedsDefaultSettings(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "seed-settings-test.db")
	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database, "../../migrations"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	if _, err := Run(database, Config{}); err != nil {
		t.Fatalf("run seed: %v", err)
	}

	// Without admin credentials only the settings singleton is seeded.
	assertCount(t, database, `SELECT COUNT(*) FROM users`, nil, 0)

	var blob string
	if err := database.QueryRow(`SELECT data FROM calculator_settings WHERE id = 1`).Scan(&blob); err != nil {
		t.Fatalf("query seeded settings: %v", err)
	}

	var got settings.Settings
	if err := json.Unmarshal([]byte(blob), &got); err != nil {
		t.Fatalf("decode seeded settings: %v", err)
	}
	if got != settings.Defaults() {
		t.Fatalf("seeded settings differ from defaults: %+v", got)
	}
}

func assertCount(t *testing.T, database *sql.DB, query string, args any, expected int) {
	t.Helper()

	var count int
	var err error
	switch v := args.(type) {
	case nil:
		err = database.QueryRow(query).Scan(&count)
	case []any:
		err = database.QueryRow(query, v...).Scan(&count)
	default:
		err = database.QueryRow(query, v).Scan(&count)
	}
	if err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != expected {
		t.Fatalf("expected count %d, got %d", expected, count)
	}
}
