package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/printwise/printwise/internal/config"
	"github.com/printwise/printwise/internal/db"
	"github.com/printwise/printwise/internal/history"
	"github.com/printwise/printwise/internal/migrations"
	"github.com/printwise/printwise/internal/profiles"
	"github.com/printwise/printwise/internal/seed"
	"github.com/printwise/printwise/internal/settings"
)

type server struct {
	auth     *authService
	db       *sql.DB
	settings *settings.Store
	profiles *profiles.Store
	history  *history.Store
}

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(database, "migrations"); err != nil {
			log.Fatalf("failed to run database migrations: %v", err)
		}
	}

	stats, err := seed.Run(database, seed.Config{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
	})
	if err != nil {
		log.Fatalf("failed to run startup seed: %v", err)
	}
	if stats.Inserts > 0 {
		log.Printf("startup seed inserted %d rows", stats.Inserts)
	}

	settingsStore, err := settings.NewStore(settings.NewSQLitePersister(database))
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}

	srv := &server{
		auth:     newAuthService(database, cfg.SessionSecret),
		db:       database,
		settings: settingsStore,
		profiles: profiles.NewStore(database),
		history:  history.NewStore(database),
	}

	r := chi.NewRouter()
	srv.routes(r)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func (s *server) routes(r chi.Router) {
	r.Post("/login", s.handleLogin)
	r.Post("/logout", s.handleLogout)

	r.Get("/api/settings", s.handleSettingsGet)
	r.Put("/api/settings", s.handleSettingsUpdate)
	r.Post("/api/settings/reset", s.handleSettingsReset)

	r.Get("/api/catalog", s.handleCatalog)
	r.Post("/api/compute", s.handleCompute)

	r.Get("/api/profiles/printers", s.handlePrintersList)
	r.Post("/api/profiles/printers", s.handlePrintersCreate)
	r.Put("/api/profiles/printers/{id}", s.handlePrintersUpdate)
	r.Delete("/api/profiles/printers/{id}", s.handlePrintersDelete)

	r.Get("/api/profiles/materials", s.handleMaterialsList)
	r.Post("/api/profiles/materials", s.handleMaterialsCreate)
	r.Put("/api/profiles/materials/{id}", s.handleMaterialsUpdate)
	r.Delete("/api/profiles/materials/{id}", s.handleMaterialsDelete)

	r.Get("/api/calculations", s.handleCalculationsList)
	r.Post("/api/calculations", s.handleCalculationsSave)
	r.Get("/api/calculations/{id}", s.handleCalculationsGet)
	r.Delete("/api/calculations/{id}", s.handleCalculationsDelete)
	r.Get("/api/calculations/{id}/document", s.handleCalculationDocument)
	r.Get("/api/calculations/{id}/email", s.handleCalculationEmail)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	valid, err := s.auth.validateCredentials(req.Email, req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "authentication error")
		return
	}
	if !valid {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	s.auth.setSessionCookie(w, req.Email)
	writeJSON(w, http.StatusOK, map[string]string{"email": req.Email})
}

func (s *server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.auth.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeStoreError maps the shared store sentinels onto HTTP statuses.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, profiles.ErrUnauthenticated) || errors.Is(err, history.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, profiles.ErrNotFound) || errors.Is(err, history.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, profiles.ErrInvalid):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
