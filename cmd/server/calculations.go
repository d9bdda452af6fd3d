package main

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/printwise/printwise/internal/export"
	"github.com/printwise/printwise/internal/history"
	"github.com/printwise/printwise/internal/pricing"
)

type saveCalculationRequest struct {
	ProjectName *string `json:"projectName"`
	jobRequest
}

func (s *server) handleCalculationsSave(w http.ResponseWriter, r *http.Request) {
	var req saveCalculationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	current := s.settings.Get()
	job := current.Job()
	req.apply(&job)

	if err := validateJob(job); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	projectName := current.ProjectName
	if req.ProjectName != nil {
		projectName = *req.ProjectName
	}

	breakdown := pricing.Compute(current.Pricing(), job)
	snap := export.NewSnapshot(current, job, breakdown)
	snap.ProjectName = projectName

	rec, err := s.history.Save(s.auth.sessionOwner(r), projectName, snap)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *server) handleCalculationsList(w http.ResponseWriter, r *http.Request) {
	records, err := s.history.List(s.auth.sessionOwner(r))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *server) handleCalculationsGet(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadCalculation(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *server) handleCalculationsDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid calculation id")
		return
	}

	if err := s.history.Delete(s.auth.sessionOwner(r), id); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleCalculationDocument(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadCalculation(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(rec.Data.Document()))
}

func (s *server) handleCalculationEmail(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadCalculation(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"mailto": export.MailtoURL(rec.ProjectName, rec.Data),
	})
}

func (s *server) loadCalculation(w http.ResponseWriter, r *http.Request) (history.Record, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid calculation id")
		return history.Record{}, false
	}

	rec, err := s.history.Get(s.auth.sessionOwner(r), id)
	if err != nil {
		writeStoreError(w, err)
		return history.Record{}, false
	}
	return rec, true
}
