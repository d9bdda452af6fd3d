package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/printwise/printwise/internal/catalog"
)

func (s *server) handlePrintersList(w http.ResponseWriter, r *http.Request) {
	list, err := s.profiles.ListPrinters(s.auth.sessionOwner(r))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *server) handlePrintersCreate(w http.ResponseWriter, r *http.Request) {
	var p catalog.PrinterProfile
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	list, err := s.profiles.AddPrinter(s.auth.sessionOwner(r), p)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, list)
}

func (s *server) handlePrintersUpdate(w http.ResponseWriter, r *http.Request) {
	var p catalog.PrinterProfile
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	list, err := s.profiles.UpdatePrinter(s.auth.sessionOwner(r), chi.URLParam(r, "id"), p)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *server) handlePrintersDelete(w http.ResponseWriter, r *http.Request) {
	list, err := s.profiles.DeletePrinter(s.auth.sessionOwner(r), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *server) handleMaterialsList(w http.ResponseWriter, r *http.Request) {
	list, err := s.profiles.ListMaterials(s.auth.sessionOwner(r))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *server) handleMaterialsCreate(w http.ResponseWriter, r *http.Request) {
	var m catalog.MaterialProfile
	if err := decodeJSON(r, &m); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	list, err := s.profiles.AddMaterial(s.auth.sessionOwner(r), m)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, list)
}

func (s *server) handleMaterialsUpdate(w http.ResponseWriter, r *http.Request) {
	var m catalog.MaterialProfile
	if err := decodeJSON(r, &m); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	list, err := s.profiles.UpdateMaterial(s.auth.sessionOwner(r), chi.URLParam(r, "id"), m)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *server) handleMaterialsDelete(w http.ResponseWriter, r *http.Request) {
	list, err := s.profiles.DeleteMaterial(s.auth.sessionOwner(r), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
