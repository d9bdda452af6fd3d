package main

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/printwise/printwise/internal/history"
)

func TestSaveCalculationAnonymousRejected(t *testing.T) {
	_, handler := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, jsonRequest(t, "POST", "/api/calculations", map[string]any{
		"projectName": "Benchy",
	}))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("save status = %d, want 401", rec.Code)
	}
}

func TestCalculationLifecycle(t *testing.T) {
	srv, handler := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, asUser(srv, jsonRequest(t, "POST", "/api/calculations", map[string]any{
		"projectName":  "Benchy",
		"shippingCost": 4.5,
	})))
	if rec.Code != http.StatusCreated {
		t.Fatalf("save status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var saved history.Record
	decodeResponse(t, rec, &saved)
	if saved.ID == 0 || saved.ProjectName != "Benchy" || saved.CreatedAt == "" {
		t.Fatalf("unexpected saved record: %+v", saved)
	}
	if saved.Data.ShippingCost != 4.5 {
		t.Fatalf("snapshot shippingCost = %v, want 4.5", saved.Data.ShippingCost)
	}

	id := strconv.FormatInt(saved.ID, 10)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, asUser(srv, httptest.NewRequest("GET", "/api/calculations", nil)))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rec.Code)
	}
	var records []history.Record
	decodeResponse(t, rec, &records)
	if len(records) != 1 || records[0].ID != saved.ID {
		t.Fatalf("unexpected list: %+v", records)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, asUser(srv, httptest.NewRequest("GET", "/api/calculations/"+id+"/document", nil)))
	if rec.Code != http.StatusOK {
		t.Fatalf("document status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Total Estimated Price") {
		t.Fatalf("document missing total line: %q", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, asUser(srv, httptest.NewRequest("GET", "/api/calculations/"+id+"/email", nil)))
	if rec.Code != http.StatusOK {
		t.Fatalf("email status = %d, want 200", rec.Code)
	}
	var mail struct {
		Mailto string `json:"mailto"`
	}
	decodeResponse(t, rec, &mail)
	if !strings.Contains(mail.Mailto, "3D+Print+Cost+Summary+-+Benchy") {
		t.Fatalf("mailto missing subject: %q", mail.Mailto)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, asUser(srv, httptest.NewRequest("DELETE", "/api/calculations/"+id, nil)))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, asUser(srv, httptest.NewRequest("GET", "/api/calculations/"+id, nil)))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", rec.Code)
	}
}

func TestSaveCalculationBlankNameGetsPlaceholder(t *testing.T) {
	srv, handler := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, asUser(srv, jsonRequest(t, "POST", "/api/calculations", map[string]any{
		"projectName": "  ",
	})))
	if rec.Code != http.StatusCreated {
		t.Fatalf("save status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var saved history.Record
	decodeResponse(t, rec, &saved)
	if saved.ProjectName != "Untitled Project" {
		t.Fatalf("projectName = %q, want placeholder", saved.ProjectName)
	}
}

func TestCalculationInvalidIDReturns400(t *testing.T) {
	srv, handler := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, asUser(srv, httptest.NewRequest("GET", "/api/calculations/abc", nil)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("get status = %d, want 400", rec.Code)
	}
}
