package main

import (
	"fmt"
	"net/http"

	"github.com/printwise/printwise/internal/catalog"
	"github.com/printwise/printwise/internal/pricing"
	"github.com/printwise/printwise/internal/settings"
)

func (s *server) handleSettingsGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.settings.Get())
}

func (s *server) handleSettingsUpdate(w http.ResponseWriter, r *http.Request) {
	var u settings.Update
	if err := decodeJSON(r, &u); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateSettingsUpdate(u); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cat, err := s.profiles.Catalog(s.auth.sessionOwner(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load profiles")
		return
	}

	updated, err := s.settings.Update(cat, u)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *server) handleSettingsReset(w http.ResponseWriter, r *http.Request) {
	restored, err := s.settings.ResetToDefaults()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to reset settings")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Settings restored to defaults",
		"settings": restored,
	})
}

type catalogResponse struct {
	Printers  []catalog.PrinterProfile         `json:"printers"`
	Materials []catalog.MaterialProfile        `json:"materials"`
	Countries []catalog.CountryElectricityCost `json:"countries"`
}

func (s *server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	pt := catalog.PrintType(r.URL.Query().Get("type"))
	switch pt {
	case "", catalog.PrintTypeFilament, catalog.PrintTypeResin:
	default:
		writeError(w, http.StatusBadRequest, "type must be filament or resin")
		return
	}

	cat, err := s.profiles.Catalog(s.auth.sessionOwner(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load profiles")
		return
	}

	writeJSON(w, http.StatusOK, catalogResponse{
		Printers:  cat.Printers(pt),
		Materials: cat.Materials(pt),
		Countries: catalog.Countries(),
	})
}

// jobRequest overrides the per-job inputs seeded from the current settings.
// Nil fields keep the seeded value.
type jobRequest struct {
	ObjectValue                *float64 `json:"objectValue"`
	PrintTimeHours             *float64 `json:"printTimeHours"`
	PostProcessingTimeHours    *float64 `json:"postProcessingTimeHours"`
	SupportMaterialPercentage  *float64 `json:"supportMaterialPercentage"`
	DesignSetupFee             *float64 `json:"designSetupFee"`
	ShippingCost               *float64 `json:"shippingCost"`
	PostProcessingMaterialCost *float64 `json:"postProcessingMaterialCost"`
}

func (req jobRequest) apply(job *pricing.JobInputs) {
	if req.ObjectValue != nil {
		job.ObjectValue = *req.ObjectValue
	}
	if req.PrintTimeHours != nil {
		job.PrintTimeHours = *req.PrintTimeHours
	}
	if req.PostProcessingTimeHours != nil {
		job.PostProcessingTimeHours = *req.PostProcessingTimeHours
	}
	if req.SupportMaterialPercentage != nil {
		job.SupportMaterialPercentage = *req.SupportMaterialPercentage
	}
	if req.DesignSetupFee != nil {
		job.DesignSetupFee = *req.DesignSetupFee
	}
	if req.ShippingCost != nil {
		job.ShippingCost = *req.ShippingCost
	}
	if req.PostProcessingMaterialCost != nil {
		job.PostProcessingMaterialCost = *req.PostProcessingMaterialCost
	}
}

type computeResponse struct {
	Breakdown pricing.Breakdown `json:"breakdown"`
	Currency  string            `json:"currency"`
}

func (s *server) handleCompute(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
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

	writeJSON(w, http.StatusOK, computeResponse{
		Breakdown: pricing.Compute(current.Pricing(), job),
		Currency:  current.Currency,
	})
}

func validateJob(job pricing.JobInputs) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"objectValue", job.ObjectValue},
		{"printTimeHours", job.PrintTimeHours},
		{"postProcessingTimeHours", job.PostProcessingTimeHours},
		{"supportMaterialPercentage", job.SupportMaterialPercentage},
		{"designSetupFee", job.DesignSetupFee},
		{"shippingCost", job.ShippingCost},
		{"postProcessingMaterialCost", job.PostProcessingMaterialCost},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%s must be zero or greater", f.name)
		}
	}
	return nil
}

// validateSettingsUpdate rejects out-of-range numerics before they reach the
// store. The failure rate must stay below 100: the engine divides by
// (1 - rate/100) without a guard.
func validateSettingsUpdate(u settings.Update) error {
	fields := []struct {
		name  string
		value *float64
	}{
		{"materialCostPerKg", u.MaterialCostPerKg},
		{"objectWeightGrams", u.ObjectWeightGrams},
		{"printTimeHours", u.PrintTimeHours},
		{"electricityCostPerKWh", u.ElectricityCostPerKWh},
		{"printerPowerWatts", u.PrinterPowerWatts},
		{"laborHourlyRate", u.LaborHourlyRate},
		{"designSetupFee", u.DesignSetupFee},
		{"profitMarginPercentage", u.ProfitMarginPercentage},
		{"printerDepreciationHourly", u.PrinterDepreciationHourly},
		{"failedPrintRatePercentage", u.FailedPrintRatePercentage},
		{"supportMaterialCost", u.SupportMaterialCost},
		{"postProcessingMaterialCost", u.PostProcessingMaterialCost},
		{"customElectricityCost", u.CustomElectricityCost},
	}
	for _, f := range fields {
		if f.value != nil && *f.value < 0 {
			return fmt.Errorf("%s must be zero or greater", f.name)
		}
	}

	if u.FailedPrintRatePercentage != nil && *u.FailedPrintRatePercentage >= 100 {
		return fmt.Errorf("failedPrintRatePercentage must be below 100")
	}

	if u.PrintType != nil {
		switch *u.PrintType {
		case catalog.PrintTypeFilament, catalog.PrintTypeResin:
		default:
			return fmt.Errorf("printType must be filament or resin")
		}
	}
	if u.PDFExportMode != nil {
		switch *u.PDFExportMode {
		case settings.ExportModeStandard, settings.ExportModeProfessional:
		default:
			return fmt.Errorf("pdfExportMode must be standard or professional")
		}
	}
	return nil
}
