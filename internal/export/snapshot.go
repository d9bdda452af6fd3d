package export

import (
	"github.com/printwise/printwise/internal/catalog"
	"github.com/printwise/printwise/internal/pricing"
	"github.com/printwise/printwise/internal/settings"
)

// Snapshot is the flat record handed to document generators and stored as
// calculation_data in history. It carries the settings and job inputs that
// produced a breakdown alongside the breakdown itself, so a stored
// calculation can be recomputed bit-for-bit.
type Snapshot struct {
	// Settings at calculation time.
	PrintType                 catalog.PrintType   `json:"printType"`
	SelectedPrinterProfile    string              `json:"selectedPrinterProfile"`
	PrinterPowerWatts         float64             `json:"printerPowerWatts"`
	SelectedFilamentProfile   string              `json:"selectedFilamentProfile"`
	MaterialCostPerKg         float64             `json:"materialCostPerKg"`
	SelectedCountry           string              `json:"selectedCountry"`
	ElectricityCostPerKWh     float64             `json:"electricityCostPerKWh"`
	LaborHourlyRate           float64             `json:"laborHourlyRate"`
	PrinterDepreciationHourly float64             `json:"printerDepreciationHourly"`
	ProfitMarginPercentage    float64             `json:"profitMarginPercentage"`
	FailedPrintRatePercentage float64             `json:"failedPrintRatePercentage"`
	Currency                  string              `json:"currency"`
	PDFExportMode             settings.ExportMode `json:"pdfExportMode"`
	CompanyName               string              `json:"companyName"`
	CompanyAddress            string              `json:"companyAddress"`
	CompanyLogoURL            string              `json:"companyLogoUrl"`
	ProjectName               string              `json:"projectName"`

	// Job inputs.
	ObjectValue                float64 `json:"objectValue"`
	PrintTimeHours             float64 `json:"printTimeHours"`
	PostProcessingTimeHours    float64 `json:"postProcessingTimeHours"`
	SupportMaterialPercentage  float64 `json:"supportMaterialPercentage"`
	DesignSetupFee             float64 `json:"designSetupFee"`
	ShippingCost               float64 `json:"shippingCost"`
	SupportMaterialCost        float64 `json:"supportMaterialCost"`
	PostProcessingMaterialCost float64 `json:"postProcessingMaterialCost"`

	// Outputs.
	MaterialCost            float64 `json:"materialCost"`
	ElectricityCost         float64 `json:"electricityCost"`
	LaborCost               float64 `json:"laborCost"`
	PrinterDepreciationCost float64 `json:"printerDepreciationCost"`
	BaseCost                float64 `json:"baseCost"`
	FinalPrice              float64 `json:"finalPrice"`

	// Set on records loaded from history.
	CreatedAt string `json:"created_at,omitempty"`
}

// NewSnapshot flattens the inputs and outputs of one calculation.
func NewSnapshot(s settings.Settings, job pricing.JobInputs, b pricing.Breakdown) Snapshot {
	return Snapshot{
		PrintType:                 s.PrintType,
		SelectedPrinterProfile:    s.SelectedPrinterProfile,
		PrinterPowerWatts:         s.PrinterPowerWatts,
		SelectedFilamentProfile:   s.SelectedFilamentProfile,
		MaterialCostPerKg:         s.MaterialCostPerKg,
		SelectedCountry:           s.SelectedCountry,
		ElectricityCostPerKWh:     s.ElectricityCostPerKWh,
		LaborHourlyRate:           s.LaborHourlyRate,
		PrinterDepreciationHourly: s.PrinterDepreciationHourly,
		ProfitMarginPercentage:    s.ProfitMarginPercentage,
		FailedPrintRatePercentage: s.FailedPrintRatePercentage,
		Currency:                  s.Currency,
		PDFExportMode:             s.PDFExportMode,
		CompanyName:               s.CompanyName,
		CompanyAddress:            s.CompanyAddress,
		CompanyLogoURL:            s.CompanyLogoURL,
		ProjectName:               s.ProjectName,

		ObjectValue:                job.ObjectValue,
		PrintTimeHours:             job.PrintTimeHours,
		PostProcessingTimeHours:    job.PostProcessingTimeHours,
		SupportMaterialPercentage:  job.SupportMaterialPercentage,
		DesignSetupFee:             job.DesignSetupFee,
		ShippingCost:               job.ShippingCost,
		SupportMaterialCost:        b.SupportMaterialCost,
		PostProcessingMaterialCost: job.PostProcessingMaterialCost,

		MaterialCost:            b.MaterialCost,
		ElectricityCost:         b.ElectricityCost,
		LaborCost:               b.LaborCost,
		PrinterDepreciationCost: b.PrinterDepreciationCost,
		BaseCost:                b.BaseCost,
		FinalPrice:              b.FinalPrice,
	}
}

// PricingSettings reconstructs the engine parameters stored in the
// snapshot.
func (s Snapshot) PricingSettings() pricing.Settings {
	return pricing.Settings{
		MaterialCostPerKg:         s.MaterialCostPerKg,
		ElectricityCostPerKWh:     s.ElectricityCostPerKWh,
		PrinterPowerWatts:         s.PrinterPowerWatts,
		LaborHourlyRate:           s.LaborHourlyRate,
		PrinterDepreciationHourly: s.PrinterDepreciationHourly,
		FailedPrintRatePercentage: s.FailedPrintRatePercentage,
		ProfitMarginPercentage:    s.ProfitMarginPercentage,
		SupportMaterialCost:       s.SupportMaterialCost,
	}
}

// Job reconstructs the per-job inputs stored in the snapshot.
func (s Snapshot) Job() pricing.JobInputs {
	return pricing.JobInputs{
		ObjectValue:                s.ObjectValue,
		PrintTimeHours:             s.PrintTimeHours,
		DesignSetupFee:             s.DesignSetupFee,
		PostProcessingTimeHours:    s.PostProcessingTimeHours,
		SupportMaterialPercentage:  s.SupportMaterialPercentage,
		ShippingCost:               s.ShippingCost,
		PostProcessingMaterialCost: s.PostProcessingMaterialCost,
	}
}
