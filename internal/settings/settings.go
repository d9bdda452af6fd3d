package settings

import (
	"github.com/printwise/printwise/internal/catalog"
	"github.com/printwise/printwise/internal/pricing"
)

// ExportMode selects the document layout used when exporting a summary.
type ExportMode string

const (
	ExportModeStandard     ExportMode = "standard"
	ExportModeProfessional ExportMode = "professional"
)

// Settings is the resolved calculator configuration. One record exists per
// installation; it is hydrated from storage at startup and written back on
// every change.
type Settings struct {
	MaterialCostPerKg          float64 `json:"materialCostPerKg"`
	ObjectWeightGrams          float64 `json:"objectWeightGrams"`
	PrintTimeHours             float64 `json:"printTimeHours"`
	ElectricityCostPerKWh      float64 `json:"electricityCostPerKWh"`
	PrinterPowerWatts          float64 `json:"printerPowerWatts"`
	LaborHourlyRate            float64 `json:"laborHourlyRate"`
	DesignSetupFee             float64 `json:"designSetupFee"`
	ProfitMarginPercentage     float64 `json:"profitMarginPercentage"`
	PrinterDepreciationHourly  float64 `json:"printerDepreciationHourly"`
	FailedPrintRatePercentage  float64 `json:"failedPrintRatePercentage"`
	SupportMaterialCost        float64 `json:"supportMaterialCost"`
	PostProcessingMaterialCost float64 `json:"postProcessingMaterialCost"`

	Currency                string            `json:"currency"`
	SelectedPrinterProfile  string            `json:"selectedPrinterProfile"`
	SelectedFilamentProfile string            `json:"selectedFilamentProfile"`
	PrintType               catalog.PrintType `json:"printType"`
	SelectedCountry         string            `json:"selectedCountry"`
	PDFExportMode           ExportMode        `json:"pdfExportMode"`
	CompanyName             string            `json:"companyName"`
	CompanyAddress          string            `json:"companyAddress"`
	CompanyLogoURL          string            `json:"companyLogoUrl"`
	ProjectName             string            `json:"projectName"`
}

// Fallback rate and currency applied when a selected country is not in the
// catalog and the caller supplied nothing better.
const (
	fallbackElectricityCost = 0.15
	fallbackCurrency        = "$"
)

// Defaults returns the hard-coded default record. Stored records are
// unmarshalled over a copy of this, so fields added later default here.
func Defaults() Settings {
	return Settings{
		MaterialCostPerKg:         20,
		ObjectWeightGrams:         100,
		PrintTimeHours:            5,
		ElectricityCostPerKWh:     0.15,
		PrinterPowerWatts:         100,
		LaborHourlyRate:           25,
		DesignSetupFee:            5,
		ProfitMarginPercentage:    20,
		PrinterDepreciationHourly: 1.5,
		FailedPrintRatePercentage: 5,

		Currency:                "$",
		SelectedPrinterProfile:  catalog.CustomPrinterName,
		SelectedFilamentProfile: "PLA",
		PrintType:               catalog.PrintTypeFilament,
		SelectedCountry:         "United States",
		PDFExportMode:           ExportModeStandard,
	}
}

// Pricing maps the resolved record onto the engine's input parameters.
func (s Settings) Pricing() pricing.Settings {
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

// Job seeds per-job inputs from the current defaults.
func (s Settings) Job() pricing.JobInputs {
	return pricing.JobInputs{
		ObjectValue:                s.ObjectWeightGrams,
		PrintTimeHours:             s.PrintTimeHours,
		DesignSetupFee:             s.DesignSetupFee,
		PostProcessingMaterialCost: s.PostProcessingMaterialCost,
	}
}

// Update is a partial change to the settings record. Nil fields were not
// supplied by the caller; the distinction matters for the custom-profile
// cascade rules.
type Update struct {
	MaterialCostPerKg          *float64 `json:"materialCostPerKg"`
	ObjectWeightGrams          *float64 `json:"objectWeightGrams"`
	PrintTimeHours             *float64 `json:"printTimeHours"`
	ElectricityCostPerKWh      *float64 `json:"electricityCostPerKWh"`
	PrinterPowerWatts          *float64 `json:"printerPowerWatts"`
	LaborHourlyRate            *float64 `json:"laborHourlyRate"`
	DesignSetupFee             *float64 `json:"designSetupFee"`
	ProfitMarginPercentage     *float64 `json:"profitMarginPercentage"`
	PrinterDepreciationHourly  *float64 `json:"printerDepreciationHourly"`
	FailedPrintRatePercentage  *float64 `json:"failedPrintRatePercentage"`
	SupportMaterialCost        *float64 `json:"supportMaterialCost"`
	PostProcessingMaterialCost *float64 `json:"postProcessingMaterialCost"`

	Currency                *string            `json:"currency"`
	SelectedPrinterProfile  *string            `json:"selectedPrinterProfile"`
	SelectedFilamentProfile *string            `json:"selectedFilamentProfile"`
	PrintType               *catalog.PrintType `json:"printType"`
	SelectedCountry         *string            `json:"selectedCountry"`
	PDFExportMode           *ExportMode        `json:"pdfExportMode"`
	CompanyName             *string            `json:"companyName"`
	CompanyAddress          *string            `json:"companyAddress"`
	CompanyLogoURL          *string            `json:"companyLogoUrl"`
	ProjectName             *string            `json:"projectName"`

	// Scratch inputs for the "Custom Country" sentinel. They are not part
	// of the persisted record.
	CustomElectricityCost *float64 `json:"customElectricityCost"`
	CustomCurrency        *string  `json:"customCurrency"`
}

// merge copies every supplied field of u onto s.
func (u Update) merge(s *Settings) {
	if u.MaterialCostPerKg != nil {
		s.MaterialCostPerKg = *u.MaterialCostPerKg
	}
	if u.ObjectWeightGrams != nil {
		s.ObjectWeightGrams = *u.ObjectWeightGrams
	}
	if u.PrintTimeHours != nil {
		s.PrintTimeHours = *u.PrintTimeHours
	}
	if u.ElectricityCostPerKWh != nil {
		s.ElectricityCostPerKWh = *u.ElectricityCostPerKWh
	}
	if u.PrinterPowerWatts != nil {
		s.PrinterPowerWatts = *u.PrinterPowerWatts
	}
	if u.LaborHourlyRate != nil {
		s.LaborHourlyRate = *u.LaborHourlyRate
	}
	if u.DesignSetupFee != nil {
		s.DesignSetupFee = *u.DesignSetupFee
	}
	if u.ProfitMarginPercentage != nil {
		s.ProfitMarginPercentage = *u.ProfitMarginPercentage
	}
	if u.PrinterDepreciationHourly != nil {
		s.PrinterDepreciationHourly = *u.PrinterDepreciationHourly
	}
	if u.FailedPrintRatePercentage != nil {
		s.FailedPrintRatePercentage = *u.FailedPrintRatePercentage
	}
	if u.SupportMaterialCost != nil {
		s.SupportMaterialCost = *u.SupportMaterialCost
	}
	if u.PostProcessingMaterialCost != nil {
		s.PostProcessingMaterialCost = *u.PostProcessingMaterialCost
	}
	if u.Currency != nil {
		s.Currency = *u.Currency
	}
	if u.SelectedPrinterProfile != nil {
		s.SelectedPrinterProfile = *u.SelectedPrinterProfile
	}
	if u.SelectedFilamentProfile != nil {
		s.SelectedFilamentProfile = *u.SelectedFilamentProfile
	}
	if u.PrintType != nil {
		s.PrintType = *u.PrintType
	}
	if u.SelectedCountry != nil {
		s.SelectedCountry = *u.SelectedCountry
	}
	if u.PDFExportMode != nil {
		s.PDFExportMode = *u.PDFExportMode
	}
	if u.CompanyName != nil {
		s.CompanyName = *u.CompanyName
	}
	if u.CompanyAddress != nil {
		s.CompanyAddress = *u.CompanyAddress
	}
	if u.CompanyLogoURL != nil {
		s.CompanyLogoURL = *u.CompanyLogoURL
	}
	if u.ProjectName != nil {
		s.ProjectName = *u.ProjectName
	}
}
