package pricing

// Settings holds the persisted calculator parameters that feed a price
// calculation. Values arrive already resolved: profile and country
// selections have been cascaded into the numeric fields by the settings
// store before Compute is called.
type Settings struct {
	MaterialCostPerKg         float64
	ElectricityCostPerKWh     float64
	PrinterPowerWatts         float64
	LaborHourlyRate           float64
	PrinterDepreciationHourly float64
	FailedPrintRatePercentage float64
	ProfitMarginPercentage    float64
	SupportMaterialCost       float64
}

// JobInputs represents the per-print inputs that vary between jobs.
// ObjectValue is grams for filament printing and milliliters for resin;
// both divide by the same 1000 to reach the per-kg/per-liter material rate.
type JobInputs struct {
	ObjectValue                float64
	PrintTimeHours             float64
	DesignSetupFee             float64
	PostProcessingTimeHours    float64
	SupportMaterialPercentage  float64
	ShippingCost               float64
	PostProcessingMaterialCost float64
}

// Breakdown contains every intermediate cost line plus the final price.
// Values are full precision; presentation layers round at the boundary.
type Breakdown struct {
	MaterialCost               float64 `json:"materialCost"`
	ElectricityCost            float64 `json:"electricityCost"`
	LaborCost                  float64 `json:"laborCost"`
	DesignSetupFee             float64 `json:"designSetupFee"`
	PrinterDepreciationCost    float64 `json:"printerDepreciationCost"`
	SupportMaterialCost        float64 `json:"supportMaterialCost"`
	PostProcessingMaterialCost float64 `json:"postProcessingMaterialCost"`
	ShippingCost               float64 `json:"shippingCost"`
	BaseCost                   float64 `json:"baseCost"`
	FinalPrice                 float64 `json:"finalPrice"`
}

// Compute calculates the full cost breakdown for one print job.
//
// It is deterministic and performs no I/O and no bounds checks: a failure
// rate at or above 100 divides by zero or a negative number, and callers
// are expected to reject such input before getting here.
func Compute(s Settings, job JobInputs) Breakdown {
	totalMaterialValue := job.ObjectValue * (1.0 + job.SupportMaterialPercentage/100.0)
	materialCost := (totalMaterialValue / 1000.0) * s.MaterialCostPerKg

	electricityCost := (s.PrinterPowerWatts * job.PrintTimeHours / 1000.0) * s.ElectricityCostPerKWh

	laborCost := (job.PrintTimeHours + job.PostProcessingTimeHours) * s.LaborHourlyRate

	// Depreciation accrues only while the printer runs, not during
	// post-processing.
	depreciationCost := job.PrintTimeHours * s.PrinterDepreciationHourly

	baseCost := materialCost + electricityCost + laborCost + job.DesignSetupFee +
		depreciationCost + s.SupportMaterialCost + job.PostProcessingMaterialCost

	if s.FailedPrintRatePercentage > 0 {
		baseCost = baseCost / (1.0 - s.FailedPrintRatePercentage/100.0)
	}

	// Shipping is added after margin and is not marked up.
	finalPrice := baseCost*(1.0+s.ProfitMarginPercentage/100.0) + job.ShippingCost

	return Breakdown{
		MaterialCost:               materialCost,
		ElectricityCost:            electricityCost,
		LaborCost:                  laborCost,
		DesignSetupFee:             job.DesignSetupFee,
		PrinterDepreciationCost:    depreciationCost,
		SupportMaterialCost:        s.SupportMaterialCost,
		PostProcessingMaterialCost: job.PostProcessingMaterialCost,
		ShippingCost:               job.ShippingCost,
		BaseCost:                   baseCost,
		FinalPrice:                 finalPrice,
	}
}
