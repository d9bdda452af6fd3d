package pricing

import (
	"math"
	"testing"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestCompute_FullScenario(t *testing.T) {
	settings := Settings{
		MaterialCostPerKg:         20,
		PrinterPowerWatts:         150,
		ElectricityCostPerKWh:     0.17,
		LaborHourlyRate:           25,
		PrinterDepreciationHourly: 1.5,
		FailedPrintRatePercentage: 5,
		ProfitMarginPercentage:    20,
	}
	job := JobInputs{
		ObjectValue:    100,
		PrintTimeHours: 5,
		DesignSetupFee: 5,
	}

	got := Compute(settings, job)

	nearlyEqual(t, "materialCost", got.MaterialCost, 2.00)
	nearlyEqual(t, "electricityCost", got.ElectricityCost, 0.1275)
	nearlyEqual(t, "laborCost", got.LaborCost, 125)
	nearlyEqual(t, "printerDepreciationCost", got.PrinterDepreciationCost, 7.5)
	nearlyEqual(t, "baseCost", got.BaseCost, 139.6275/0.95)
	nearlyEqual(t, "finalPrice", got.FinalPrice, (139.6275/0.95)*1.20)

	if math.Abs(got.FinalPrice-176.37) > 0.01 {
		t.Fatalf("finalPrice rounds to %.2f, want 176.37", got.FinalPrice)
	}
}

func TestCompute_SupportMaterialPercentage(t *testing.T) {
	settings := Settings{MaterialCostPerKg: 10}

	plain := Compute(settings, JobInputs{ObjectValue: 1000})
	withSupport := Compute(settings, JobInputs{ObjectValue: 1000, SupportMaterialPercentage: 15})

	nearlyEqual(t, "plain materialCost", plain.MaterialCost, 10)
	nearlyEqual(t, "withSupport materialCost", withSupport.MaterialCost, 11.5)
}

func TestCompute_PostProcessingTimeExcludedFromDepreciation(t *testing.T) {
	settings := Settings{LaborHourlyRate: 30, PrinterDepreciationHourly: 2}
	job := JobInputs{PrintTimeHours: 4, PostProcessingTimeHours: 1}

	got := Compute(settings, job)

	nearlyEqual(t, "laborCost", got.LaborCost, 150)
	nearlyEqual(t, "printerDepreciationCost", got.PrinterDepreciationCost, 8)
}

func TestCompute_ShippingAddedAfterMargin(t *testing.T) {
	settings := Settings{MaterialCostPerKg: 10, ProfitMarginPercentage: 50}

	got := Compute(settings, JobInputs{ObjectValue: 1000, ShippingCost: 7})

	// 10 * 1.5 + 7: shipping must not be marked up.
	nearlyEqual(t, "finalPrice", got.FinalPrice, 22)
}

func TestCompute_ZeroFailureRateSkipsInflation(t *testing.T) {
	settings := Settings{MaterialCostPerKg: 10}

	got := Compute(settings, JobInputs{ObjectValue: 1000})

	nearlyEqual(t, "baseCost", got.BaseCost, 10)
	nearlyEqual(t, "finalPrice", got.FinalPrice, 10)
}

func TestCompute_FailureRateAtHundredIsUnguarded(t *testing.T) {
	settings := Settings{MaterialCostPerKg: 10, FailedPrintRatePercentage: 100}

	got := Compute(settings, JobInputs{ObjectValue: 1000})

	// Kept bug-for-bug with the original formula: division by zero
	// yields +Inf. The HTTP boundary rejects rates >= 100 before
	// reaching Compute.
	if !math.IsInf(got.BaseCost, 1) {
		t.Fatalf("baseCost = %v, want +Inf", got.BaseCost)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	settings := Settings{
		MaterialCostPerKg:         21.37,
		PrinterPowerWatts:         133,
		ElectricityCostPerKWh:     0.31,
		LaborHourlyRate:           27.5,
		PrinterDepreciationHourly: 1.25,
		FailedPrintRatePercentage: 7,
		ProfitMarginPercentage:    35,
		SupportMaterialCost:       0.8,
	}
	job := JobInputs{
		ObjectValue:                123.4,
		PrintTimeHours:             6.5,
		DesignSetupFee:             3,
		PostProcessingTimeHours:    0.75,
		SupportMaterialPercentage:  12,
		ShippingCost:               4.99,
		PostProcessingMaterialCost: 1.1,
	}

	first := Compute(settings, job)
	second := Compute(settings, job)

	if first != second {
		t.Fatalf("repeated Compute diverged:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestCompute_NonNegativeInputsGiveFiniteNonNegativePrice(t *testing.T) {
	settings := Settings{
		MaterialCostPerKg:         18,
		PrinterPowerWatts:         220,
		ElectricityCostPerKWh:     0.4,
		LaborHourlyRate:           12,
		PrinterDepreciationHourly: 0.9,
		FailedPrintRatePercentage: 35,
		ProfitMarginPercentage:    10,
		SupportMaterialCost:       2,
	}
	job := JobInputs{
		ObjectValue:                250,
		PrintTimeHours:             9,
		DesignSetupFee:             8,
		PostProcessingTimeHours:    2,
		SupportMaterialPercentage:  20,
		ShippingCost:               6,
		PostProcessingMaterialCost: 1.5,
	}

	got := Compute(settings, job)

	if math.IsNaN(got.FinalPrice) || math.IsInf(got.FinalPrice, 0) || got.FinalPrice < 0 {
		t.Fatalf("finalPrice = %v, want finite non-negative", got.FinalPrice)
	}
	if got.FinalPrice < got.BaseCost {
		t.Fatalf("finalPrice %v < baseCost %v: margin and shipping only add cost", got.FinalPrice, got.BaseCost)
	}
}
