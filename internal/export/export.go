// Package export renders a calculation snapshot into the flat documents
// handed to the PDF generator and the mail client. Layout and pagination
// happen downstream; everything here is plain text.
package export

import (
	"fmt"
	"net/url"
	"strings"
)

const appTitle = "3D Print Price Calculator"

func (s Snapshot) money(v float64) string {
	return fmt.Sprintf("%s%.2f", s.Currency, v)
}

func (s Snapshot) unitLabel() (weight, cost string) {
	if s.PrintType == "resin" {
		return "ml", "L"
	}
	return "grams", "kg"
}

// Document renders the summary as plain text. Professional mode prepends
// the company header and a project-details section, mirroring the two PDF
// layouts.
func (s Snapshot) Document() string {
	var b strings.Builder

	professional := s.PDFExportMode == "professional"
	weightUnit, costUnit := s.unitLabel()

	if professional {
		if s.CompanyName != "" {
			fmt.Fprintf(&b, "%s\n", s.CompanyName)
		}
		if s.CompanyAddress != "" {
			fmt.Fprintf(&b, "%s\n", s.CompanyAddress)
		}
		if s.CompanyName != "" || s.CompanyAddress != "" {
			b.WriteString("\n")
		}
	}

	if s.ProjectName != "" {
		fmt.Fprintf(&b, "%s\n", s.ProjectName)
	}
	fmt.Fprintf(&b, "%s\n", appTitle)
	if s.CreatedAt != "" {
		fmt.Fprintf(&b, "Date: %s\n", s.CreatedAt)
	}
	b.WriteString("\n")

	if professional {
		printType := "Filament Printing"
		if s.PrintType == "resin" {
			printType = "Resin Printing"
		}
		b.WriteString("Project Details\n")
		fmt.Fprintf(&b, "Print Type: %s\n", printType)
		fmt.Fprintf(&b, "Printer Profile: %s (%.0fW)\n", s.SelectedPrinterProfile, s.PrinterPowerWatts)
		fmt.Fprintf(&b, "Material: %s (%s/%s)\n", s.SelectedFilamentProfile, s.money(s.MaterialCostPerKg), costUnit)
		fmt.Fprintf(&b, "Object Size: %.2f %s\n", s.ObjectValue, weightUnit)
		fmt.Fprintf(&b, "Print Time: %.2f hours\n", s.PrintTimeHours)
		fmt.Fprintf(&b, "Post-processing Time: %.2f hours\n", s.PostProcessingTimeHours)
		fmt.Fprintf(&b, "Country (Electricity): %s (%s/kWh)\n", s.SelectedCountry, s.money(s.ElectricityCostPerKWh))
		fmt.Fprintf(&b, "Labor Hourly Rate: %s\n", s.money(s.LaborHourlyRate))
		fmt.Fprintf(&b, "Profit Margin: %.2f%%\n", s.ProfitMarginPercentage)
		fmt.Fprintf(&b, "Failed Print Rate: %.2f%%\n", s.FailedPrintRatePercentage)
		fmt.Fprintf(&b, "Support Material Overhead: %.2f%%\n", s.SupportMaterialPercentage)
		b.WriteString("\n")
	}

	b.WriteString("Cost Breakdown\n")
	b.WriteString(s.breakdownLines())
	fmt.Fprintf(&b, "\nTotal Estimated Price: %s\n", s.money(s.FinalPrice))

	return b.String()
}

func (s Snapshot) breakdownLines() string {
	var b strings.Builder
	lines := []struct {
		label string
		value float64
	}{
		{"Material Cost", s.MaterialCost},
		{"Electricity Cost", s.ElectricityCost},
		{"Labor Cost", s.LaborCost},
		{"Design/Setup Fee", s.DesignSetupFee},
		{"Printer Depreciation", s.PrinterDepreciationCost},
		{"Support Material Cost", s.SupportMaterialCost},
		{"Post-processing Material Cost", s.PostProcessingMaterialCost},
		{"Shipping Cost", s.ShippingCost},
	}
	for _, line := range lines {
		fmt.Fprintf(&b, "%s: %s\n", line.label, s.money(line.value))
	}
	return b.String()
}

// EmailBody renders the short plain-text summary used for the mail
// handoff.
func (s Snapshot) EmailBody() string {
	var b strings.Builder
	b.WriteString("PrintWise Calculator:\n\n")
	b.WriteString(s.breakdownLines())
	fmt.Fprintf(&b, "\nTotal Estimated Price: %s\n", s.money(s.FinalPrice))
	return b.String()
}

// MailtoURL composes the pre-filled mail draft link for a saved
// calculation.
func MailtoURL(projectName string, s Snapshot) string {
	subject := "3D Print Cost Summary - " + projectName
	return "mailto:?subject=" + url.QueryEscape(subject) + "&body=" + url.QueryEscape(s.EmailBody())
}
