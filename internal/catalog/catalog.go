package catalog

// PrintType selects between the two supported printing technologies.
type PrintType string

const (
	PrintTypeFilament PrintType = "filament"
	PrintTypeResin    PrintType = "resin"
	// PrintTypeBoth marks printer profiles usable with either technology.
	PrintTypeBoth PrintType = "both"
)

// Sentinel profile and country names. Selecting one of these means the
// dependent numeric fields are supplied by the user rather than a catalog
// entry.
const (
	CustomPrinterName  = "Custom Printer"
	CustomFilamentName = "Custom Filament"
	CustomResinName    = "Custom Resin"
	CustomCountryName  = "Custom Country"
)

// PrinterProfile is a named printer with its power draw. Built-in profiles
// are identified by name; user-defined ones carry an ID and IsCustom.
type PrinterProfile struct {
	ID         string    `json:"id,omitempty"`
	Name       string    `json:"name"`
	PowerWatts float64   `json:"powerWatts"`
	Type       PrintType `json:"type"`
	IsCustom   bool      `json:"isCustom,omitempty"`
}

// MaterialProfile is a named material with its cost per kilogram (filament)
// or per liter (resin).
type MaterialProfile struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	CostPerKg float64   `json:"costPerKg"`
	Type      PrintType `json:"type"`
	IsCustom  bool      `json:"isCustom,omitempty"`
}

// CountryElectricityCost maps a country to its average electricity rate and
// currency symbol.
type CountryElectricityCost struct {
	Name       string  `json:"name"`
	CostPerKWh float64 `json:"costPerKWh"`
	Currency   string  `json:"currency"`
}

var builtinPrinters = []PrinterProfile{
	{Name: "Creality Ender 3", PowerWatts: 150, Type: PrintTypeFilament},
	{Name: "Prusa MK4", PowerWatts: 120, Type: PrintTypeFilament},
	{Name: "Bambu Lab P1S", PowerWatts: 300, Type: PrintTypeFilament},
	{Name: "Anycubic Photon Mono", PowerWatts: 45, Type: PrintTypeResin},
	{Name: "Elegoo Mars 4", PowerWatts: 30, Type: PrintTypeResin},
	{Name: "Elegoo Saturn 3", PowerWatts: 58, Type: PrintTypeResin},
	{Name: CustomPrinterName, PowerWatts: 0, Type: PrintTypeBoth},
}

var builtinMaterials = []MaterialProfile{
	{Name: "PLA", CostPerKg: 20, Type: PrintTypeFilament},
	{Name: "PETG", CostPerKg: 25, Type: PrintTypeFilament},
	{Name: "ABS", CostPerKg: 22, Type: PrintTypeFilament},
	{Name: "TPU", CostPerKg: 35, Type: PrintTypeFilament},
	{Name: "Standard Resin", CostPerKg: 35, Type: PrintTypeResin},
	{Name: "ABS-Like Resin", CostPerKg: 40, Type: PrintTypeResin},
	{Name: CustomFilamentName, CostPerKg: 0, Type: PrintTypeFilament},
	{Name: CustomResinName, CostPerKg: 0, Type: PrintTypeResin},
}

// Countries is the static electricity-cost table. The "Custom Country"
// sentinel is intentionally absent: its rate and currency live in scratch
// fields supplied by the caller, not here.
var countries = []CountryElectricityCost{
	{Name: "United States", CostPerKWh: 0.15, Currency: "$"},
	{Name: "Canada", CostPerKWh: 0.10, Currency: "$"},
	{Name: "United Kingdom", CostPerKWh: 0.34, Currency: "£"},
	{Name: "Germany", CostPerKWh: 0.40, Currency: "€"},
	{Name: "France", CostPerKWh: 0.23, Currency: "€"},
	{Name: "Spain", CostPerKWh: 0.18, Currency: "€"},
	{Name: "Australia", CostPerKWh: 0.25, Currency: "$"},
	{Name: "Japan", CostPerKWh: 0.22, Currency: "¥"},
	{Name: "India", CostPerKWh: 0.08, Currency: "₹"},
	{Name: "Brazil", CostPerKWh: 0.13, Currency: "R$"},
}

// IsCustomPrinterName reports whether name is the printer sentinel.
func IsCustomPrinterName(name string) bool {
	return name == CustomPrinterName
}

// IsCustomMaterialName reports whether name is one of the material
// sentinels.
func IsCustomMaterialName(name string) bool {
	return name == CustomFilamentName || name == CustomResinName
}

// CustomMaterialNameFor returns the material sentinel matching the given
// print type.
func CustomMaterialNameFor(pt PrintType) string {
	if pt == PrintTypeResin {
		return CustomResinName
	}
	return CustomFilamentName
}

// Compatible reports whether a profile of type pt can serve a print job of
// type want.
func Compatible(pt, want PrintType) bool {
	return pt == want || pt == PrintTypeBoth
}

// Catalog is the merged view over the built-in tables and one account's
// custom profiles. User profiles are appended after built-ins; on name
// lookup the last match wins, so a user profile may shadow a built-in.
type Catalog struct {
	printers  []PrinterProfile
	materials []MaterialProfile
}

// New builds a merged catalog from the built-in tables plus the given user
// profiles.
func New(userPrinters []PrinterProfile, userMaterials []MaterialProfile) *Catalog {
	c := &Catalog{
		printers:  make([]PrinterProfile, 0, len(builtinPrinters)+len(userPrinters)),
		materials: make([]MaterialProfile, 0, len(builtinMaterials)+len(userMaterials)),
	}
	c.printers = append(c.printers, builtinPrinters...)
	c.printers = append(c.printers, userPrinters...)
	c.materials = append(c.materials, builtinMaterials...)
	c.materials = append(c.materials, userMaterials...)
	return c
}

// Printers returns the merged printer profiles, optionally filtered to
// those compatible with the given print type.
func (c *Catalog) Printers(pt PrintType) []PrinterProfile {
	out := make([]PrinterProfile, 0, len(c.printers))
	for _, p := range c.printers {
		if pt == "" || Compatible(p.Type, pt) {
			out = append(out, p)
		}
	}
	return out
}

// Materials returns the merged material profiles, optionally filtered by
// print type. Materials never declare "both".
func (c *Catalog) Materials(pt PrintType) []MaterialProfile {
	out := make([]MaterialProfile, 0, len(c.materials))
	for _, m := range c.materials {
		if pt == "" || m.Type == pt {
			out = append(out, m)
		}
	}
	return out
}

// ResolvePrinter looks a printer up by name in the merged catalog.
func (c *Catalog) ResolvePrinter(name string) (PrinterProfile, bool) {
	var found PrinterProfile
	ok := false
	for _, p := range c.printers {
		if p.Name == name {
			found = p
			ok = true
		}
	}
	return found, ok
}

// ResolveMaterial looks a material up by name in the merged catalog.
func (c *Catalog) ResolveMaterial(name string) (MaterialProfile, bool) {
	var found MaterialProfile
	ok := false
	for _, m := range c.materials {
		if m.Name == name {
			found = m
			ok = true
		}
	}
	return found, ok
}

// FirstPrinterFor returns the first catalog printer compatible with the
// given print type. The fallback is the custom sentinel at 0 W, which is
// always present in the built-in table.
func (c *Catalog) FirstPrinterFor(pt PrintType) PrinterProfile {
	for _, p := range c.printers {
		if p.Name != CustomPrinterName && Compatible(p.Type, pt) {
			return p
		}
	}
	return PrinterProfile{Name: CustomPrinterName, PowerWatts: 0, Type: PrintTypeBoth}
}

// FirstMaterialFor returns the first catalog material of the given print
// type, falling back to the matching custom sentinel at cost 0.
func (c *Catalog) FirstMaterialFor(pt PrintType) MaterialProfile {
	for _, m := range c.materials {
		if !IsCustomMaterialName(m.Name) && m.Type == pt {
			return m
		}
	}
	return MaterialProfile{Name: CustomMaterialNameFor(pt), CostPerKg: 0, Type: pt}
}

// Countries returns the static country table.
func Countries() []CountryElectricityCost {
	out := make([]CountryElectricityCost, len(countries))
	copy(out, countries)
	return out
}

// ResolveCountry looks a country up in the static table.
func ResolveCountry(name string) (CountryElectricityCost, bool) {
	for _, c := range countries {
		if c.Name == name {
			return c, true
		}
	}
	return CountryElectricityCost{}, false
}
