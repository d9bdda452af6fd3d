package catalog

import "testing"

func TestResolvePrinter_Builtin(t *testing.T) {
	c := New(nil, nil)

	p, ok := c.ResolvePrinter("Creality Ender 3")
	if !ok {
		t.Fatal("expected to resolve built-in printer")
	}
	if p.PowerWatts != 150 || p.Type != PrintTypeFilament {
		t.Fatalf("unexpected profile: %+v", p)
	}
}

func TestResolvePrinter_UserProfileShadowsBuiltin(t *testing.T) {
	c := New([]PrinterProfile{
		{ID: "u-1", Name: "Creality Ender 3", PowerWatts: 200, Type: PrintTypeFilament, IsCustom: true},
	}, nil)

	p, ok := c.ResolvePrinter("Creality Ender 3")
	if !ok {
		t.Fatal("expected to resolve printer")
	}
	if p.PowerWatts != 200 || !p.IsCustom {
		t.Fatalf("user profile should shadow built-in, got %+v", p)
	}
}

func TestResolveMaterial_NotFound(t *testing.T) {
	c := New(nil, nil)

	if _, ok := c.ResolveMaterial("Unobtainium"); ok {
		t.Fatal("expected lookup miss for unknown material")
	}
}

func TestFirstPrinterFor_SkipsSentinelAndRespectsType(t *testing.T) {
	c := New(nil, nil)

	filament := c.FirstPrinterFor(PrintTypeFilament)
	if filament.Name != "Creality Ender 3" {
		t.Fatalf("first filament printer = %q", filament.Name)
	}

	resin := c.FirstPrinterFor(PrintTypeResin)
	if resin.Name != "Anycubic Photon Mono" {
		t.Fatalf("first resin printer = %q", resin.Name)
	}
	if !Compatible(resin.Type, PrintTypeResin) {
		t.Fatalf("resin printer has incompatible type %q", resin.Type)
	}
}

func TestFirstMaterialFor(t *testing.T) {
	c := New(nil, nil)

	if m := c.FirstMaterialFor(PrintTypeFilament); m.Name != "PLA" {
		t.Fatalf("first filament material = %q", m.Name)
	}
	if m := c.FirstMaterialFor(PrintTypeResin); m.Name != "Standard Resin" {
		t.Fatalf("first resin material = %q", m.Name)
	}
}

func TestPrintersFilterIncludesBothType(t *testing.T) {
	c := New(nil, nil)

	for _, p := range c.Printers(PrintTypeResin) {
		if !Compatible(p.Type, PrintTypeResin) {
			t.Fatalf("printer %q with type %q leaked into resin filter", p.Name, p.Type)
		}
	}

	// The custom sentinel is typed "both" and must appear in every filter.
	found := false
	for _, p := range c.Printers(PrintTypeFilament) {
		if p.Name == CustomPrinterName {
			found = true
		}
	}
	if !found {
		t.Fatal("custom printer sentinel missing from filament filter")
	}
}

func TestResolveCountry(t *testing.T) {
	de, ok := ResolveCountry("Germany")
	if !ok {
		t.Fatal("expected to resolve Germany")
	}
	if de.CostPerKWh != 0.40 || de.Currency != "€" {
		t.Fatalf("unexpected Germany entry: %+v", de)
	}

	if _, ok := ResolveCountry(CustomCountryName); ok {
		t.Fatal("custom country sentinel must not be in the static table")
	}
}

func TestCustomMaterialNameFor(t *testing.T) {
	if got := CustomMaterialNameFor(PrintTypeFilament); got != CustomFilamentName {
		t.Fatalf("filament sentinel = %q", got)
	}
	if got := CustomMaterialNameFor(PrintTypeResin); got != CustomResinName {
		t.Fatalf("resin sentinel = %q", got)
	}
}
