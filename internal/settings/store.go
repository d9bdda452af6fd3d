package settings

import (
	"fmt"
	"sync"

	"github.com/printwise/printwise/internal/catalog"
)

// Persister loads and saves the single settings record. found is false when
// nothing has been stored yet.
type Persister interface {
	Load() (s Settings, found bool, err error)
	Save(Settings) error
}

// Store owns the settings record and applies the cascade rules on every
// update. All mutations persist synchronously after commit.
type Store struct {
	mu        sync.Mutex
	current   Settings
	persister Persister
	subs      []func(Settings)

	// Last wattage/cost the user entered while a custom sentinel was
	// selected, restored when switching back to the sentinel without an
	// explicit value.
	lastCustomPrinterWatts float64
	lastCustomMaterialCost float64
}

// NewStore hydrates a store from the persister, falling back to the
// hard-coded defaults when nothing is stored.
func NewStore(p Persister) (*Store, error) {
	s := &Store{persister: p}

	s.current = Defaults()
	if p != nil {
		stored, found, err := p.Load()
		if err != nil {
			return nil, fmt.Errorf("load settings: %w", err)
		}
		if found {
			s.current = stored
		}
	}

	if catalog.IsCustomPrinterName(s.current.SelectedPrinterProfile) {
		s.lastCustomPrinterWatts = s.current.PrinterPowerWatts
	}
	if catalog.IsCustomMaterialName(s.current.SelectedFilamentProfile) {
		s.lastCustomMaterialCost = s.current.MaterialCostPerKg
	}

	return s, nil
}

// Get returns a copy of the current record.
func (s *Store) Get() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Subscribe registers fn to run after every committed change. Callbacks run
// synchronously on the updating goroutine.
func (s *Store) Subscribe(fn func(Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Update merges the partial change into the record, applies the cascade
// rules, persists the result, and returns it.
//
// The rules run in fixed precedence and at most one fires per call:
//
//  1. printType cascade: a print-type change re-selects the first
//     compatible printer and material profile, overriding any profile
//     fields supplied in the same call.
//  2. printer cascade: a profile change rewrites printerPowerWatts from
//     the catalog; the custom sentinel restores the last custom wattage
//     unless the caller supplied one.
//  3. material cascade: as above for materialCostPerKg.
//  4. country cascade: a country change rewrites electricityCostPerKWh and
//     currency from the catalog, or from the scratch inputs/fallbacks for
//     an unknown country.
//
// The cat argument is the merged catalog for the caller's account; nil
// means built-ins only.
func (s *Store) Update(cat *catalog.Catalog, u Update) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cat == nil {
		cat = catalog.New(nil, nil)
	}

	prev := s.current
	next := prev
	u.merge(&next)

	switch {
	case next.PrintType != prev.PrintType:
		s.cascadePrintType(cat, &next)
	case next.SelectedPrinterProfile != prev.SelectedPrinterProfile:
		s.cascadePrinter(cat, u, &next)
	case next.SelectedFilamentProfile != prev.SelectedFilamentProfile:
		s.cascadeMaterial(cat, u, &next)
	case next.SelectedCountry != prev.SelectedCountry:
		s.cascadeCountry(u, &next)
	}

	s.rememberCustomValues(next)

	return s.commit(next)
}

func (s *Store) cascadePrintType(cat *catalog.Catalog, next *Settings) {
	printer := cat.FirstPrinterFor(next.PrintType)
	next.SelectedPrinterProfile = printer.Name
	next.PrinterPowerWatts = printer.PowerWatts

	material := cat.FirstMaterialFor(next.PrintType)
	next.SelectedFilamentProfile = material.Name
	next.MaterialCostPerKg = material.CostPerKg
}

func (s *Store) cascadePrinter(cat *catalog.Catalog, u Update, next *Settings) {
	if !catalog.IsCustomPrinterName(next.SelectedPrinterProfile) {
		if p, ok := cat.ResolvePrinter(next.SelectedPrinterProfile); ok {
			next.PrinterPowerWatts = p.PowerWatts
			return
		}
		// Unknown profile name: fall back to the sentinel, zeroed.
		next.SelectedPrinterProfile = catalog.CustomPrinterName
		next.PrinterPowerWatts = 0
		return
	}
	if u.PrinterPowerWatts == nil {
		next.PrinterPowerWatts = s.lastCustomPrinterWatts
	}
}

func (s *Store) cascadeMaterial(cat *catalog.Catalog, u Update, next *Settings) {
	if !catalog.IsCustomMaterialName(next.SelectedFilamentProfile) {
		if m, ok := cat.ResolveMaterial(next.SelectedFilamentProfile); ok {
			next.MaterialCostPerKg = m.CostPerKg
			return
		}
		next.SelectedFilamentProfile = catalog.CustomMaterialNameFor(next.PrintType)
		next.MaterialCostPerKg = 0
		return
	}
	if u.MaterialCostPerKg == nil {
		next.MaterialCostPerKg = s.lastCustomMaterialCost
	}
}

func (s *Store) cascadeCountry(u Update, next *Settings) {
	if c, ok := catalog.ResolveCountry(next.SelectedCountry); ok {
		next.ElectricityCostPerKWh = c.CostPerKWh
		next.Currency = c.Currency
		return
	}

	// Custom or unknown country: caller-supplied values win, then the
	// scratch inputs, then the hard fallbacks.
	if u.ElectricityCostPerKWh == nil {
		if u.CustomElectricityCost != nil {
			next.ElectricityCostPerKWh = *u.CustomElectricityCost
		} else {
			next.ElectricityCostPerKWh = fallbackElectricityCost
		}
	}
	if u.Currency == nil {
		if u.CustomCurrency != nil {
			next.Currency = *u.CustomCurrency
		} else {
			next.Currency = fallbackCurrency
		}
	}
}

// rememberCustomValues tracks the wattage/cost in effect while a custom
// sentinel is selected, so a later round trip through a catalog profile can
// restore it.
func (s *Store) rememberCustomValues(next Settings) {
	if catalog.IsCustomPrinterName(next.SelectedPrinterProfile) {
		s.lastCustomPrinterWatts = next.PrinterPowerWatts
	}
	if catalog.IsCustomMaterialName(next.SelectedFilamentProfile) {
		s.lastCustomMaterialCost = next.MaterialCostPerKg
	}
}

// ResetToDefaults restores the hard-coded record and persists it.
func (s *Store) ResetToDefaults() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := Defaults()
	s.lastCustomPrinterWatts = next.PrinterPowerWatts
	s.lastCustomMaterialCost = 0
	return s.commit(next)
}

func (s *Store) commit(next Settings) (Settings, error) {
	if s.persister != nil {
		if err := s.persister.Save(next); err != nil {
			return s.current, fmt.Errorf("persist settings: %w", err)
		}
	}
	s.current = next
	for _, fn := range s.subs {
		fn(next)
	}
	return next, nil
}
