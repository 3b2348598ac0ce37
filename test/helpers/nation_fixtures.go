package helpers

import (
	"testing"

	"github.com/andrescamacho/nationsim-go/internal/domain/nation"
	"github.com/andrescamacho/nationsim-go/internal/domain/province"
	"github.com/andrescamacho/nationsim-go/internal/domain/shared"
	"github.com/andrescamacho/nationsim-go/internal/domain/world"
)

// RomaniaProvinces returns the three Romanian provinces of the default scenario
func RomaniaProvinces() []province.Spec {
	return []province.Spec{
		{Name: "Wallachia", Population: 1800, CivFactories: 3, MilFactories: 3, Infrastructure: 6, Steel: 5, Tungsten: 3, Aluminum: 4, Chromium: 1, Oil: 3},
		{Name: "Moldavia", Population: 1500, CivFactories: 2, MilFactories: 2, Infrastructure: 5, Steel: 4, Tungsten: 2, Aluminum: 3, Chromium: 1, Oil: 2},
		{Name: "Transylvania", Population: 1600, CivFactories: 2, MilFactories: 1, Infrastructure: 7, Steel: 8, Tungsten: 5, Aluminum: 6, Chromium: 3, Oil: 1},
	}
}

// HungaryProvinces returns the two Hungarian provinces of the default scenario
func HungaryProvinces() []province.Spec {
	return []province.Spec{
		{Name: "Alfold", Population: 1400, CivFactories: 2, MilFactories: 2, Infrastructure: 6, Steel: 4, Tungsten: 2, Aluminum: 3, Chromium: 1, Oil: 2},
		{Name: "Transdanubia", Population: 1200, CivFactories: 2, MilFactories: 1, Infrastructure: 6, Steel: 3, Tungsten: 2, Aluminum: 2, Chromium: 1, Oil: 1},
	}
}

// NewTestNation builds a nation whose focus targeting always picks province 0
func NewTestNation(t *testing.T, name string, provinces ...province.Spec) *nation.Nation {
	t.Helper()
	n, err := nation.New(nation.Config{
		Name:      name,
		Ideology:  "Democratic",
		Manpower:  100,
		Provinces: provinces,
		Random:    shared.NewMockRandom(0),
	})
	if err != nil {
		t.Fatalf("failed to create test nation: %v", err)
	}
	return n
}

// NewTestWorld builds the Romania/Hungary world with deterministic focus targeting
func NewTestWorld(t *testing.T) *world.World {
	t.Helper()
	romania := NewTestNation(t, "Romania", RomaniaProvinces()...)
	hungary := NewTestNation(t, "Hungary", HungaryProvinces()...)
	if err := romania.AddProductionLine(shared.EquipmentGun, 2, 0); err != nil {
		t.Fatalf("failed to add production line: %v", err)
	}
	if err := hungary.AddProductionLine(shared.EquipmentArtillery, 1, 0); err != nil {
		t.Fatalf("failed to add production line: %v", err)
	}
	w, err := world.NewWorld(romania, hungary)
	if err != nil {
		t.Fatalf("failed to create test world: %v", err)
	}
	return w
}
