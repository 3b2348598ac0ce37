package stockpile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/nationsim-go/internal/domain/shared"
)

func TestNewResourceStockpile_ClampsNegatives(t *testing.T) {
	s := NewResourceStockpile(-5, -1)

	assert.Equal(t, 0, s.Fuel())
	assert.Equal(t, 0, s.Manpower())
}

func TestResourceStockpile_Add(t *testing.T) {
	tests := []struct {
		name             string
		fuel, manpower   int
		dFuel, dManpower int
		wantFuel         int
		wantManpower     int
	}{
		{"positive deltas", 10, 100, 25, 5, 35, 105},
		{"negative within bounds", 10, 100, -4, -50, 6, 50},
		{"fuel driven below zero", 10, 100, -40, 0, 0, 100},
		{"manpower driven below zero", 0, 3, 0, -10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewResourceStockpile(tt.fuel, tt.manpower)

			s.Add(tt.dFuel, tt.dManpower)

			assert.Equal(t, tt.wantFuel, s.Fuel())
			assert.Equal(t, tt.wantManpower, s.Manpower())
		})
	}
}

func TestResourceStockpile_NeverNegativeAcrossSequence(t *testing.T) {
	s := NewResourceStockpile(0, 0)
	deltas := []int{5, -20, 3, -1, -100, 7}

	for _, d := range deltas {
		s.Add(d, -d)
		assert.GreaterOrEqual(t, s.Fuel(), 0)
		assert.GreaterOrEqual(t, s.Manpower(), 0)
	}
}

func TestEquipmentStockpile_IgnoresNonPositive(t *testing.T) {
	e := NewEquipmentStockpile()

	e.AddGuns(10)
	e.AddGuns(0)
	e.AddGuns(-7)
	e.AddCAS(-1)

	assert.Equal(t, int64(10), e.Guns())
	assert.Equal(t, int64(0), e.CAS())
}

func TestEquipmentStockpile_AddDispatchesByType(t *testing.T) {
	e := NewEquipmentStockpile()

	e.Add(shared.EquipmentGun, 1)
	e.Add(shared.EquipmentArtillery, 2)
	e.Add(shared.EquipmentAntiAir, 3)
	e.Add(shared.EquipmentCAS, 4)
	e.Add(shared.EquipmentType("TANK"), 99)

	assert.Equal(t, int64(1), e.Count(shared.EquipmentGun))
	assert.Equal(t, int64(2), e.Count(shared.EquipmentArtillery))
	assert.Equal(t, int64(3), e.Count(shared.EquipmentAntiAir))
	assert.Equal(t, int64(4), e.Count(shared.EquipmentCAS))
	assert.Equal(t, int64(0), e.Count(shared.EquipmentType("TANK")))
	assert.Equal(t, "Guns: 1, Artillery: 2, Anti-Air: 3, CAS: 4", e.String())
}

func TestStockpileSnapshots_ReadWithoutAddress(t *testing.T) {
	resources := NewResourceStockpile(30, 100)
	equipment := NewEquipmentStockpile()
	equipment.AddArtillery(5)

	snapshot := func() ResourceStockpile { return *resources }
	equipmentSnapshot := func() EquipmentStockpile { return *equipment }

	assert.Equal(t, 30, snapshot().Fuel())
	assert.Equal(t, 100, snapshot().Manpower())
	assert.Equal(t, "Fuel: 30, Manpower: 100", snapshot().String())
	assert.Equal(t, int64(5), equipmentSnapshot().Count(shared.EquipmentArtillery))

	// later changes do not reach an earlier snapshot
	before := snapshot()
	resources.Add(-10, 0)
	assert.Equal(t, 30, before.Fuel())
	assert.Equal(t, 20, resources.Fuel())
}

func TestEquipmentStockpile_SaturatesInsteadOfWrapping(t *testing.T) {
	e := NewEquipmentStockpile()

	e.AddGuns(math.MaxInt64)
	e.AddGuns(math.MaxInt64)
	e.AddGuns(1)

	assert.Equal(t, int64(math.MaxInt64), e.Guns())
}
