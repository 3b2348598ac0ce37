package province

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/nationsim-go/internal/domain/shared"
	"github.com/andrescamacho/nationsim-go/internal/domain/stockpile"
)

func wallachia() *Province {
	return NewProvince(Spec{
		Name: "Wallachia", Population: 1800,
		CivFactories: 3, MilFactories: 3, Infrastructure: 6,
		Steel: 5, Tungsten: 3, Aluminum: 4, Chromium: 1, Oil: 3,
	})
}

func TestNewProvince_ClampsInputs(t *testing.T) {
	p := NewProvince(Spec{
		Name: "Broken", Population: -10,
		CivFactories: -1, MilFactories: -2, Infrastructure: 14,
		Dockyards: -3, Airfields: -4, Oil: -5,
	})

	assert.Equal(t, 0, p.Population())
	assert.Equal(t, 0, p.Civ())
	assert.Equal(t, 0, p.Mil())
	assert.Equal(t, MaxInfrastructure, p.Infrastructure())
	assert.Equal(t, 0, p.Dockyards())
	assert.Equal(t, 0, p.Airfields())
	assert.Equal(t, 0, p.Oil())

	// clamped infrastructure is the only thing left to report
	effects := p.Effects()
	require.Len(t, effects, 1)
	assert.Equal(t, EffectBuildingSlot, effects[0].Kind)
	assert.Equal(t, shared.BuildingInfra, effects[0].Building)
	assert.Equal(t, MaxInfrastructure, effects[0].Amount)
}

func TestProvince_AddInfraStaysInRange(t *testing.T) {
	p := wallachia()

	for _, x := range []int{3, 5, -20, 4, 100, -1} {
		p.AddInfra(x)
		assert.GreaterOrEqual(t, p.Infrastructure(), 0)
		assert.LessOrEqual(t, p.Infrastructure(), MaxInfrastructure)
	}
	assert.Equal(t, 9, p.Infrastructure())
}

func TestProvince_AddCountersFloorAtZero(t *testing.T) {
	p := wallachia()

	p.AddCiv(-10)
	p.AddMil(2)
	p.AddDockyard(-1)
	p.AddAirfield(4)

	assert.Equal(t, 0, p.Civ())
	assert.Equal(t, 5, p.Mil())
	assert.Equal(t, 0, p.Dockyards())
	assert.Equal(t, 4, p.Airfields())
}

func TestProvince_AddBuildingResearchFacilityIsAFlag(t *testing.T) {
	p := wallachia()

	p.AddBuilding(shared.BuildingNavalRF, 1)
	p.AddBuilding(shared.BuildingNavalRF, 1)

	assert.True(t, p.HasNavalResearchFacility())
	assert.Equal(t, 1, p.BuildingCount(shared.BuildingNavalRF))
	assert.False(t, p.HasArmyResearchFacility())
}

func TestProvince_AddBuildingRoutesToCounter(t *testing.T) {
	p := wallachia()

	p.AddBuilding(shared.BuildingCiv, 1)
	p.AddBuilding(shared.BuildingMil, 1)
	p.AddBuilding(shared.BuildingDockyard, 1)
	p.AddBuilding(shared.BuildingAirfield, 1)
	p.AddBuilding(shared.BuildingInfra, 1)

	assert.Equal(t, 4, p.Civ())
	assert.Equal(t, 4, p.Mil())
	assert.Equal(t, 1, p.Dockyards())
	assert.Equal(t, 1, p.Airfields())
	assert.Equal(t, 7, p.Infrastructure())
}

func TestProvince_DailyEffectsOnlyConvertOil(t *testing.T) {
	// Arrange
	p := wallachia()
	s := stockpile.NewResourceStockpile(0, 100)

	// Act
	p.ApplyDailyResourceEffects(s)
	p.ApplyDailyResourceEffects(s)

	// Assert
	assert.Equal(t, 2*3*FuelPerOilUnit, s.Fuel())
	assert.Equal(t, 100, s.Manpower())
}

func TestProvince_EffectsRebuiltOnChange(t *testing.T) {
	p := NewProvince(Spec{Name: "Empty"})
	require.Empty(t, p.Effects())

	p.AddDockyard(2)

	effects := p.Effects()
	require.Len(t, effects, 1)
	assert.Equal(t, EffectBuildingSlot, effects[0].Kind)
	assert.Equal(t, shared.BuildingDockyard, effects[0].Building)
	assert.Equal(t, 2, effects[0].Amount)
	assert.Equal(t, "Building", effects[0].Category())
	assert.True(t, effects[0].IsStrategic())
}

func TestProvince_EffectRecordsOnlyForNonZeroValues(t *testing.T) {
	p := NewProvince(Spec{Name: "Sparse", Oil: 2, Steel: 1})

	effects := p.Effects()

	require.Len(t, effects, 2)
	assert.Equal(t, "Steel", effects[0].Name)
	assert.Equal(t, EffectDailyOutput, effects[1].Kind)
	assert.Equal(t, "Daily Output", effects[1].Category())
	assert.False(t, effects[1].IsStrategic())
}

func TestProvince_ConstructionSlotsExcludeInfrastructure(t *testing.T) {
	p := wallachia()

	// 3 civ + 3 mil; infrastructure 6 is not a construction slot
	assert.Equal(t, 6, p.ConstructionSlots())

	p.AddAirfield(2)
	assert.Equal(t, 8, p.ConstructionSlots())
}
