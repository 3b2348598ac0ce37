package nation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/nationsim-go/internal/domain/focus"
	"github.com/andrescamacho/nationsim-go/internal/domain/province"
	"github.com/andrescamacho/nationsim-go/internal/domain/shared"
)

func newRomania(t *testing.T, random shared.RandomSource) *Nation {
	t.Helper()
	n, err := New(Config{
		Name:     "Romania",
		Ideology: "Democratic",
		Manpower: 100,
		Provinces: []province.Spec{
			{Name: "Wallachia", Population: 1800, CivFactories: 3, MilFactories: 3, Infrastructure: 6, Steel: 5, Tungsten: 3, Aluminum: 4, Chromium: 1, Oil: 3},
			{Name: "Moldavia", Population: 1500, CivFactories: 2, MilFactories: 2, Infrastructure: 5, Steel: 4, Tungsten: 2, Aluminum: 3, Chromium: 1, Oil: 2},
			{Name: "Transylvania", Population: 1600, CivFactories: 2, MilFactories: 1, Infrastructure: 7, Steel: 8, Tungsten: 5, Aluminum: 6, Chromium: 3, Oil: 1},
		},
		Random: random,
	})
	require.NoError(t, err)
	return n
}

func newSingleProvince(t *testing.T, spec province.Spec) *Nation {
	t.Helper()
	n, err := New(Config{Name: "Testland", Provinces: []province.Spec{spec}, Random: shared.NewMockRandom(0)})
	require.NoError(t, err)
	return n
}

func TestNew_RequiresName(t *testing.T) {
	_, err := New(Config{Name: "  "})

	var validationErr *shared.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestNation_Totals(t *testing.T) {
	n := newRomania(t, nil)

	assert.Equal(t, 7, n.TotalCiv())
	assert.Equal(t, 6, n.TotalMil())
	assert.Equal(t, 6, n.TotalOil())
	assert.Equal(t, 17, n.TotalSteel())
	assert.Equal(t, 10, n.TotalTungsten())
	assert.Equal(t, 13, n.TotalAluminum())
	assert.Equal(t, 5, n.TotalChromium())
}

func TestAddConstruction_InvalidProvinceIndex(t *testing.T) {
	n := newRomania(t, nil)

	for _, idx := range []int{-1, 3, 42} {
		err := n.AddConstruction(shared.BuildingCiv, idx, 1)

		var indexErr *shared.InvalidProvinceIndexError
		require.ErrorAs(t, err, &indexErr)
		assert.Equal(t, idx, indexErr.Index)
	}
	assert.Empty(t, n.ConstructionQueue())
}

func TestAddConstruction_ProvinceIndexCheckedBeforeCount(t *testing.T) {
	n := newRomania(t, nil)

	err := n.AddConstruction(shared.BuildingCiv, 9, -1)

	var indexErr *shared.InvalidProvinceIndexError
	assert.ErrorAs(t, err, &indexErr)
}

func TestAddConstruction_NegativeCount(t *testing.T) {
	n := newRomania(t, nil)

	err := n.AddConstruction(shared.BuildingCiv, 0, -2)

	var countErr *shared.InvalidConstructionCountError
	require.ErrorAs(t, err, &countErr)
	assert.Equal(t, -2, countErr.Count)
	assert.Empty(t, n.ConstructionQueue())
}

func TestAddConstruction_ZeroCountIsNoOp(t *testing.T) {
	n := newRomania(t, nil)

	require.NoError(t, n.AddConstruction(shared.BuildingCiv, 0, 0))
	assert.Empty(t, n.ConstructionQueue())
}

func TestAddConstruction_InfraCeiling(t *testing.T) {
	// Arrange
	n := newSingleProvince(t, province.Spec{Name: "Bare"})

	// Act
	err := n.AddConstruction(shared.BuildingInfra, 0, 6)

	// Assert
	var capErr *shared.CapacityExceededError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 5, capErr.Ceiling)
	assert.Equal(t, 0, capErr.Built)
	assert.Equal(t, 0, capErr.Queued)
	assert.Empty(t, n.ConstructionQueue())
}

func TestAddConstruction_CeilingCountsQueuedAndBuilt(t *testing.T) {
	n := newSingleProvince(t, province.Spec{Name: "Half", CivFactories: 2})

	require.NoError(t, n.AddConstruction(shared.BuildingCiv, 0, 3))
	err := n.AddConstruction(shared.BuildingCiv, 0, 2)

	var capErr *shared.CapacityExceededError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 2, capErr.Built)
	assert.Equal(t, 3, capErr.Queued)
	assert.Len(t, n.ConstructionQueue(), 3)

	require.NoError(t, n.AddConstruction(shared.BuildingCiv, 0, 1))
	assert.Len(t, n.ConstructionQueue(), 4)
}

func TestAddConstruction_EnqueuesIndependentTasks(t *testing.T) {
	n := newRomania(t, nil)

	require.NoError(t, n.AddConstruction(shared.BuildingDockyard, 2, 2))

	queue := n.ConstructionQueue()
	require.Len(t, queue, 2)
	for _, task := range queue {
		assert.Equal(t, shared.BuildingDockyard, task.BuildingType())
		assert.Equal(t, 2, task.ProvinceIndex())
		assert.Equal(t, 150.0, task.RemainingBP())
	}
}

func TestAddConstruction_UnknownBuilding(t *testing.T) {
	n := newRomania(t, nil)

	err := n.AddConstruction(shared.BuildingType("CASTLE"), 0, 1)

	var validationErr *shared.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestAddProductionLine_RejectsOvercommit(t *testing.T) {
	n := newRomania(t, nil)
	require.NoError(t, n.AddProductionLine(shared.EquipmentGun, 4, 0))

	err := n.AddProductionLine(shared.EquipmentArtillery, 3, 0)

	var overErr *shared.FactoryOvercommitError
	require.ErrorAs(t, err, &overErr)
	assert.Equal(t, 4, overErr.Committed)
	assert.Equal(t, 6, overErr.Available)
	assert.Len(t, n.ProductionLines(), 1)
	assert.Equal(t, 2, n.FreeMilFactories())
}

func TestAddProductionLine_NegativeFactories(t *testing.T) {
	n := newRomania(t, nil)

	err := n.AddProductionLine(shared.EquipmentGun, -1, 0)

	assert.Error(t, err)
	assert.Empty(t, n.ProductionLines())
}

func TestSetLineFactories(t *testing.T) {
	n := newRomania(t, nil)
	require.NoError(t, n.AddProductionLine(shared.EquipmentGun, 2, 0))
	require.NoError(t, n.AddProductionLine(shared.EquipmentCAS, 2, 0))

	require.NoError(t, n.SetLineFactories(0, 4))
	assert.Equal(t, 6, n.UsedMilFactories())

	var overErr *shared.FactoryOvercommitError
	assert.ErrorAs(t, n.SetLineFactories(1, 3), &overErr)
	assert.Equal(t, 2, n.ProductionLines()[1].Factories())

	var indexErr *shared.InvalidProductionLineIndexError
	assert.ErrorAs(t, n.SetLineFactories(2, 1), &indexErr)
}

func TestSimulateDay_GunLineProducesThousandInFiveDays(t *testing.T) {
	n := newRomania(t, nil)
	require.NoError(t, n.AddProductionLine(shared.EquipmentGun, 2, 10))

	var report DayReport
	for day := 0; day < 5; day++ {
		report = n.SimulateDay()
		assert.Equal(t, int64(200), report.Produced[shared.EquipmentGun])
	}

	assert.Equal(t, int64(1000), n.EquipmentCount(shared.EquipmentGun))
	assert.Equal(t, int64(1000), report.Stats.Equipment[shared.EquipmentGun])
}

func TestSimulateDay_OilBecomesFuel(t *testing.T) {
	n := newRomania(t, nil)

	report := n.SimulateDay()

	assert.Equal(t, 30, report.FuelGained)
	assert.Equal(t, 30, n.ResourceStockpile().Fuel())
	assert.Equal(t, 100, n.ResourceStockpile().Manpower())
}

func TestSimulateDay_MilFactoryCompletesOnDayEight(t *testing.T) {
	// Arrange
	n := newSingleProvince(t, province.Spec{Name: "Forge", CivFactories: 3})
	require.NoError(t, n.AddConstruction(shared.BuildingMil, 0, 1))

	// Act & Assert
	for day := 1; day <= 7; day++ {
		report := n.SimulateDay()
		assert.Nil(t, report.CompletedConstruction, "day %d", day)
		assert.Equal(t, 0, n.TotalMil(), "day %d", day)
	}

	report := n.SimulateDay()
	require.NotNil(t, report.CompletedConstruction)
	assert.True(t, report.CompletedConstruction.Applied)
	assert.Equal(t, "Forge", report.CompletedConstruction.ProvinceName)
	assert.Equal(t, 1, n.TotalMil())
	assert.Empty(t, n.ConstructionQueue())
}

func TestSimulateDay_OnlyFrontTaskAdvances(t *testing.T) {
	n := newSingleProvince(t, province.Spec{Name: "Forge", CivFactories: 2})
	require.NoError(t, n.AddConstruction(shared.BuildingCiv, 0, 2))

	n.SimulateDay()

	queue := n.ConstructionQueue()
	require.Len(t, queue, 2)
	assert.Equal(t, 90.0, queue[0].RemainingBP())
	assert.Equal(t, 100.0, queue[1].RemainingBP())
}

func TestSimulateDay_SkipsTaskForMissingProvince(t *testing.T) {
	// Arrange
	n := newSingleProvince(t, province.Spec{Name: "Forge", CivFactories: 20})
	n.queue.Enqueue(shared.BuildingCiv, 7, 1)
	before := n.Provinces()

	// Act
	var report DayReport
	require.NotPanics(t, func() { report = n.SimulateDay() })

	// Assert
	require.NotNil(t, report.CompletedConstruction)
	assert.False(t, report.CompletedConstruction.Applied)
	assert.Equal(t, 7, report.CompletedConstruction.ProvinceIndex)
	assert.Empty(t, report.CompletedConstruction.ProvinceName)
	assert.Empty(t, n.ConstructionQueue())
	assert.Equal(t, before, n.Provinces())
	assert.Equal(t, 20, n.TotalCiv())
}

func TestSimulateDay_FocusEffectUsesInjectedRandom(t *testing.T) {
	random := shared.NewMockRandom(2)
	n := newRomania(t, random)
	require.True(t, n.StartFocus(2)) // Infrastructure Effort, 25 days

	var completed *CompletedFocus
	for day := 1; day <= 25; day++ {
		report := n.SimulateDay()
		if day < 25 {
			assert.Nil(t, report.CompletedFocus, "day %d", day)
		}
		completed = report.CompletedFocus
	}

	require.NotNil(t, completed)
	assert.Equal(t, "Infrastructure Effort", completed.Name)
	assert.Equal(t, focus.EffectAddInfra, completed.Effect)
	assert.Equal(t, 2, completed.ProvinceIndex)
	assert.Equal(t, "Transylvania", completed.ProvinceName)
	assert.Equal(t, 8, n.Provinces()[2].Infrastructure())
	assert.Equal(t, 1, random.Calls())
	assert.True(t, n.FocusTree().IsCompleted(2))
	assert.False(t, n.StartFocus(2))
}

func TestSimulateDay_FocusEffectDroppedWithoutProvinces(t *testing.T) {
	quick, err := focus.NewFocus("Paper Plan", 1, focus.EffectAddCiv)
	require.NoError(t, err)
	random := shared.NewMockRandom(0)
	n, err := New(Config{Name: "Nowhere", Focuses: []*focus.Focus{quick}, Random: random})
	require.NoError(t, err)
	require.True(t, n.StartFocus(0))

	report := n.SimulateDay()

	require.NotNil(t, report.CompletedFocus)
	assert.Equal(t, -1, report.CompletedFocus.ProvinceIndex)
	assert.Equal(t, 0, random.Calls())
}

func TestSnapshotsDoNotLeakMutation(t *testing.T) {
	n := newRomania(t, nil)

	provinces := n.Provinces()
	provinces[0].AddCiv(10)
	tree := n.FocusTree()
	require.True(t, tree.StartFocus(0))

	assert.Equal(t, 7, n.TotalCiv())
	assert.False(t, n.FocusTree().IsActive())
}

func TestNation_String(t *testing.T) {
	n := newRomania(t, nil)

	s := n.String()

	assert.Contains(t, s, "Nation: Romania (Democratic)")
	assert.Contains(t, s, "Wallachia")
	assert.Contains(t, s, "Focus: None")
}
