package construction

import "github.com/andrescamacho/nationsim-go/internal/domain/shared"

// CivOutputPerDay is how many build points one civilian factory produces per day
const CivOutputPerDay = 5.0

// DefaultCostBP is the build cost of any building type without its own entry
const DefaultCostBP = 200.0

var costsBP = map[shared.BuildingType]float64{
	shared.BuildingCiv:      100,
	shared.BuildingMil:      120,
	shared.BuildingInfra:    80,
	shared.BuildingDockyard: 150,
}

// Per-province maxima counted against built plus queued units
var ceilings = map[shared.BuildingType]int{
	shared.BuildingCiv:       6,
	shared.BuildingMil:       6,
	shared.BuildingDockyard:  6,
	shared.BuildingInfra:     5,
	shared.BuildingAirfield:  10,
	shared.BuildingArmyRF:    1,
	shared.BuildingNavalRF:   1,
	shared.BuildingAerialRF:  1,
	shared.BuildingNuclearRF: 1,
}

// CostBP returns the build-point cost of one unit of b
func CostBP(b shared.BuildingType) float64 {
	if cost, ok := costsBP[b]; ok {
		return cost
	}
	return DefaultCostBP
}

// Ceiling returns the per-province maximum for b
func Ceiling(b shared.BuildingType) int {
	return ceilings[b]
}
