package production

import (
	"fmt"
	"math"

	"github.com/andrescamacho/nationsim-go/internal/domain/shared"
	"github.com/andrescamacho/nationsim-go/pkg/utils"
)

// OutputPerFactory is the production value one military factory contributes per day
const OutputPerFactory = 1000

var defaultUnitCosts = map[shared.EquipmentType]float64{
	shared.EquipmentGun:       10,
	shared.EquipmentArtillery: 50,
	shared.EquipmentAntiAir:   40,
	shared.EquipmentCAS:       200,
}

// DefaultUnitCost returns the unit cost used when a line is created without one
func DefaultUnitCost(t shared.EquipmentType) float64 {
	if cost, ok := defaultUnitCosts[t]; ok {
		return cost
	}
	return defaultUnitCosts[shared.EquipmentGun]
}

// ProductionLine converts assigned military factories into equipment
type ProductionLine struct {
	equipmentType shared.EquipmentType
	factories     int
	unitCost      float64
}

// NewProductionLine creates a line. A non-positive unitCost selects the
// per-type default; NaN and infinite costs are rejected. Negative factories
// are clamped to zero.
func NewProductionLine(equipmentType shared.EquipmentType, factories int, unitCost float64) (*ProductionLine, error) {
	if !equipmentType.IsValid() {
		return nil, shared.NewValidationError("equipment", fmt.Sprintf("unknown equipment type %q", equipmentType))
	}
	if math.IsNaN(unitCost) || math.IsInf(unitCost, 0) {
		return nil, shared.NewValidationError("unit_cost", fmt.Sprintf("must be finite, got %v", unitCost))
	}
	if unitCost <= 0 {
		unitCost = DefaultUnitCost(equipmentType)
	}

	return &ProductionLine{
		equipmentType: equipmentType,
		factories:     utils.ClampMin(factories, 0),
		unitCost:      unitCost,
	}, nil
}

func (l *ProductionLine) EquipmentType() shared.EquipmentType { return l.equipmentType }
func (l *ProductionLine) Factories() int                      { return l.factories }
func (l *ProductionLine) UnitCost() float64                   { return l.unitCost }

// DailyOutput is floor(factories * OutputPerFactory / unitCost), saturating
// at math.MaxInt64 for very small unit costs
func (l *ProductionLine) DailyOutput() int64 {
	output := math.Floor(float64(l.factories) * OutputPerFactory / l.unitCost)
	if output >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(output)
}

// SetFactories reassigns the factory count without any capacity check
func (l *ProductionLine) SetFactories(n int) {
	l.factories = utils.ClampMin(n, 0)
}

func (l *ProductionLine) String() string {
	return fmt.Sprintf("%s line: %d factories, %.0f per unit, %d per day",
		l.equipmentType, l.factories, l.unitCost, l.DailyOutput())
}
