package stockpile

import (
	"fmt"

	"github.com/andrescamacho/nationsim-go/pkg/utils"
)

// ResourceStockpile holds a nation's fuel and manpower.
// Both quantities are clamped at zero on construction and after every change.
type ResourceStockpile struct {
	fuel     int
	manpower int
}

func NewResourceStockpile(fuel, manpower int) *ResourceStockpile {
	return &ResourceStockpile{
		fuel:     utils.ClampMin(fuel, 0),
		manpower: utils.ClampMin(manpower, 0),
	}
}

func (s ResourceStockpile) Fuel() int     { return s.fuel }
func (s ResourceStockpile) Manpower() int { return s.manpower }

// Add applies both deltas, then clamps each field to zero
func (s *ResourceStockpile) Add(dFuel, dManpower int) {
	s.fuel = utils.ClampMin(s.fuel+dFuel, 0)
	s.manpower = utils.ClampMin(s.manpower+dManpower, 0)
}

func (s ResourceStockpile) String() string {
	return fmt.Sprintf("Fuel: %d, Manpower: %d", s.fuel, s.manpower)
}
