package province

import (
	"github.com/andrescamacho/nationsim-go/internal/domain/shared"
	"github.com/andrescamacho/nationsim-go/internal/domain/stockpile"
)

// FuelPerOilUnit is how much fuel one unit of oil yield produces per day
const FuelPerOilUnit = 5

// EffectKind tags a ResourceEffect
type EffectKind int

const (
	EffectMaterial EffectKind = iota
	EffectDailyOutput
	EffectBuildingSlot
)

func (k EffectKind) String() string {
	switch k {
	case EffectMaterial:
		return "MATERIAL"
	case EffectDailyOutput:
		return "DAILY_OUTPUT"
	case EffectBuildingSlot:
		return "BUILDING_SLOT"
	}
	return "UNKNOWN"
}

// ResourceEffect is one derived record of what a province yields or houses.
// Building is set only for EffectBuildingSlot, FuelPerUnit only for EffectDailyOutput.
type ResourceEffect struct {
	Kind        EffectKind
	Name        string
	Amount      int
	FuelPerUnit int
	Building    shared.BuildingType
}

// Category is the display grouping of the effect
func (e ResourceEffect) Category() string {
	switch e.Kind {
	case EffectMaterial:
		return "Raw Material"
	case EffectDailyOutput:
		return "Daily Output"
	case EffectBuildingSlot:
		return "Building"
	}
	return "Unknown"
}

// IsStrategic reports whether the effect counts toward strategic resources
func (e ResourceEffect) IsStrategic() bool {
	return e.Kind == EffectMaterial || e.Kind == EffectBuildingSlot
}

// Apply evaluates one effect against the stockpile.
// Material and building-slot effects are inert.
func Apply(e ResourceEffect, s *stockpile.ResourceStockpile) {
	switch e.Kind {
	case EffectDailyOutput:
		s.Add(e.Amount*e.FuelPerUnit, 0)
	case EffectMaterial, EffectBuildingSlot:
	}
}

func (p *Province) rebuildEffects() {
	effects := make([]ResourceEffect, 0, 14)

	materials := []struct {
		name   string
		amount int
	}{
		{"Steel", p.steel},
		{"Aluminum", p.aluminum},
		{"Tungsten", p.tungsten},
		{"Chromium", p.chromium},
	}
	for _, m := range materials {
		if m.amount > 0 {
			effects = append(effects, ResourceEffect{Kind: EffectMaterial, Name: m.name, Amount: m.amount})
		}
	}

	if p.oil > 0 {
		effects = append(effects, ResourceEffect{
			Kind:        EffectDailyOutput,
			Name:        "Oil",
			Amount:      p.oil,
			FuelPerUnit: FuelPerOilUnit,
		})
	}

	for _, b := range shared.AllBuildingTypes {
		if n := p.BuildingCount(b); n > 0 {
			effects = append(effects, ResourceEffect{
				Kind:     EffectBuildingSlot,
				Name:     b.String(),
				Amount:   n,
				Building: b,
			})
		}
	}

	p.effects = effects
}
