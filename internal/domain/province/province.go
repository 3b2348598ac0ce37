package province

import (
	"fmt"

	"github.com/andrescamacho/nationsim-go/internal/domain/shared"
	"github.com/andrescamacho/nationsim-go/internal/domain/stockpile"
	"github.com/andrescamacho/nationsim-go/pkg/utils"
)

const (
	// MaxInfrastructure is the hard upper bound of a province's infrastructure level
	MaxInfrastructure = 10
)

// Spec is the plain configuration a province is created from.
// Out-of-range values are clamped rather than rejected.
type Spec struct {
	Name           string
	Population     int
	CivFactories   int
	MilFactories   int
	Infrastructure int
	Dockyards      int
	Airfields      int

	ArmyResearchFacility    bool
	NavalResearchFacility   bool
	AerialResearchFacility  bool
	NuclearResearchFacility bool

	Steel    int
	Tungsten int
	Aluminum int
	Chromium int
	Oil      int
}

// Province owns raw resource yields and building counts. Its resource effects
// are derived from those counts and rebuilt on every change.
type Province struct {
	name           string
	population     int
	civFactories   int
	milFactories   int
	infrastructure int
	dockyards      int
	airfields      int

	armyRF    int
	navalRF   int
	aerialRF  int
	nuclearRF int

	steel    int
	tungsten int
	aluminum int
	chromium int
	oil      int

	effects []ResourceEffect
}

func NewProvince(spec Spec) *Province {
	p := &Province{
		name:           spec.Name,
		population:     utils.ClampMin(spec.Population, 0),
		civFactories:   utils.ClampMin(spec.CivFactories, 0),
		milFactories:   utils.ClampMin(spec.MilFactories, 0),
		infrastructure: utils.Clamp(spec.Infrastructure, 0, MaxInfrastructure),
		dockyards:      utils.ClampMin(spec.Dockyards, 0),
		airfields:      utils.ClampMin(spec.Airfields, 0),
		armyRF:         flag(spec.ArmyResearchFacility),
		navalRF:        flag(spec.NavalResearchFacility),
		aerialRF:       flag(spec.AerialResearchFacility),
		nuclearRF:      flag(spec.NuclearResearchFacility),
		steel:          utils.ClampMin(spec.Steel, 0),
		tungsten:       utils.ClampMin(spec.Tungsten, 0),
		aluminum:       utils.ClampMin(spec.Aluminum, 0),
		chromium:       utils.ClampMin(spec.Chromium, 0),
		oil:            utils.ClampMin(spec.Oil, 0),
	}
	p.rebuildEffects()
	return p
}

// Getters

func (p *Province) Name() string        { return p.name }
func (p *Province) Population() int     { return p.population }
func (p *Province) Civ() int            { return p.civFactories }
func (p *Province) Mil() int            { return p.milFactories }
func (p *Province) Infrastructure() int { return p.infrastructure }
func (p *Province) Dockyards() int      { return p.dockyards }
func (p *Province) Airfields() int      { return p.airfields }
func (p *Province) Steel() int          { return p.steel }
func (p *Province) Tungsten() int       { return p.tungsten }
func (p *Province) Aluminum() int       { return p.aluminum }
func (p *Province) Chromium() int       { return p.chromium }
func (p *Province) Oil() int            { return p.oil }

func (p *Province) HasArmyResearchFacility() bool    { return p.armyRF == 1 }
func (p *Province) HasNavalResearchFacility() bool   { return p.navalRF == 1 }
func (p *Province) HasAerialResearchFacility() bool  { return p.aerialRF == 1 }
func (p *Province) HasNuclearResearchFacility() bool { return p.nuclearRF == 1 }

// Effects returns a copy of the current resource effect records
func (p *Province) Effects() []ResourceEffect {
	out := make([]ResourceEffect, len(p.effects))
	copy(out, p.effects)
	return out
}

// Mutators

func (p *Province) AddCiv(x int) {
	p.civFactories = utils.ClampMin(p.civFactories+x, 0)
	p.rebuildEffects()
}

func (p *Province) AddMil(x int) {
	p.milFactories = utils.ClampMin(p.milFactories+x, 0)
	p.rebuildEffects()
}

func (p *Province) AddInfra(x int) {
	p.infrastructure = utils.Clamp(p.infrastructure+x, 0, MaxInfrastructure)
	p.rebuildEffects()
}

func (p *Province) AddDockyard(x int) {
	p.dockyards = utils.ClampMin(p.dockyards+x, 0)
	p.rebuildEffects()
}

func (p *Province) AddAirfield(x int) {
	p.airfields = utils.ClampMin(p.airfields+x, 0)
	p.rebuildEffects()
}

// AddBuilding applies x units of b to the matching counter.
// Research facilities are flags, so their counters stay within [0,1].
func (p *Province) AddBuilding(b shared.BuildingType, x int) {
	switch b {
	case shared.BuildingCiv:
		p.AddCiv(x)
		return
	case shared.BuildingMil:
		p.AddMil(x)
		return
	case shared.BuildingInfra:
		p.AddInfra(x)
		return
	case shared.BuildingDockyard:
		p.AddDockyard(x)
		return
	case shared.BuildingAirfield:
		p.AddAirfield(x)
		return
	case shared.BuildingArmyRF:
		p.armyRF = utils.Clamp(p.armyRF+x, 0, 1)
	case shared.BuildingNavalRF:
		p.navalRF = utils.Clamp(p.navalRF+x, 0, 1)
	case shared.BuildingAerialRF:
		p.aerialRF = utils.Clamp(p.aerialRF+x, 0, 1)
	case shared.BuildingNuclearRF:
		p.nuclearRF = utils.Clamp(p.nuclearRF+x, 0, 1)
	default:
		return
	}
	p.rebuildEffects()
}

// BuildingCount returns how many units of b the province already has
func (p *Province) BuildingCount(b shared.BuildingType) int {
	switch b {
	case shared.BuildingCiv:
		return p.civFactories
	case shared.BuildingMil:
		return p.milFactories
	case shared.BuildingInfra:
		return p.infrastructure
	case shared.BuildingDockyard:
		return p.dockyards
	case shared.BuildingAirfield:
		return p.airfields
	case shared.BuildingArmyRF:
		return p.armyRF
	case shared.BuildingNavalRF:
		return p.navalRF
	case shared.BuildingAerialRF:
		return p.aerialRF
	case shared.BuildingNuclearRF:
		return p.nuclearRF
	}
	return 0
}

// ApplyDailyResourceEffects runs every effect record against the stockpile.
// Only daily-output effects change it.
func (p *Province) ApplyDailyResourceEffects(s *stockpile.ResourceStockpile) {
	for _, e := range p.effects {
		Apply(e, s)
	}
}

// ConstructionSlots is the sum of all building-slot effects except infrastructure
func (p *Province) ConstructionSlots() int {
	total := 0
	for _, e := range p.effects {
		if e.Kind == EffectBuildingSlot && e.Building != shared.BuildingInfra {
			total += e.Amount
		}
	}
	return total
}

func (p *Province) String() string {
	return fmt.Sprintf(
		"%s (Pop: %d) Civ: %d, Mil: %d, Infra: %d, Dockyards: %d, Airfields: %d | Steel: %d, Tungsten: %d, Aluminum: %d, Chromium: %d, Oil: %d",
		p.name, p.population, p.civFactories, p.milFactories, p.infrastructure, p.dockyards, p.airfields,
		p.steel, p.tungsten, p.aluminum, p.chromium, p.oil,
	)
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
