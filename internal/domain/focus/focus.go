package focus

import "github.com/andrescamacho/nationsim-go/internal/domain/shared"

// Effect is the one-time bonus a completed focus grants
type Effect string

const (
	EffectNone        Effect = ""
	EffectAddCiv      Effect = "ADD_CIV"
	EffectAddMil      Effect = "ADD_MIL"
	EffectAddInfra    Effect = "ADD_INFRA"
	EffectAddDockyard Effect = "ADD_DOCKYARD"
)

// BuildingType maps the effect to the building it adds one unit of
func (e Effect) BuildingType() (shared.BuildingType, bool) {
	switch e {
	case EffectAddCiv:
		return shared.BuildingCiv, true
	case EffectAddMil:
		return shared.BuildingMil, true
	case EffectAddInfra:
		return shared.BuildingInfra, true
	case EffectAddDockyard:
		return shared.BuildingDockyard, true
	}
	return "", false
}

func (e Effect) IsValid() bool {
	_, ok := e.BuildingType()
	return ok
}

// Status is the display state of a single focus
type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
)

// Focus is one entry of the catalog
type Focus struct {
	name         string
	daysRequired int
	effect       Effect
	completed    bool
}

func NewFocus(name string, daysRequired int, effect Effect) (*Focus, error) {
	if name == "" {
		return nil, shared.NewValidationError("name", "focus name cannot be empty")
	}
	if daysRequired <= 0 {
		return nil, shared.NewValidationError("days_required", "must be positive")
	}
	if !effect.IsValid() {
		return nil, shared.NewValidationError("effect", "unknown focus effect "+string(effect))
	}
	return &Focus{name: name, daysRequired: daysRequired, effect: effect}, nil
}

func (f *Focus) Name() string      { return f.name }
func (f *Focus) DaysRequired() int { return f.daysRequired }
func (f *Focus) Effect() Effect    { return f.effect }
func (f *Focus) IsCompleted() bool { return f.completed }

// DefaultCatalog returns a fresh copy of the standard national focuses
func DefaultCatalog() []*Focus {
	return []*Focus{
		{name: "Industrial Expansion", daysRequired: 35, effect: EffectAddCiv},
		{name: "Military Buildup", daysRequired: 35, effect: EffectAddMil},
		{name: "Infrastructure Effort", daysRequired: 25, effect: EffectAddInfra},
		{name: "Dockyard Development", daysRequired: 30, effect: EffectAddDockyard},
	}
}
