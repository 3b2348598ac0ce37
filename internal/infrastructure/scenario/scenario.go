package scenario

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/andrescamacho/nationsim-go/internal/domain/focus"
	"github.com/andrescamacho/nationsim-go/internal/domain/nation"
	"github.com/andrescamacho/nationsim-go/internal/domain/province"
	"github.com/andrescamacho/nationsim-go/internal/domain/shared"
	"github.com/andrescamacho/nationsim-go/internal/domain/world"
	"github.com/andrescamacho/nationsim-go/internal/infrastructure/config"
)

//go:embed default.yaml
var defaultScenario []byte

// Scenario is the on-disk description of a starting world
type Scenario struct {
	Name    string       `yaml:"name"`
	Nations []NationSpec `yaml:"nations" validate:"required,min=1,dive"`
}

type NationSpec struct {
	Name            string             `yaml:"name" validate:"required"`
	Ideology        string             `yaml:"ideology"`
	Stockpile       StockpileSpec      `yaml:"stockpile"`
	Provinces       []ProvinceSpec     `yaml:"provinces" validate:"dive"`
	ProductionLines []LineSpec         `yaml:"production_lines,omitempty" validate:"dive"`
	Construction    []ConstructionSpec `yaml:"construction,omitempty" validate:"dive"`
	// Focuses replaces the default focus catalog when present
	Focuses []FocusSpec `yaml:"focuses,omitempty" validate:"dive"`
	// ActiveFocus is started before the first day when set
	ActiveFocus *int `yaml:"active_focus,omitempty" validate:"omitempty,min=0"`
}

type StockpileSpec struct {
	Fuel     int `yaml:"fuel" validate:"min=0"`
	Manpower int `yaml:"manpower" validate:"min=0"`
}

type ProvinceSpec struct {
	Name           string `yaml:"name" validate:"required"`
	Population     int    `yaml:"population" validate:"min=0"`
	Civ            int    `yaml:"civ" validate:"min=0"`
	Mil            int    `yaml:"mil" validate:"min=0"`
	Infrastructure int    `yaml:"infrastructure" validate:"min=0,max=10"`
	Dockyards      int    `yaml:"dockyards,omitempty" validate:"min=0"`
	Airfields      int    `yaml:"airfields,omitempty" validate:"min=0"`
	ArmyRF         bool   `yaml:"army_rf,omitempty"`
	NavalRF        bool   `yaml:"naval_rf,omitempty"`
	AerialRF       bool   `yaml:"aerial_rf,omitempty"`
	NuclearRF      bool   `yaml:"nuclear_rf,omitempty"`
	Steel          int    `yaml:"steel" validate:"min=0"`
	Tungsten       int    `yaml:"tungsten" validate:"min=0"`
	Aluminum       int    `yaml:"aluminum" validate:"min=0"`
	Chromium       int    `yaml:"chromium" validate:"min=0"`
	Oil            int    `yaml:"oil" validate:"min=0"`
}

type LineSpec struct {
	Equipment string  `yaml:"equipment" validate:"required,equipment_type"`
	Factories int     `yaml:"factories" validate:"min=0"`
	UnitCost  float64 `yaml:"unit_cost,omitempty" validate:"min=0"`
}

type ConstructionSpec struct {
	Building string `yaml:"building" validate:"required,building_type"`
	Province int    `yaml:"province" validate:"min=0"`
	Count    int    `yaml:"count" validate:"min=1"`
}

type FocusSpec struct {
	Name   string `yaml:"name" validate:"required"`
	Days   int    `yaml:"days" validate:"min=1"`
	Effect string `yaml:"effect" validate:"oneof=ADD_CIV ADD_MIL ADD_INFRA ADD_DOCKYARD"`
}

// Load reads and validates a scenario file
func Load(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	sc, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes and validates scenario YAML. Unknown keys are rejected.
func Parse(raw []byte) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("invalid scenario yaml: %w", err)
	}
	if err := config.NewValidator().Validate(&sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Default returns the built-in two-nation scenario
func Default() *Scenario {
	sc, err := Parse(defaultScenario)
	if err != nil {
		panic(fmt.Sprintf("embedded scenario is invalid: %v", err))
	}
	return sc
}

// LoadOrDefault loads path, or the built-in scenario when path is empty
func LoadOrDefault(path string) (*Scenario, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Encode writes the scenario as YAML
func (s *Scenario) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

// Build assembles the world. Each nation gets its own random source; a zero
// seed draws from the OS, any other seed makes focus targeting reproducible.
func (s *Scenario) Build(seed uint64) (*world.World, error) {
	nations := make([]*nation.Nation, 0, len(s.Nations))
	for i, spec := range s.Nations {
		var random shared.RandomSource
		if seed == 0 {
			random = shared.NewEntropyRandom()
		} else {
			random = shared.NewSeededRandom(seed + uint64(i))
		}

		n, err := spec.build(random)
		if err != nil {
			return nil, fmt.Errorf("nation %q: %w", spec.Name, err)
		}
		nations = append(nations, n)
	}
	return world.NewWorld(nations...)
}

func (spec NationSpec) build(random shared.RandomSource) (*nation.Nation, error) {
	var focuses []*focus.Focus
	for _, fs := range spec.Focuses {
		f, err := focus.NewFocus(fs.Name, fs.Days, focus.Effect(fs.Effect))
		if err != nil {
			return nil, err
		}
		focuses = append(focuses, f)
	}

	provinces := make([]province.Spec, 0, len(spec.Provinces))
	for _, p := range spec.Provinces {
		provinces = append(provinces, p.toDomain())
	}

	n, err := nation.New(nation.Config{
		Name:      spec.Name,
		Ideology:  spec.Ideology,
		Fuel:      spec.Stockpile.Fuel,
		Manpower:  spec.Stockpile.Manpower,
		Provinces: provinces,
		Focuses:   focuses,
		Random:    random,
	})
	if err != nil {
		return nil, err
	}

	for _, line := range spec.ProductionLines {
		equipment, err := shared.ParseEquipmentType(line.Equipment)
		if err != nil {
			return nil, err
		}
		if err := n.AddProductionLine(equipment, line.Factories, line.UnitCost); err != nil {
			return nil, err
		}
	}

	for _, c := range spec.Construction {
		building, err := shared.ParseBuildingType(c.Building)
		if err != nil {
			return nil, err
		}
		if err := n.AddConstruction(building, c.Province, c.Count); err != nil {
			return nil, err
		}
	}

	if spec.ActiveFocus != nil {
		if err := n.BeginFocus(*spec.ActiveFocus); err != nil {
			return nil, err
		}
	}

	return n, nil
}

func (p ProvinceSpec) toDomain() province.Spec {
	return province.Spec{
		Name:                    p.Name,
		Population:              p.Population,
		CivFactories:            p.Civ,
		MilFactories:            p.Mil,
		Infrastructure:          p.Infrastructure,
		Dockyards:               p.Dockyards,
		Airfields:               p.Airfields,
		ArmyResearchFacility:    p.ArmyRF,
		NavalResearchFacility:   p.NavalRF,
		AerialResearchFacility:  p.AerialRF,
		NuclearResearchFacility: p.NuclearRF,
		Steel:                   p.Steel,
		Tungsten:                p.Tungsten,
		Aluminum:                p.Aluminum,
		Chromium:                p.Chromium,
		Oil:                     p.Oil,
	}
}
