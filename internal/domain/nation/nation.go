package nation

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/nationsim-go/internal/domain/construction"
	"github.com/andrescamacho/nationsim-go/internal/domain/focus"
	"github.com/andrescamacho/nationsim-go/internal/domain/production"
	"github.com/andrescamacho/nationsim-go/internal/domain/province"
	"github.com/andrescamacho/nationsim-go/internal/domain/shared"
	"github.com/andrescamacho/nationsim-go/internal/domain/stockpile"
)

// Config is everything needed to assemble a Nation
type Config struct {
	Name     string
	Ideology string
	Fuel     int
	Manpower int

	Provinces []province.Spec

	// Focuses overrides the default focus catalog when non-nil
	Focuses []*focus.Focus

	// Random picks the province that receives a completed focus's bonus.
	// If nil, an entropy-seeded source is used.
	Random shared.RandomSource
}

// Nation owns a complete economy: stockpiles, provinces, production lines,
// the construction queue and the focus tree. Nothing is shared between nations.
type Nation struct {
	name      string
	ideology  string
	resources *stockpile.ResourceStockpile
	equipment *stockpile.EquipmentStockpile
	provinces []*province.Province
	lines     []*production.ProductionLine
	queue     *construction.Queue
	focusTree *focus.Tree
	random    shared.RandomSource
}

func New(cfg Config) (*Nation, error) {
	if strings.TrimSpace(cfg.Name) == "" {
		return nil, shared.NewValidationError("name", "nation name cannot be empty")
	}

	random := cfg.Random
	if random == nil {
		random = shared.NewEntropyRandom()
	}

	provinces := make([]*province.Province, 0, len(cfg.Provinces))
	for _, spec := range cfg.Provinces {
		provinces = append(provinces, province.NewProvince(spec))
	}

	return &Nation{
		name:      cfg.Name,
		ideology:  cfg.Ideology,
		resources: stockpile.NewResourceStockpile(cfg.Fuel, cfg.Manpower),
		equipment: stockpile.NewEquipmentStockpile(),
		provinces: provinces,
		queue:     construction.NewQueue(),
		focusTree: focus.NewTree(cfg.Focuses),
		random:    random,
	}, nil
}

func (n *Nation) Name() string     { return n.name }
func (n *Nation) Ideology() string { return n.ideology }

// ProvinceCount returns the number of provinces
func (n *Nation) ProvinceCount() int { return len(n.provinces) }

// Provinces returns value snapshots of the provinces in index order
func (n *Nation) Provinces() []province.Province {
	out := make([]province.Province, len(n.provinces))
	for i, p := range n.provinces {
		out[i] = *p
	}
	return out
}

// ResourceStockpile returns a snapshot of fuel and manpower
func (n *Nation) ResourceStockpile() stockpile.ResourceStockpile {
	return *n.resources
}

func (n *Nation) EquipmentCount(t shared.EquipmentType) int64 {
	return n.equipment.Count(t)
}

// EquipmentStockpile returns a snapshot of every equipment counter
func (n *Nation) EquipmentStockpile() stockpile.EquipmentStockpile {
	return *n.equipment
}

// ProductionLines returns value snapshots of the lines in creation order
func (n *Nation) ProductionLines() []production.ProductionLine {
	out := make([]production.ProductionLine, len(n.lines))
	for i, l := range n.lines {
		out[i] = *l
	}
	return out
}

// ConstructionQueue returns the queued tasks front first
func (n *Nation) ConstructionQueue() []construction.Task {
	return n.queue.Snapshot()
}

// FocusTree returns a copy of the focus tree
func (n *Nation) FocusTree() *focus.Tree {
	return n.focusTree.Clone()
}

func (n *Nation) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Nation: %s (%s)\n", n.name, n.ideology)
	fmt.Fprintf(&b, "  Resources: %s\n", n.resources)
	fmt.Fprintf(&b, "  Equipment: %s\n", n.equipment)
	fmt.Fprintf(&b, "  Factories: %d civ, %d mil (%d used, %d free)\n",
		n.TotalCiv(), n.TotalMil(), n.UsedMilFactories(), n.FreeMilFactories())
	fmt.Fprintf(&b, "  Strategic: Steel %d, Tungsten %d, Aluminum %d, Chromium %d, Oil %d\n",
		n.TotalSteel(), n.TotalTungsten(), n.TotalAluminum(), n.TotalChromium(), n.TotalOil())
	fmt.Fprintf(&b, "  Focus: %s\n", n.focusTree.ActiveFocusName())
	fmt.Fprintf(&b, "  Construction queue: %d tasks\n", n.queue.Len())
	for _, p := range n.provinces {
		fmt.Fprintf(&b, "    %s\n", p)
	}
	return b.String()
}
