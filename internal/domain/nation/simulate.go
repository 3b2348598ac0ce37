package nation

import (
	"github.com/andrescamacho/nationsim-go/internal/domain/construction"
	"github.com/andrescamacho/nationsim-go/internal/domain/focus"
	"github.com/andrescamacho/nationsim-go/internal/domain/shared"
)

// CompletedBuilding describes a construction task that finished today
type CompletedBuilding struct {
	Building      shared.BuildingType
	ProvinceIndex int
	ProvinceName  string
	// Applied is false when the task pointed at a province that does not exist
	Applied bool
}

// CompletedFocus describes a focus that finished today
type CompletedFocus struct {
	Name   string
	Effect focus.Effect
	// ProvinceIndex is -1 when the nation has no province to receive the bonus
	ProvinceIndex int
	ProvinceName  string
}

// Stats are the nation's aggregates after a day has been applied
type Stats struct {
	Fuel             int
	Manpower         int
	CivFactories     int
	MilFactories     int
	UsedMilFactories int
	QueueDepth       int
	ActiveFocus      string
	Equipment        map[shared.EquipmentType]int64
}

// DayReport records what one SimulateDay did
type DayReport struct {
	Nation                string
	FuelGained            int
	Produced              map[shared.EquipmentType]int64
	BuildPoints           float64
	CompletedConstruction *CompletedBuilding
	CompletedFocus        *CompletedFocus
	Stats                 Stats
}

// SimulateDay advances the nation by one day. The steps always run in this order:
// resource effects, equipment production, construction, focus.
func (n *Nation) SimulateDay() DayReport {
	report := DayReport{
		Nation:   n.name,
		Produced: make(map[shared.EquipmentType]int64, len(shared.AllEquipmentTypes)),
	}

	fuelBefore := n.resources.Fuel()
	for _, p := range n.provinces {
		p.ApplyDailyResourceEffects(n.resources)
	}
	report.FuelGained = n.resources.Fuel() - fuelBefore

	for _, line := range n.lines {
		output := line.DailyOutput()
		n.equipment.Add(line.EquipmentType(), output)
		report.Produced[line.EquipmentType()] += output
	}

	report.BuildPoints = float64(n.TotalCiv()) * construction.CivOutputPerDay
	if done := n.queue.Advance(report.BuildPoints); done != nil {
		report.CompletedConstruction = n.applyCompletedTask(done)
	}

	activeName := n.focusTree.ActiveFocusName()
	if effect, ok := n.focusTree.Tick(); ok {
		report.CompletedFocus = n.applyFocusEffect(activeName, effect)
	}

	report.Stats = n.stats()
	return report
}

func (n *Nation) applyCompletedTask(task *construction.Task) *CompletedBuilding {
	completed := &CompletedBuilding{
		Building:      task.BuildingType(),
		ProvinceIndex: task.ProvinceIndex(),
	}
	idx := task.ProvinceIndex()
	if idx < 0 || idx >= len(n.provinces) {
		return completed
	}

	p := n.provinces[idx]
	p.AddBuilding(task.BuildingType(), 1)
	completed.ProvinceName = p.Name()
	completed.Applied = true
	return completed
}

func (n *Nation) applyFocusEffect(name string, effect focus.Effect) *CompletedFocus {
	completed := &CompletedFocus{Name: name, Effect: effect, ProvinceIndex: -1}
	if len(n.provinces) == 0 {
		return completed
	}
	building, ok := effect.BuildingType()
	if !ok {
		return completed
	}

	idx := n.random.IntN(len(n.provinces))
	p := n.provinces[idx]
	p.AddBuilding(building, 1)
	completed.ProvinceIndex = idx
	completed.ProvinceName = p.Name()
	return completed
}

func (n *Nation) stats() Stats {
	equipment := make(map[shared.EquipmentType]int64, len(shared.AllEquipmentTypes))
	for _, t := range shared.AllEquipmentTypes {
		equipment[t] = n.equipment.Count(t)
	}
	return Stats{
		Fuel:             n.resources.Fuel(),
		Manpower:         n.resources.Manpower(),
		CivFactories:     n.TotalCiv(),
		MilFactories:     n.TotalMil(),
		UsedMilFactories: n.UsedMilFactories(),
		QueueDepth:       n.queue.Len(),
		ActiveFocus:      n.focusTree.ActiveFocusName(),
		Equipment:        equipment,
	}
}
