package queries

import (
	"github.com/andrescamacho/nationsim-go/internal/domain/construction"
	"github.com/andrescamacho/nationsim-go/internal/domain/focus"
	"github.com/andrescamacho/nationsim-go/internal/domain/nation"
	"github.com/andrescamacho/nationsim-go/internal/domain/shared"
)

// NationView is a read-only snapshot of a nation, safe to use outside the session lock
type NationView struct {
	Index            int
	Name             string
	Ideology         string
	Day              int
	Fuel             int
	Manpower         int
	CivFactories     int
	MilFactories     int
	UsedMilFactories int
	FreeMilFactories int
	Oil              int
	Steel            int
	Tungsten         int
	Aluminum         int
	Chromium         int
	Equipment        map[shared.EquipmentType]int64
	Provinces        []ProvinceView
	Lines            []LineView
	Queue            []TaskView
	Focuses          []FocusView
	ActiveFocus      string
	FocusDaysLeft    int
}

type ProvinceView struct {
	Name           string
	Population     int
	CivFactories   int
	MilFactories   int
	Infrastructure int
	Dockyards      int
	Airfields      int
	Oil            int
	Buildings      map[shared.BuildingType]int
}

type LineView struct {
	Equipment   shared.EquipmentType
	Factories   int
	UnitCost    float64
	DailyOutput int64
}

type TaskView struct {
	Building      shared.BuildingType
	ProvinceIndex int
	RemainingBP   float64
	Percent       float64
}

type FocusView struct {
	Name   string
	Days   int
	Effect focus.Effect
	Status focus.Status
}

func newNationView(index, day int, n *nation.Nation) *NationView {
	res := n.ResourceStockpile()
	view := &NationView{
		Index:            index,
		Name:             n.Name(),
		Ideology:         n.Ideology(),
		Day:              day,
		Fuel:             res.Fuel(),
		Manpower:         res.Manpower(),
		CivFactories:     n.TotalCiv(),
		MilFactories:     n.TotalMil(),
		UsedMilFactories: n.UsedMilFactories(),
		FreeMilFactories: n.FreeMilFactories(),
		Oil:              n.TotalOil(),
		Steel:            n.TotalSteel(),
		Tungsten:         n.TotalTungsten(),
		Aluminum:         n.TotalAluminum(),
		Chromium:         n.TotalChromium(),
		Equipment:        make(map[shared.EquipmentType]int64, len(shared.AllEquipmentTypes)),
	}
	for _, t := range shared.AllEquipmentTypes {
		view.Equipment[t] = n.EquipmentCount(t)
	}

	for _, p := range n.Provinces() {
		pv := ProvinceView{
			Name:           p.Name(),
			Population:     p.Population(),
			CivFactories:   p.Civ(),
			MilFactories:   p.Mil(),
			Infrastructure: p.Infrastructure(),
			Dockyards:      p.Dockyards(),
			Airfields:      p.Airfields(),
			Oil:            p.Oil(),
			Buildings:      make(map[shared.BuildingType]int, len(shared.AllBuildingTypes)),
		}
		for _, b := range shared.AllBuildingTypes {
			pv.Buildings[b] = p.BuildingCount(b)
		}
		view.Provinces = append(view.Provinces, pv)
	}

	for _, l := range n.ProductionLines() {
		view.Lines = append(view.Lines, LineView{
			Equipment:   l.EquipmentType(),
			Factories:   l.Factories(),
			UnitCost:    l.UnitCost(),
			DailyOutput: l.DailyOutput(),
		})
	}

	for _, task := range n.ConstructionQueue() {
		view.Queue = append(view.Queue, newTaskView(task))
	}

	tree := n.FocusTree()
	for i := 0; i < tree.Len(); i++ {
		f := tree.Focus(i)
		view.Focuses = append(view.Focuses, FocusView{
			Name:   f.Name(),
			Days:   f.DaysRequired(),
			Effect: f.Effect(),
			Status: tree.Status(i),
		})
	}
	view.ActiveFocus = tree.ActiveFocusName()
	view.FocusDaysLeft = tree.RemainingDays()
	return view
}

func newTaskView(task construction.Task) TaskView {
	return TaskView{
		Building:      task.BuildingType(),
		ProvinceIndex: task.ProvinceIndex(),
		RemainingBP:   task.RemainingBP(),
		Percent:       task.Percent(),
	}
}
