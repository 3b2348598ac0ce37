package construction

import (
	"fmt"

	"github.com/andrescamacho/nationsim-go/internal/domain/shared"
	"github.com/andrescamacho/nationsim-go/pkg/utils"
)

// Task is one queued building request. 0 <= remainingBP <= totalCostBP always holds.
type Task struct {
	buildingType  shared.BuildingType
	provinceIndex int
	remainingBP   float64
	totalCostBP   float64
}

func NewTask(buildingType shared.BuildingType, provinceIndex int) *Task {
	cost := CostBP(buildingType)
	return &Task{
		buildingType:  buildingType,
		provinceIndex: provinceIndex,
		remainingBP:   cost,
		totalCostBP:   cost,
	}
}

func (t *Task) BuildingType() shared.BuildingType { return t.buildingType }
func (t *Task) ProvinceIndex() int                { return t.provinceIndex }
func (t *Task) RemainingBP() float64              { return t.remainingBP }
func (t *Task) TotalCostBP() float64              { return t.totalCostBP }
func (t *Task) IsComplete() bool                  { return t.remainingBP == 0 }

// Progress spends dailyBP on the task and reports whether it is now complete
func (t *Task) Progress(dailyBP float64) bool {
	t.remainingBP = utils.Clamp(t.remainingBP-dailyBP, 0, t.totalCostBP)
	return t.remainingBP == 0
}

// Percent returns completion in [0,100]
func (t *Task) Percent() float64 {
	if t.totalCostBP == 0 {
		return 100
	}
	return (t.totalCostBP - t.remainingBP) / t.totalCostBP * 100
}

func (t *Task) String() string {
	return fmt.Sprintf("%s in province %d: %.0f/%.0f BP remaining", t.buildingType, t.provinceIndex, t.remainingBP, t.totalCostBP)
}
