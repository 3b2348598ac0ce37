package nation

import (
	"fmt"

	"github.com/andrescamacho/nationsim-go/internal/domain/construction"
	"github.com/andrescamacho/nationsim-go/internal/domain/production"
	"github.com/andrescamacho/nationsim-go/internal/domain/shared"
)

// AddConstruction queues count units of buildingType in the province at provinceIndex.
// Validation is completed before anything is enqueued; count == 0 is a no-op.
func (n *Nation) AddConstruction(buildingType shared.BuildingType, provinceIndex, count int) error {
	if provinceIndex < 0 || provinceIndex >= len(n.provinces) {
		return shared.NewInvalidProvinceIndexError(provinceIndex, len(n.provinces))
	}
	if count < 0 {
		return shared.NewInvalidConstructionCountError(count)
	}
	if count == 0 {
		return nil
	}
	if !buildingType.IsValid() {
		return shared.NewValidationError("building", fmt.Sprintf("unknown building type %q", buildingType))
	}

	built := n.provinces[provinceIndex].BuildingCount(buildingType)
	queued := n.queue.Queued(buildingType, provinceIndex)
	ceiling := construction.Ceiling(buildingType)
	if built+queued+count > ceiling {
		return shared.NewCapacityExceededError(buildingType, provinceIndex, built, queued, count, ceiling)
	}

	n.queue.Enqueue(buildingType, provinceIndex, count)
	return nil
}

// AddProductionLine appends a line. The factories assigned across all lines
// may never exceed the nation's military factories.
func (n *Nation) AddProductionLine(equipmentType shared.EquipmentType, factories int, unitCost float64) error {
	if factories < 0 {
		return shared.NewValidationError("factories", "cannot be negative")
	}

	line, err := production.NewProductionLine(equipmentType, factories, unitCost)
	if err != nil {
		return err
	}

	committed := n.UsedMilFactories()
	if committed+factories > n.TotalMil() {
		return shared.NewFactoryOvercommitError(factories, committed, n.TotalMil())
	}

	n.lines = append(n.lines, line)
	return nil
}

// SetLineFactories reassigns the factories of an existing line under the same
// capacity rule as AddProductionLine
func (n *Nation) SetLineFactories(lineIndex, factories int) error {
	if lineIndex < 0 || lineIndex >= len(n.lines) {
		return shared.NewInvalidProductionLineIndexError(lineIndex, len(n.lines))
	}
	if factories < 0 {
		return shared.NewValidationError("factories", "cannot be negative")
	}

	line := n.lines[lineIndex]
	committed := n.UsedMilFactories() - line.Factories()
	if committed+factories > n.TotalMil() {
		return shared.NewFactoryOvercommitError(factories, committed, n.TotalMil())
	}

	line.SetFactories(factories)
	return nil
}

// StartFocus reports whether the focus at index was started
func (n *Nation) StartFocus(index int) bool {
	return n.focusTree.StartFocus(index)
}

// BeginFocus starts the focus at index, returning why it could not be started
func (n *Nation) BeginFocus(index int) error {
	return n.focusTree.Start(index)
}
