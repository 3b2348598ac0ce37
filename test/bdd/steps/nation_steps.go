package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/nationsim-go/internal/domain/nation"
	"github.com/andrescamacho/nationsim-go/internal/domain/province"
	"github.com/andrescamacho/nationsim-go/internal/domain/shared"
)

type nationContext struct {
	nations map[string]*nation.Nation
	lastErr error
	reports []nation.DayReport
}

func (nc *nationContext) reset() {
	nc.nations = make(map[string]*nation.Nation)
	nc.lastErr = nil
	nc.reports = nil
}

func (nc *nationContext) nation(name string) (*nation.Nation, error) {
	n, ok := nc.nations[name]
	if !ok {
		return nil, fmt.Errorf("nation %q was not set up", name)
	}
	return n, nil
}

// Given steps

func (nc *nationContext) aNationWithProvinces(name string, table *godog.Table) error {
	var specs []province.Spec
	for _, row := range table.Rows[1:] {
		spec := province.Spec{Name: cellValue(table, row, "name")}
		fields := map[string]*int{
			"population":     &spec.Population,
			"civ":            &spec.CivFactories,
			"mil":            &spec.MilFactories,
			"infrastructure": &spec.Infrastructure,
			"dockyards":      &spec.Dockyards,
			"airfields":      &spec.Airfields,
			"steel":          &spec.Steel,
			"tungsten":       &spec.Tungsten,
			"aluminum":       &spec.Aluminum,
			"chromium":       &spec.Chromium,
			"oil":            &spec.Oil,
		}
		for column, target := range fields {
			v, err := cellInt(table, row, column)
			if err != nil {
				return err
			}
			*target = v
		}
		specs = append(specs, spec)
	}

	n, err := nation.New(nation.Config{
		Name:      name,
		Provinces: specs,
		Random:    shared.NewMockRandom(0),
	})
	if err != nil {
		return err
	}
	nc.nations[name] = n
	return nil
}

func (nc *nationContext) aProductionLine(name string, factories int, equipment string) error {
	n, err := nc.nation(name)
	if err != nil {
		return err
	}
	t, err := shared.ParseEquipmentType(equipment)
	if err != nil {
		return err
	}
	return n.AddProductionLine(t, factories, 0)
}

func (nc *nationContext) startsFocus(name string, index int) error {
	n, err := nc.nation(name)
	if err != nil {
		return err
	}
	return n.BeginFocus(index)
}

// When steps

func (nc *nationContext) queuesBuilding(name string, count int, building string, provinceIndex int) error {
	n, err := nc.nation(name)
	if err != nil {
		return err
	}
	b, err := shared.ParseBuildingType(building)
	if err != nil {
		return err
	}
	nc.lastErr = n.AddConstruction(b, provinceIndex, count)
	return nil
}

func (nc *nationContext) daysPass(days int) error {
	for i := 0; i < days; i++ {
		nc.reports = nc.reports[:0]
		for _, n := range nc.nations {
			nc.reports = append(nc.reports, n.SimulateDay())
		}
	}
	return nil
}

// Then steps

func (nc *nationContext) theQueueingSucceeds() error {
	return nc.lastErr
}

func (nc *nationContext) theQueueingFailsBecauseTheCeilingIsReached(ceiling int) error {
	var capacity *shared.CapacityExceededError
	if !errors.As(nc.lastErr, &capacity) {
		return fmt.Errorf("expected a capacity error, got %v", nc.lastErr)
	}
	if capacity.Ceiling != ceiling {
		return fmt.Errorf("expected ceiling %d, got %d", ceiling, capacity.Ceiling)
	}
	return nil
}

func (nc *nationContext) provinceHasBuildings(provinceIndex int, name string, expected int, building string) error {
	n, err := nc.nation(name)
	if err != nil {
		return err
	}
	b, err := shared.ParseBuildingType(building)
	if err != nil {
		return err
	}
	provinces := n.Provinces()
	if provinceIndex < 0 || provinceIndex >= len(provinces) {
		return fmt.Errorf("province %d does not exist", provinceIndex)
	}
	if got := provinces[provinceIndex].BuildingCount(b); got != expected {
		return fmt.Errorf("expected %d %s in province %d, got %d", expected, b, provinceIndex, got)
	}
	return nil
}

func (nc *nationContext) nationHasEquipment(name string, expected int64, equipment string) error {
	n, err := nc.nation(name)
	if err != nil {
		return err
	}
	t, err := shared.ParseEquipmentType(equipment)
	if err != nil {
		return err
	}
	if got := n.EquipmentCount(t); got != expected {
		return fmt.Errorf("expected %d %s, got %d", expected, t, got)
	}
	return nil
}

func (nc *nationContext) nationHasFuel(name string, expected int) error {
	n, err := nc.nation(name)
	if err != nil {
		return err
	}
	stock := n.ResourceStockpile()
	if got := stock.Fuel(); got != expected {
		return fmt.Errorf("expected fuel %d, got %d", expected, got)
	}
	return nil
}

func (nc *nationContext) activeFocusIs(name, expected string) error {
	n, err := nc.nation(name)
	if err != nil {
		return err
	}
	if got := n.FocusTree().ActiveFocusName(); got != expected {
		return fmt.Errorf("expected active focus %q, got %q", expected, got)
	}
	return nil
}

func (nc *nationContext) constructionQueueHasTasks(name string, expected int) error {
	n, err := nc.nation(name)
	if err != nil {
		return err
	}
	if got := len(n.ConstructionQueue()); got != expected {
		return fmt.Errorf("expected %d queued tasks, got %d", expected, got)
	}
	return nil
}

func InitializeNationScenario(ctx *godog.ScenarioContext) {
	nc := &nationContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		nc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a nation "([^"]*)" with provinces:$`, nc.aNationWithProvinces)
	ctx.Step(`^"([^"]*)" has a production line of (\d+) factories making "([^"]*)"$`, nc.aProductionLine)
	ctx.Step(`^"([^"]*)" starts focus (\d+)$`, nc.startsFocus)

	// When steps
	ctx.Step(`^"([^"]*)" queues (-?\d+) "([^"]*)" in province (-?\d+)$`, nc.queuesBuilding)
	ctx.Step(`^(\d+) days? pass(?:es)?$`, nc.daysPass)

	// Then steps
	ctx.Step(`^the queueing succeeds$`, nc.theQueueingSucceeds)
	ctx.Step(`^the queueing fails because the ceiling of (\d+) is reached$`, nc.theQueueingFailsBecauseTheCeilingIsReached)
	ctx.Step(`^province (\d+) of "([^"]*)" has (\d+) "([^"]*)"$`, nc.provinceHasBuildings)
	ctx.Step(`^"([^"]*)" has (\d+) "([^"]*)" in stock$`, nc.nationHasEquipment)
	ctx.Step(`^"([^"]*)" has (\d+) fuel$`, nc.nationHasFuel)
	ctx.Step(`^the active focus of "([^"]*)" is "([^"]*)"$`, nc.activeFocusIs)
	ctx.Step(`^the construction queue of "([^"]*)" has (\d+) tasks?$`, nc.constructionQueueHasTasks)
}
