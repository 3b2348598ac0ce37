package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/nationsim-go/internal/application/common"
	"github.com/andrescamacho/nationsim-go/internal/application/mediator"
	"github.com/andrescamacho/nationsim-go/internal/application/session"
	"github.com/andrescamacho/nationsim-go/internal/domain/shared"
	"github.com/andrescamacho/nationsim-go/internal/domain/world"
)

// AddProductionLineCommand opens a new equipment line. UnitCost <= 0 uses the default.
type AddProductionLineCommand struct {
	Nation    string
	Equipment string
	Factories int
	UnitCost  float64
}

// ResizeProductionLineCommand reassigns the factories of an existing line
type ResizeProductionLineCommand struct {
	Nation    string
	LineIndex int
	Factories int
}

// ProductionLineResponse describes the line after the change
type ProductionLineResponse struct {
	Nation           string
	LineIndex        int
	Equipment        shared.EquipmentType
	Factories        int
	DailyOutput      int64
	FreeMilFactories int
}

type AddProductionLineHandler struct {
	session *session.Session
}

func NewAddProductionLineHandler(s *session.Session) *AddProductionLineHandler {
	return &AddProductionLineHandler{session: s}
}

func (h *AddProductionLineHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*AddProductionLineCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *AddProductionLineCommand")
	}

	equipment, err := shared.ParseEquipmentType(cmd.Equipment)
	if err != nil {
		return nil, err
	}

	var resp *ProductionLineResponse
	err = h.session.Write(func(w *world.World) error {
		n, err := h.session.Resolve(w, cmd.Nation)
		if err != nil {
			return err
		}
		if err := n.AddProductionLine(equipment, cmd.Factories, cmd.UnitCost); err != nil {
			return err
		}

		lines := n.ProductionLines()
		idx := len(lines) - 1
		resp = &ProductionLineResponse{
			Nation:           n.Name(),
			LineIndex:        idx,
			Equipment:        equipment,
			Factories:        lines[idx].Factories(),
			DailyOutput:      lines[idx].DailyOutput(),
			FreeMilFactories: n.FreeMilFactories(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	common.LoggerFromContext(ctx).Info("production line added",
		"nation", resp.Nation, "equipment", resp.Equipment, "factories", resp.Factories)
	return resp, nil
}

type ResizeProductionLineHandler struct {
	session *session.Session
}

func NewResizeProductionLineHandler(s *session.Session) *ResizeProductionLineHandler {
	return &ResizeProductionLineHandler{session: s}
}

func (h *ResizeProductionLineHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*ResizeProductionLineCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ResizeProductionLineCommand")
	}

	var resp *ProductionLineResponse
	err := h.session.Write(func(w *world.World) error {
		n, err := h.session.Resolve(w, cmd.Nation)
		if err != nil {
			return err
		}
		if err := n.SetLineFactories(cmd.LineIndex, cmd.Factories); err != nil {
			return err
		}

		line := n.ProductionLines()[cmd.LineIndex]
		resp = &ProductionLineResponse{
			Nation:           n.Name(),
			LineIndex:        cmd.LineIndex,
			Equipment:        line.EquipmentType(),
			Factories:        line.Factories(),
			DailyOutput:      line.DailyOutput(),
			FreeMilFactories: n.FreeMilFactories(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	common.LoggerFromContext(ctx).Info("production line resized",
		"nation", resp.Nation, "line", resp.LineIndex, "factories", resp.Factories)
	return resp, nil
}
