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

// QueueConstructionCommand queues Count buildings in one province
type QueueConstructionCommand struct {
	Nation        string
	Building      string
	ProvinceIndex int
	Count         int
}

type QueueConstructionResponse struct {
	Nation     string
	Building   shared.BuildingType
	Province   string
	Queued     int
	QueueDepth int
}

type QueueConstructionHandler struct {
	session *session.Session
}

func NewQueueConstructionHandler(s *session.Session) *QueueConstructionHandler {
	return &QueueConstructionHandler{session: s}
}

func (h *QueueConstructionHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*QueueConstructionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *QueueConstructionCommand")
	}

	building, err := shared.ParseBuildingType(cmd.Building)
	if err != nil {
		return nil, err
	}

	var resp *QueueConstructionResponse
	err = h.session.Write(func(w *world.World) error {
		n, err := h.session.Resolve(w, cmd.Nation)
		if err != nil {
			return err
		}
		if err := n.AddConstruction(building, cmd.ProvinceIndex, cmd.Count); err != nil {
			return err
		}

		resp = &QueueConstructionResponse{
			Nation:     n.Name(),
			Building:   building,
			Province:   n.Provinces()[cmd.ProvinceIndex].Name(),
			Queued:     cmd.Count,
			QueueDepth: len(n.ConstructionQueue()),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	common.LoggerFromContext(ctx).Info("construction queued",
		"nation", resp.Nation, "building", resp.Building, "province", resp.Province, "count", resp.Queued)
	return resp, nil
}
