package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/nationsim-go/internal/application/common"
	"github.com/andrescamacho/nationsim-go/internal/application/mediator"
	"github.com/andrescamacho/nationsim-go/internal/application/session"
	"github.com/andrescamacho/nationsim-go/internal/domain/world"
)

// StartFocusCommand starts a national focus. An empty Nation targets the selected nation.
type StartFocusCommand struct {
	Nation     string
	FocusIndex int
}

type StartFocusResponse struct {
	Nation string
	Focus  string
	Days   int
}

type StartFocusHandler struct {
	session *session.Session
}

func NewStartFocusHandler(s *session.Session) *StartFocusHandler {
	return &StartFocusHandler{session: s}
}

func (h *StartFocusHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*StartFocusCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *StartFocusCommand")
	}

	var resp *StartFocusResponse
	err := h.session.Write(func(w *world.World) error {
		n, err := h.session.Resolve(w, cmd.Nation)
		if err != nil {
			return err
		}
		if err := n.BeginFocus(cmd.FocusIndex); err != nil {
			return fmt.Errorf("%s cannot start focus %d: %w", n.Name(), cmd.FocusIndex, err)
		}

		tree := n.FocusTree()
		resp = &StartFocusResponse{
			Nation: n.Name(),
			Focus:  tree.ActiveFocusName(),
			Days:   tree.RemainingDays(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	common.LoggerFromContext(ctx).Info("focus started", "nation", resp.Nation, "focus", resp.Focus, "days", resp.Days)
	return resp, nil
}
