package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/nationsim-go/internal/application/mediator"
	"github.com/andrescamacho/nationsim-go/internal/application/session"
)

// SelectNationCommand changes the nation that commands default to
type SelectNationCommand struct {
	Nation string
}

type SelectNationResponse struct {
	Nation string
	Index  int
}

type SelectNationHandler struct {
	session *session.Session
}

func NewSelectNationHandler(s *session.Session) *SelectNationHandler {
	return &SelectNationHandler{session: s}
}

func (h *SelectNationHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*SelectNationCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SelectNationCommand")
	}
	if cmd.Nation == "" {
		return nil, fmt.Errorf("nation must be provided")
	}

	n, err := h.session.Select(cmd.Nation)
	if err != nil {
		return nil, err
	}
	return &SelectNationResponse{Nation: n.Name(), Index: h.session.SelectedIndex()}, nil
}
