package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/nationsim-go/internal/application/mediator"
	"github.com/andrescamacho/nationsim-go/internal/application/session"
	"github.com/andrescamacho/nationsim-go/internal/domain/world"
)

// GetNationQuery fetches one nation by name or index. An empty Nation means the selected one.
type GetNationQuery struct {
	Nation string
}

type GetNationHandler struct {
	session *session.Session
}

func NewGetNationHandler(s *session.Session) *GetNationHandler {
	return &GetNationHandler{session: s}
}

func (h *GetNationHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetNationQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetNationQuery")
	}

	var view *NationView
	err := h.session.Read(func(w *world.World) error {
		n, err := h.session.Resolve(w, query.Nation)
		if err != nil {
			return err
		}
		index := 0
		for i, candidate := range w.Nations() {
			if candidate == n {
				index = i
			}
		}
		view = newNationView(index, w.Day(), n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// ListNationsQuery fetches every nation in world order
type ListNationsQuery struct{}

type ListNationsResponse struct {
	Day     int
	Nations []*NationView
}

type ListNationsHandler struct {
	session *session.Session
}

func NewListNationsHandler(s *session.Session) *ListNationsHandler {
	return &ListNationsHandler{session: s}
}

func (h *ListNationsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*ListNationsQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListNationsQuery")
	}

	resp := &ListNationsResponse{}
	err := h.session.Read(func(w *world.World) error {
		resp.Day = w.Day()
		for i, n := range w.Nations() {
			resp.Nations = append(resp.Nations, newNationView(i, w.Day(), n))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
