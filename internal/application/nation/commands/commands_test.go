package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/nationsim-go/internal/application/nation/commands"
	"github.com/andrescamacho/nationsim-go/internal/application/session"
	"github.com/andrescamacho/nationsim-go/internal/domain/focus"
	"github.com/andrescamacho/nationsim-go/internal/domain/nation"
	"github.com/andrescamacho/nationsim-go/internal/domain/shared"
	"github.com/andrescamacho/nationsim-go/internal/domain/world"
	"github.com/andrescamacho/nationsim-go/test/helpers"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	return session.New(helpers.NewTestWorld(t), "test")
}

func TestStartFocusHandler_StartsOnSelectedNation(t *testing.T) {
	s := newSession(t)
	handler := commands.NewStartFocusHandler(s)

	resp, err := handler.Handle(context.Background(), &commands.StartFocusCommand{FocusIndex: 0})

	require.NoError(t, err)
	started := resp.(*commands.StartFocusResponse)
	assert.Equal(t, "Romania", started.Nation)
	assert.Equal(t, "Industrial Expansion", started.Focus)
	assert.Equal(t, 35, started.Days)
}

func TestStartFocusHandler_RejectsSecondFocus(t *testing.T) {
	s := newSession(t)
	handler := commands.NewStartFocusHandler(s)
	_, err := handler.Handle(context.Background(), &commands.StartFocusCommand{Nation: "Hungary", FocusIndex: 0})
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), &commands.StartFocusCommand{Nation: "Hungary", FocusIndex: 1})

	var active *focus.ErrFocusAlreadyActive
	assert.ErrorAs(t, err, &active)
}

func TestStartFocusHandler_UnknownNation(t *testing.T) {
	handler := commands.NewStartFocusHandler(newSession(t))

	_, err := handler.Handle(context.Background(), &commands.StartFocusCommand{Nation: "Atlantis"})

	var notFound *world.ErrNationNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestQueueConstructionHandler(t *testing.T) {
	s := newSession(t)
	handler := commands.NewQueueConstructionHandler(s)

	resp, err := handler.Handle(context.Background(), &commands.QueueConstructionCommand{
		Nation:        "Romania",
		Building:      "mil",
		ProvinceIndex: 0,
		Count:         3,
	})

	require.NoError(t, err)
	queued := resp.(*commands.QueueConstructionResponse)
	assert.Equal(t, shared.BuildingMil, queued.Building)
	assert.Equal(t, "Wallachia", queued.Province)
	assert.Equal(t, 3, queued.QueueDepth)
}

func TestQueueConstructionHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		cmd    *commands.QueueConstructionCommand
		target any
	}{
		{
			name:   "unknown building",
			cmd:    &commands.QueueConstructionCommand{Building: "castle", Count: 1},
			target: new(*shared.ValidationError),
		},
		{
			name:   "bad province",
			cmd:    &commands.QueueConstructionCommand{Building: "CIV", ProvinceIndex: 9, Count: 1},
			target: new(*shared.InvalidProvinceIndexError),
		},
		{
			name:   "over ceiling",
			cmd:    &commands.QueueConstructionCommand{Building: "MIL", ProvinceIndex: 0, Count: 4},
			target: new(*shared.CapacityExceededError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := commands.NewQueueConstructionHandler(newSession(t))

			_, err := handler.Handle(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.ErrorAs(t, err, tt.target)
		})
	}
}

func TestAddProductionLineHandler(t *testing.T) {
	s := newSession(t)
	handler := commands.NewAddProductionLineHandler(s)

	resp, err := handler.Handle(context.Background(), &commands.AddProductionLineCommand{
		Nation:    "Romania",
		Equipment: "anti-air",
		Factories: 4,
	})

	require.NoError(t, err)
	line := resp.(*commands.ProductionLineResponse)
	assert.Equal(t, 1, line.LineIndex)
	assert.Equal(t, shared.EquipmentAntiAir, line.Equipment)
	assert.Equal(t, int64(100), line.DailyOutput)
	assert.Equal(t, 0, line.FreeMilFactories)

	_, err = handler.Handle(context.Background(), &commands.AddProductionLineCommand{Equipment: "GUN", Factories: 1})
	var overcommit *shared.FactoryOvercommitError
	assert.ErrorAs(t, err, &overcommit)
}

func TestResizeProductionLineHandler(t *testing.T) {
	s := newSession(t)
	handler := commands.NewResizeProductionLineHandler(s)

	resp, err := handler.Handle(context.Background(), &commands.ResizeProductionLineCommand{LineIndex: 0, Factories: 6})
	require.NoError(t, err)
	assert.Equal(t, int64(600), resp.(*commands.ProductionLineResponse).DailyOutput)

	_, err = handler.Handle(context.Background(), &commands.ResizeProductionLineCommand{LineIndex: 0, Factories: 7})
	var overcommit *shared.FactoryOvercommitError
	assert.ErrorAs(t, err, &overcommit)

	_, err = handler.Handle(context.Background(), &commands.ResizeProductionLineCommand{LineIndex: 5, Factories: 1})
	var badIndex *shared.InvalidProductionLineIndexError
	assert.ErrorAs(t, err, &badIndex)
}

func TestSelectNationHandler(t *testing.T) {
	s := newSession(t)
	handler := commands.NewSelectNationHandler(s)

	resp, err := handler.Handle(context.Background(), &commands.SelectNationCommand{Nation: "1"})

	require.NoError(t, err)
	assert.Equal(t, "Hungary", resp.(*commands.SelectNationResponse).Nation)
	assert.Equal(t, 1, s.SelectedIndex())

	_, err = handler.Handle(context.Background(), &commands.SelectNationCommand{})
	assert.Error(t, err)
}

type sessionAdvancer struct {
	session *session.Session
}

func (a *sessionAdvancer) Step(ctx context.Context) (int, []nation.DayReport, error) {
	day, reports := a.session.Advance()
	return day, reports, nil
}

func TestAdvanceDaysHandler(t *testing.T) {
	s := newSession(t)
	handler := commands.NewAdvanceDaysHandler(&sessionAdvancer{session: s})

	resp, err := handler.Handle(context.Background(), &commands.AdvanceDaysCommand{Days: 3})

	require.NoError(t, err)
	advanced := resp.(*commands.AdvanceDaysResponse)
	assert.Equal(t, 3, advanced.Day)
	assert.Len(t, advanced.Results, 3)
	assert.Equal(t, 3, s.Day())
}

func TestAdvanceDaysHandler_RejectsNonPositive(t *testing.T) {
	handler := commands.NewAdvanceDaysHandler(&sessionAdvancer{session: newSession(t)})

	_, err := handler.Handle(context.Background(), &commands.AdvanceDaysCommand{Days: 0})

	assert.Error(t, err)
}

func TestHandlers_RejectWrongRequestType(t *testing.T) {
	s := newSession(t)
	handler := commands.NewStartFocusHandler(s)

	_, err := handler.Handle(context.Background(), &commands.SelectNationCommand{Nation: "Romania"})

	assert.ErrorContains(t, err, "invalid request type")
}
