package common

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/nationsim-go/internal/application/mediator"
)

type tickCommand struct{}

func TestLoggerFromContext_FallsBackToDiscard(t *testing.T) {
	assert.NotNil(t, LoggerFromContext(context.Background()))
}

func TestLoggingMiddleware_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := WithLogger(context.Background(), logger)
	mw := LoggingMiddleware()

	_, err := mw(ctx, &tickCommand{}, func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return nil, errors.New("boom")
	})

	require.Error(t, err)
	assert.Contains(t, buf.String(), "request=tickCommand")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestRequestName(t *testing.T) {
	assert.Equal(t, "tickCommand", RequestName(&tickCommand{}))
	assert.Equal(t, "UnknownRequest", RequestName(nil))
}
