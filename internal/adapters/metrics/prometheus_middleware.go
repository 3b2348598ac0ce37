package metrics

import (
	"context"
	"time"

	"github.com/andrescamacho/nationsim-go/internal/application/common"
	"github.com/andrescamacho/nationsim-go/internal/application/mediator"
)

// PrometheusMiddleware records the duration and outcome of every command and query
func PrometheusMiddleware(collector *CommandMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		// Skip metrics if collector is nil (metrics disabled)
		if collector == nil {
			return next(ctx, request)
		}

		start := time.Now()
		response, err := next(ctx, request)
		collector.RecordCommandExecution(common.RequestName(request), time.Since(start).Seconds(), err == nil)

		return response, err
	}
}
