package common

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/andrescamacho/nationsim-go/internal/application/mediator"
)

// LoggingMiddleware logs every command and query at debug level, and failures at warn
func LoggingMiddleware() mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		logger := LoggerFromContext(ctx)
		name := RequestName(request)
		start := time.Now()

		response, err := next(ctx, request)

		if err != nil {
			logger.Warn("request failed", "request", name, "error", err, "duration", time.Since(start))
			return response, err
		}
		logger.Debug("request handled", "request", name, "duration", time.Since(start))
		return response, nil
	}
}

// RequestName strips the pointer and package prefix from a request's type name:
// "*commands.StartFocusCommand" becomes "StartFocusCommand"
func RequestName(request mediator.Request) string {
	if request == nil {
		return "UnknownRequest"
	}
	fullName := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")
	if i := strings.LastIndex(fullName, "."); i >= 0 {
		return fullName[i+1:]
	}
	return fullName
}
