package util

import (
	"context"

	"github.com/pkg/errors"
)

type contextKey string

const (
	CTXKeyRequestID     contextKey = "request_id"
	CTXKeyDisableLogger contextKey = "disable_logger"
)

// RequestIDFromContext returns the ID of the (HTTP) request, returning an
// error if it is not present.
func RequestIDFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(CTXKeyRequestID)
	if val == nil {
		return "", errors.New("no request ID present in context")
	}

	id, ok := val.(string)
	if !ok {
		return "", errors.New("request ID in context is not a string")
	}

	return id, nil
}

// ShouldDisableLogger checks whether the logger instance should be
// disabled for the provided context. LogFromContext uses this to check
// whether it should return a default logger if none has been set by our
// logging middleware before, or fall back to the disabled logger,
// suppressing all output.
func ShouldDisableLogger(ctx context.Context) bool {
	shouldDisable, ok := ctx.Value(CTXKeyDisableLogger).(bool)
	if !ok {
		return false
	}

	return shouldDisable
}

// DisableLogger toggles the indication whether log output for this
// context should be disabled.
func DisableLogger(ctx context.Context, shouldDisable bool) context.Context {
	return context.WithValue(ctx, CTXKeyDisableLogger, shouldDisable)
}
