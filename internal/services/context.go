package services

import "context"

type contextKey string

const (
	sittingDateKey contextKey = "sitting_date"
	stageKey       contextKey = "stage"
	requestIDKey   contextKey = "request_id"
)

// WithSittingDate annotates context with the sitting date being processed.
func WithSittingDate(ctx context.Context, date string) context.Context {
	if date == "" {
		return ctx
	}
	return context.WithValue(ctx, sittingDateKey, date)
}

// SittingDateFromContext extracts the sitting date if present.
func SittingDateFromContext(ctx context.Context) (string, bool) {
	if str, ok := ctx.Value(sittingDateKey).(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithStage annotates context with the pipeline stage name.
func WithStage(ctx context.Context, stage string) context.Context {
	if stage == "" {
		return ctx
	}
	return context.WithValue(ctx, stageKey, stage)
}

// StageFromContext returns the stage name if present.
func StageFromContext(ctx context.Context) (string, bool) {
	if str, ok := ctx.Value(stageKey).(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithRequestID annotates context with the per-date request identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if str, ok := ctx.Value(requestIDKey).(string); ok && str != "" {
		return str, true
	}
	return "", false
}
