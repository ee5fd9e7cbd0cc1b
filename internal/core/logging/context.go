package logging

import "context"

type contextKey string

const (
	itemKey contextKey = "item"
	modeKey contextKey = "mode"
)

// WithItem adds an agenda item key to the context.
func WithItem(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, itemKey, key)
}

// WithMode adds a traversal mode to the context.
func WithMode(ctx context.Context, mode string) context.Context {
	return context.WithValue(ctx, modeKey, mode)
}

// GetItem retrieves the item key from the context.
// Returns empty string if not present.
func GetItem(ctx context.Context) string {
	if key, ok := ctx.Value(itemKey).(string); ok {
		return key
	}
	return ""
}

// GetMode retrieves the traversal mode from the context.
// Returns empty string if not present.
func GetMode(ctx context.Context) string {
	if mode, ok := ctx.Value(modeKey).(string); ok {
		return mode
	}
	return ""
}
