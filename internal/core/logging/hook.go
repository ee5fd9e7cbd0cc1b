package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts item and mode from context and adds them to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	if key := GetItem(ctx); key != "" {
		e.Str("item", key)
	}

	if mode := GetMode(ctx); mode != "" {
		e.Str("mode", mode)
	}
}
