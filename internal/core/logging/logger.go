// Package logging holds zerolog helpers shared by the CLI, navigator and browser.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component returns a child of the global logger tagged with "cmp".
func Component(name string) zerolog.Logger {
	return Tag(log.Logger, name)
}

// Tag returns a child of parent tagged with "cmp" and the context hook
// attached, so item and mode annotations reach every event.
func Tag(parent zerolog.Logger, name string) zerolog.Logger {
	return parent.With().Str("cmp", name).Logger().Hook(ContextHook{})
}
