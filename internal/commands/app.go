package commands

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/colonyops/agendanav/internal/core/agenda"
	"github.com/colonyops/agendanav/internal/core/logging"
	"github.com/colonyops/agendanav/internal/core/nav"
	"github.com/colonyops/agendanav/pkg/iojson"
)

// App loads the agenda on first use and shares the resulting navigator
// between commands.
type App struct {
	flags  *Flags
	stdin  *iojson.FileReader[[]agenda.Item]
	logger zerolog.Logger

	once sync.Once
	nav  *nav.Navigator
	err  error
}

// NewApp creates an App bound to the parsed global flags.
func NewApp(flags *Flags) *App {
	return &App{
		flags: flags,
		stdin: iojson.NewFileReader[[]agenda.Item]("agenda", "agenda document"),
	}
}

// Navigator returns the navigator over the configured agenda document.
// The path "-" reads a JSON document from stdin.
func (a *App) Navigator() (*nav.Navigator, error) {
	a.once.Do(func() {
		a.logger = logging.Component("nav")
		idx, err := a.loadIndex()
		if err != nil {
			a.err = err
			return
		}
		a.logger.Debug().Int("items", idx.Len()).Str("agenda", a.flags.Config.Agenda).Msg("agenda loaded")
		a.nav = nav.NewNavigator(idx, a.flags.Config.ExternalPrefix, a.logger)
	})
	return a.nav, a.err
}

func (a *App) loadIndex() (*agenda.Index, error) {
	path := a.flags.Config.Agenda
	switch path {
	case "":
		return nil, fmt.Errorf("no agenda document configured; pass --agenda or set agenda in %s", a.flags.ConfigPath)
	case "-":
		a.stdin.Set(path)
		items, err := a.stdin.Read()
		if err != nil {
			return nil, fmt.Errorf("read agenda: %w", err)
		}
		return agenda.NewIndex(items)
	default:
		return agenda.LoadFile(path)
	}
}

// Mode returns the configured default traversal mode.
func (a *App) Mode() nav.Mode {
	return a.flags.Config.Traversal
}

// MeetingDay returns the configured meeting-day flag.
func (a *App) MeetingDay() bool {
	return a.flags.Config.MeetingDay
}
