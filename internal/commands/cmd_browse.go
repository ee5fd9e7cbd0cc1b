package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/agendanav/internal/tui"
)

type BrowseCmd struct {
	flags *Flags
	app   *App

	// flags
	start string
}

// NewBrowseCmd creates a new browse command
func NewBrowseCmd(flags *Flags, app *App) *BrowseCmd {
	return &BrowseCmd{flags: flags, app: app}
}

// Flags returns the browse flags so they can be registered on the root
// command, where the browser is the default action.
func (cmd *BrowseCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "start",
			Usage:       "item to open first (defaults to the first agenda item)",
			Destination: &cmd.start,
		},
	}
}

// Register adds the browse command to the application
func (cmd *BrowseCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "browse",
		Usage:     "Browse the agenda interactively",
		UsageText: "agendanav browse [--start KEY]",
		Description: `Opens a full screen browser showing one item with its navigation footer.
Left and right follow the footer links, m cycles the traversal mode and d
toggles meeting day.`,
		Flags:  cmd.Flags(),
		Action: cmd.Run,
	})

	return app
}

// Run opens the browser.
func (cmd *BrowseCmd) Run(ctx context.Context, c *cli.Command) error {
	n, err := cmd.app.Navigator()
	if err != nil {
		return err
	}

	return tui.Run(ctx, n, tui.Options{
		Start:      cmd.start,
		Mode:       cmd.app.Mode(),
		MeetingDay: cmd.app.MeetingDay(),
	})
}
