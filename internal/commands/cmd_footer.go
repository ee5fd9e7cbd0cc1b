package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/agendanav/internal/tui"
	"github.com/colonyops/agendanav/pkg/iojson"
)

type FooterCmd struct {
	flags *Flags
	app   *App

	// flags
	jsonOutput bool
	width      int
}

// NewFooterCmd creates a new footer command
func NewFooterCmd(flags *Flags, app *App) *FooterCmd {
	return &FooterCmd{flags: flags, app: app}
}

// Register adds the footer command to the application
func (cmd *FooterCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "footer",
		Usage:     "Render the navigation footer of an agenda item",
		UsageText: "agendanav footer [--json] [--width N] [KEY]",
		Description: `Resolves both footer links of an item and renders them as a styled line,
colored by review status.

Without KEY an interactive picker lists every item.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
			&cli.IntFlag{
				Name:        "width",
				Usage:       "line width",
				Value:       80,
				Destination: &cmd.width,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *FooterCmd) run(ctx context.Context, c *cli.Command) error {
	n, err := cmd.app.Navigator()
	if err != nil {
		return err
	}

	key, err := keyOrPick(c.Args().First(), n.Index())
	if err != nil {
		if errors.Is(err, errAborted) {
			return nil
		}
		return err
	}

	footer, err := n.Footer(ctx, key, cmd.app.Mode(), cmd.app.MeetingDay())
	if err != nil {
		if cmd.jsonOutput {
			_ = iojson.WriteError(c.Root().ErrWriter, err.Error(), map[string]any{"item": key})
		}
		return fmt.Errorf("footer %s: %w", key, err)
	}

	if cmd.jsonOutput {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, footer)
	}

	_, _ = fmt.Fprintln(c.Root().Writer, tui.RenderFooter(footer, cmd.app.Mode(), cmd.app.MeetingDay(), cmd.width))
	return nil
}
