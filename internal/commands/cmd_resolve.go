package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/agendanav/internal/core/nav"
	"github.com/colonyops/agendanav/pkg/iojson"
)

type ResolveCmd struct {
	flags *Flags
	app   *App

	// flags
	dir        string
	jsonOutput bool
}

// NewResolveCmd creates a new resolve command
func NewResolveCmd(flags *Flags, app *App) *ResolveCmd {
	return &ResolveCmd{flags: flags, app: app}
}

// Register adds the resolve command to the application
func (cmd *ResolveCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "resolve",
		Usage:     "Resolve the previous or next link of an agenda item",
		UsageText: "agendanav resolve [--dir prev|next] [--json] [KEY]",
		Description: `Prints the footer link an item shows in one direction under the current
traversal mode and meeting-day setting.

Without KEY an interactive picker lists every item.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "direction (prev, next)",
				Value:       string(nav.Next),
				Destination: &cmd.dir,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ResolveCmd) run(ctx context.Context, c *cli.Command) error {
	dir, err := nav.ParseDirection(cmd.dir)
	if err != nil {
		return err
	}

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

	target, err := n.Resolve(ctx, key, dir, cmd.app.Mode(), cmd.app.MeetingDay())
	out := c.Root().Writer

	if cmd.jsonOutput {
		if err != nil {
			_ = iojson.WriteError(c.Root().ErrWriter, err.Error(), map[string]any{"item": key, "dir": dir})
			return err
		}
		return iojson.WriteWith(out, c.Root().ErrWriter, target)
	}

	if err != nil {
		return fmt.Errorf("resolve %s: %w", key, err)
	}

	_, _ = fmt.Fprintln(out, describe(target))
	return nil
}

// describe renders a target as a single plain-text line.
func describe(t nav.Target) string {
	switch t.Kind {
	case nav.KindInternal, nav.KindExternal:
		return fmt.Sprintf("%s\t%s\t%s\t%s", t.Kind, t.Path, t.Label, t.ColorClass)
	default:
		return string(t.Kind)
	}
}
