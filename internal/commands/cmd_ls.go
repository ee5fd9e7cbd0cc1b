package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/agendanav/internal/core/agenda"
	"github.com/colonyops/agendanav/internal/core/classify"
	"github.com/colonyops/agendanav/pkg/iojson"
)

type LsCmd struct {
	flags *Flags
	app   *App

	// flags
	jsonOutput bool
	filter     agenda.Filter
	class      string
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags, app *App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List agenda items",
		UsageText: "agendanav ls [--match GLOB] [--class CLASS] [--shepherd NAME] [--json]",
		Description: `Displays a table of agenda items in document order with their code,
classification, status color and shepherd.

--match takes a doublestar glob against the item href.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "match",
				Aliases:     []string{"m"},
				Usage:       "glob matched against item href",
				Destination: &cmd.filter.Match,
			},
			&cli.StringFlag{
				Name:        "class",
				Usage:       "only items of this class (executive, special-order, sub-item, other)",
				Destination: &cmd.class,
			},
			&cli.StringFlag{
				Name:        "shepherd",
				Usage:       "only items with this shepherd",
				Destination: &cmd.filter.Shepherd,
			},
			&cli.BoolFlag{
				Name:        "ready",
				Usage:       "only items ready for review",
				Destination: &cmd.filter.Ready,
			},
			&cli.BoolFlag{
				Name:        "skippable",
				Usage:       "only skippable items",
				Destination: &cmd.filter.Skippable,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	n, err := cmd.app.Navigator()
	if err != nil {
		return err
	}

	cmd.filter.Class = classify.Class(cmd.class)
	items, err := n.Index().List(cmd.filter)
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}

	if len(items) == 0 {
		if !cmd.jsonOutput {
			fmt.Fprintf(os.Stderr, "No items found\n")
		}
		return nil
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, it := range items {
			if err := iojson.WriteLine(out, newItemInfo(it)); err != nil {
				return fmt.Errorf("encode item: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CODE\tHREF\tCLASS\tCOLOR\tSHEPHERD\tTITLE")
	for _, it := range items {
		info := newItemInfo(it)
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", info.Attach, info.Href, info.Class, info.Color, info.Shepherd, info.Title)
	}
	return w.Flush()
}

// itemInfo is the output format for agendanav ls.
type itemInfo struct {
	Href      string         `json:"href"`
	Title     string         `json:"title"`
	Attach    string         `json:"attach"`
	Class     classify.Class `json:"class"`
	Color     string         `json:"color"`
	Shepherd  string         `json:"shepherd,omitempty"`
	Ready     bool           `json:"ready_for_review"`
	Skippable bool           `json:"skippable"`
}

func newItemInfo(it *agenda.Item) itemInfo {
	color := it.Status.Color
	if color == "" {
		color = "blank"
	}
	return itemInfo{
		Href:      it.Href,
		Title:     it.Title,
		Attach:    it.Attach,
		Class:     it.Class(),
		Color:     color,
		Shepherd:  it.Shepherd,
		Ready:     it.Status.ReadyForReview,
		Skippable: it.Status.Skippable,
	}
}
