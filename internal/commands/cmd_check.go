package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/agendanav/internal/core/agenda"
	"github.com/colonyops/agendanav/internal/core/nav"
	"github.com/colonyops/agendanav/internal/core/styles"
	"github.com/colonyops/agendanav/pkg/iojson"
)

type CheckCmd struct {
	flags *Flags
	app   *App

	// flags
	jsonOutput bool
}

// NewCheckCmd creates a new check command
func NewCheckCmd(flags *Flags, app *App) *CheckCmd {
	return &CheckCmd{flags: flags, app: app}
}

// Register adds the check command to the application
func (cmd *CheckCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "check",
		Usage:     "Check the agenda for dangling references and looping chains",
		UsageText: "agendanav check [--json]",
		Description: `Verifies that every prev/next key resolves and that no chain loops, then
resolves every footer link under every traversal mode and reports the ones
that fault.`,
		Flags: []cli.Flag{
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

// checkIssue is one problem found by agendanav check.
type checkIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type checkReport struct {
	Valid  bool         `json:"valid"`
	Items  int          `json:"items"`
	Issues []checkIssue `json:"issues,omitempty"`
}

func buildReport(idx *agenda.Index, externalPrefix string) (checkReport, error) {
	report := checkReport{Items: idx.Len()}

	if err := agenda.Check(idx); err != nil {
		var fieldErrs criterio.FieldErrors
		if !errors.As(err, &fieldErrs) {
			return report, err
		}
		for _, fe := range fieldErrs {
			report.Issues = append(report.Issues, checkIssue{Field: fe.Field, Message: fe.Err.Error()})
		}
	}

	for _, f := range nav.Audit(idx, externalPrefix) {
		report.Issues = append(report.Issues, checkIssue{
			Field:   fmt.Sprintf("items[%q].%s (mode=%s meeting_day=%t)", f.Key, f.Dir, f.Mode, f.MeetingDay),
			Message: f.Err.Error(),
		})
	}

	report.Valid = len(report.Issues) == 0
	return report, nil
}

func (cmd *CheckCmd) run(ctx context.Context, c *cli.Command) error {
	n, err := cmd.app.Navigator()
	if err != nil {
		return err
	}

	report, err := buildReport(n.Index(), cmd.flags.Config.ExternalPrefix)
	if err != nil {
		return err
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		if err := iojson.WriteWith(out, c.Root().ErrWriter, report); err != nil {
			return err
		}
	} else {
		for _, issue := range report.Issues {
			_, _ = fmt.Fprintf(out, "%s %s: %s\n", styles.ErrorStyle.Render("✗"), issue.Field, issue.Message)
		}
		if report.Valid {
			_, _ = fmt.Fprintf(out, "%s %d items, no issues\n", styles.StatusStyle("reviewed").Render("✓"), report.Items)
		}
	}

	if !report.Valid {
		return fmt.Errorf("agenda check found %d issue(s)", len(report.Issues))
	}
	return nil
}
