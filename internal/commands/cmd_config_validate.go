package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/agendanav/internal/core/styles"
	"github.com/colonyops/agendanav/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "agendanav config validate [options]",
				Description: "Validates the configuration file, the traversal mode, the theme and the agenda document.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	err := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath)

	var errs []validationError
	if err != nil {
		var fieldErrs criterio.FieldErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			errs = append(errs, validationError{Field: fe.Field, Message: fe.Err.Error()})
		}
	}

	out := c.Root().Writer
	if cmd.format == "json" {
		if werr := iojson.WriteWith(out, c.Root().ErrWriter, struct {
			Valid  bool              `json:"valid"`
			Errors []validationError `json:"errors,omitempty"`
		}{Valid: len(errs) == 0, Errors: errs}); werr != nil {
			return werr
		}
	} else {
		for _, e := range errs {
			_, _ = fmt.Fprintf(out, "%s %s: %s\n", styles.ErrorStyle.Render("✗"), e.Field, e.Message)
		}
		if len(errs) == 0 {
			_, _ = fmt.Fprintf(out, "%s configuration is valid\n", styles.StatusStyle("reviewed").Render("✓"))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration has %d error(s)", len(errs))
	}
	return nil
}
