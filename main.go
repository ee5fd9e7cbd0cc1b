package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/agendanav/internal/commands"
	"github.com/colonyops/agendanav/internal/core/config"
	"github.com/colonyops/agendanav/internal/core/nav"
	"github.com/colonyops/agendanav/internal/core/styles"
	"github.com/colonyops/agendanav/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}
	agendaApp := commands.NewApp(flags)

	app := &cli.Command{
		Name:      "agendanav",
		Usage:     "Navigate meeting agenda items",
		UsageText: "agendanav [global options] command [command options]",
		Description: `agendanav resolves the previous/next footer links of a meeting agenda the
way the agenda pages do: through the review queue, a shepherd's items, the
flagged items, or on meeting day with flagged items injected between the
special orders and the executive reports.

Run 'agendanav' with no arguments to open the interactive browser.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("AGENDANAV_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("AGENDANAV_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("AGENDANAV_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "agenda",
				Aliases:     []string{"a"},
				Usage:       "path to the agenda document (JSON or YAML, - for JSON on stdin)",
				Sources:     cli.EnvVars("AGENDANAV_AGENDA"),
				Destination: &flags.AgendaPath,
			},
			&cli.BoolFlag{
				Name:        "meeting-day",
				Usage:       "inject flagged items at the special order boundary",
				Sources:     cli.EnvVars("AGENDANAV_MEETING_DAY"),
				Destination: &flags.MeetingDay,
			},
			&cli.StringFlag{
				Name:        "traversal",
				Aliases:     []string{"t"},
				Usage:       "traversal mode (default, queue, shepherd, flagged)",
				Sources:     cli.EnvVars("AGENDANAV_TRAVERSAL"),
				Destination: &flags.Traversal,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			// Flags and env vars override the config file.
			if c.IsSet("agenda") {
				cfg.Agenda = flags.AgendaPath
			}
			if c.IsSet("meeting-day") {
				cfg.MeetingDay = flags.MeetingDay
			}
			if c.IsSet("traversal") {
				mode, err := nav.ParseMode(flags.Traversal)
				if err != nil {
					return ctx, err
				}
				cfg.Traversal = mode
			}

			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			flags.Config = cfg
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	browseCmd := commands.NewBrowseCmd(flags, agendaApp)

	app = browseCmd.Register(app)
	app = commands.NewResolveCmd(flags, agendaApp).Register(app)
	app = commands.NewFooterCmd(flags, agendaApp).Register(app)
	app = commands.NewLsCmd(flags, agendaApp).Register(app)
	app = commands.NewCheckCmd(flags, agendaApp).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)

	// Register browse flags on root command
	app.Flags = append(app.Flags, browseCmd.Flags()...)

	// Set the browser as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'agendanav --help' for usage", c.Args().First())
		}
		return browseCmd.Run(ctx, c)
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
