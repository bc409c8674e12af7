package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Env        *Env
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates the chsync CLI application and schedules it to run when the fx app
// starts. The fx app is shut down with exit code 1 when the command fails.
//
// Global Flags:
//   - --config, -c: server registry file (env CHSYNC_CONFIG)
//   - --dev: use chsync.dev.yaml instead of chsync.yaml
//   - --server, -s: the server entry to connect to
//   - --verbose: enable debug logging
//
// Example usage:
//
//	chsync --server analytics sync --table scores scores.csv
//	chsync --dev query "SELECT count() FROM analytics.scores"
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "chsync",
		Usage: "Load tabular data into ClickHouse tables",
		Description: `chsync infers a ClickHouse schema from CSV or JSON input, creates the
target table and loads the rows in batches, allocating a sequential id for
every row. Tables can be replaced or appended to.`,
		Version:                   p.Version.Version,
		Flags:                     globalFlags(),
		DisableSliceFlagSeparator: true,
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				p.Env.Level.SetLevel(zapcore.DebugLevel)
			}

			return ctx, nil
		},
		Commands: p.Commands,
	}

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			p.Env.Logger.Error("Error running command", zap.Error(err))
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the server registry file",
			Sources: cli.EnvVars("CHSYNC_CONFIG"),
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
		&cli.BoolFlag{
			Name:  "dev",
			Usage: "use the development registry (chsync.dev.yaml)",
		},
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "the server to connect to (may be omitted when only one is configured)",
			Sources: cli.EnvVars("CHSYNC_SERVER"),
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "enable debug logging",
		},
	}
}
