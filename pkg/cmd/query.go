package cmd

import (
	"context"
	"fmt"

	"github.com/pseudomuto/chsync/pkg/frame"
	"github.com/urfave/cli/v3"
)

func queryCmd(env *Env) *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Run a query and print the result",
		ArgsUsage: "<sql>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: table or csv",
				Value:   string(frame.FormatTable),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			sql, err := requireArg(cmd, "sql")
			if err != nil {
				return err
			}

			format, err := frame.ParseFormat(cmd.String("format"))
			if err != nil {
				return err
			}

			s, err := env.connect(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			f, err := s.Query(ctx, sql)
			if err != nil {
				return err
			}

			return frame.Write(output(cmd), f, format)
		},
	}
}

func execCmd(env *Env) *cli.Command {
	return &cli.Command{
		Name:      "exec",
		Usage:     "Execute a statement that returns no rows",
		ArgsUsage: "<sql>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			sql, err := requireArg(cmd, "sql")
			if err != nil {
				return err
			}

			s, err := env.connect(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			if err := s.Exec(ctx, sql); err != nil {
				return err
			}

			fmt.Fprintln(output(cmd), "OK")
			return nil
		},
	}
}
