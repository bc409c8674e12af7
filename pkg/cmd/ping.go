package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func pingCmd(env *Env) *cli.Command {
	return &cli.Command{
		Name:  "ping",
		Usage: "Check the connection and print the server version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := env.connect(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			v, err := s.GetVersion(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(output(cmd), "%s: ClickHouse %s\n", s.server.Address(), v)
			return nil
		},
	}
}
