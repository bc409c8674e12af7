package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func databasesCmd(env *Env) *cli.Command {
	return &cli.Command{
		Name:  "databases",
		Usage: "List databases",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "all",
				Usage: "include system databases",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := env.connect(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			names, err := s.ShowDatabases(ctx, cmd.Bool("all"))
			if err != nil {
				return err
			}

			w := output(cmd)
			for _, name := range names {
				fmt.Fprintln(w, name)
			}

			return nil
		},
	}
}

func createDatabaseCmd(env *Env) *cli.Command {
	return &cli.Command{
		Name:  "create-database",
		Usage: "Create a database if it doesn't exist",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "db",
				Usage:    "the database to create",
				Required: true,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:  "engine",
				Usage: "the database engine (server default when empty)",
			},
			&cli.StringFlag{
				Name:  "comment",
				Usage: "the database comment",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := env.connect(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			db := cmd.String("db")
			if err := s.CreateDatabase(ctx, db, cmd.String("engine"), cmd.String("comment")); err != nil {
				return err
			}

			fmt.Fprintf(output(cmd), "Created database %s\n", db)
			return nil
		},
	}
}
