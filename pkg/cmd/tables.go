package cmd

import (
	"context"
	"fmt"

	"github.com/pseudomuto/chsync/pkg/frame"
	"github.com/pseudomuto/chsync/pkg/utils"
	"github.com/urfave/cli/v3"
)

func tablesCmd(env *Env) *cli.Command {
	return &cli.Command{
		Name:  "tables",
		Usage: "List the tables of a database",
		Flags: []cli.Flag{dbFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := env.connect(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			names, err := s.ShowTables(ctx, s.database(cmd))
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

func ddlCmd(env *Env) *cli.Command {
	return &cli.Command{
		Name:  "ddl",
		Usage: "Print the CREATE statement of a table",
		Flags: []cli.Flag{dbFlag(), tableFlag(true)},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := env.connect(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			ddl, err := s.ShowCreateTable(ctx, s.database(cmd), cmd.String("table"))
			if err != nil {
				return err
			}

			fmt.Fprintln(output(cmd), ddl)
			return nil
		},
	}
}

func describeCmd(env *Env) *cli.Command {
	return &cli.Command{
		Name:  "describe",
		Usage: "Print the columns of a table and the kind each maps to",
		Flags: []cli.Flag{
			dbFlag(),
			tableFlag(true),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: table or csv",
				Value:   string(frame.FormatTable),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := frame.ParseFormat(cmd.String("format"))
			if err != nil {
				return err
			}

			s, err := env.connect(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			cols, err := s.DescribeTable(ctx, s.database(cmd), cmd.String("table"))
			if err != nil {
				return err
			}

			names := make([]any, len(cols))
			kinds := make([]any, len(cols))
			comments := make([]any, len(cols))
			for i, c := range cols {
				names[i] = c.Name
				kinds[i] = c.Kind.String()
				comments[i] = c.Comment
			}

			f, err := frame.New(
				frame.Column{Name: "name", Values: names},
				frame.Column{Name: "kind", Values: kinds},
				frame.Column{Name: "comment", Values: comments},
			)
			if err != nil {
				return err
			}

			return frame.Write(output(cmd), f, format)
		},
	}
}

func dropCmd(env *Env) *cli.Command {
	return &cli.Command{
		Name:  "drop",
		Usage: "Drop a table if it exists",
		Flags: []cli.Flag{dbFlag(), tableFlag(true)},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := env.connect(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			db, table := s.database(cmd), cmd.String("table")
			if err := s.DropTable(ctx, db, table); err != nil {
				return err
			}

			fmt.Fprintf(output(cmd), "Dropped %s\n", utils.QualifiedName(db, table))
			return nil
		},
	}
}

func truncateCmd(env *Env) *cli.Command {
	return &cli.Command{
		Name:  "truncate",
		Usage: "Remove every row of a table",
		Flags: []cli.Flag{dbFlag(), tableFlag(true)},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := env.connect(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			db, table := s.database(cmd), cmd.String("table")
			if err := s.TruncateTable(ctx, db, table); err != nil {
				return err
			}

			fmt.Fprintf(output(cmd), "Truncated %s\n", utils.QualifiedName(db, table))
			return nil
		},
	}
}

func countCmd(env *Env) *cli.Command {
	return &cli.Command{
		Name:  "count",
		Usage: "Print the number of rows in a table (0 when it doesn't exist)",
		Flags: []cli.Flag{dbFlag(), tableFlag(true)},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := env.connect(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			n, err := s.RowCount(ctx, s.database(cmd), cmd.String("table"))
			if err != nil {
				return err
			}

			fmt.Fprintln(output(cmd), n)
			return nil
		},
	}
}
