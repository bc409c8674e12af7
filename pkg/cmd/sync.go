package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/chsync/pkg/frame"
	"github.com/pseudomuto/chsync/pkg/tablesync"
	"github.com/urfave/cli/v3"
)

// syncCmd loads a CSV or JSON file into a table.
//
// Command flags:
//   - --db: target database (defaults to the server's database)
//   - --table, -t: target table (defaults to the file name without its extension)
//   - --mode, -m: replace (default) or append
//   - --format, -f: csv or json (defaults to the file extension)
//   - --comment: column comment as col=text, repeatable
//   - --batch-size: rows per INSERT (defaults to sync.batch_size)
//
// Example usage:
//
//	chsync sync --db analytics --table scores scores.csv
//	cat more.json | chsync sync --db analytics --table scores --mode append --format json -
func syncCmd(env *Env) *cli.Command {
	return &cli.Command{
		Name:      "sync",
		Usage:     "Load a CSV or JSON file into a table",
		ArgsUsage: "<file|->",
		Description: `Infers the column types of the input, creates the target table and inserts
every row with a sequential id and an update_time stamp.

In replace mode the table is dropped and recreated and ids start at 1. In append
mode the table is created when missing and ids continue from its row count.`,
		Flags: []cli.Flag{
			dbFlag(),
			tableFlag(false),
			&cli.StringFlag{
				Name:    "mode",
				Aliases: []string{"m"},
				Usage:   "replace or append",
				Value:   string(tablesync.Replace),
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "input format: csv or json (defaults to the file extension)",
			},
			&cli.StringSliceFlag{
				Name:  "comment",
				Usage: "column comment as col=text (repeatable)",
			},
			&cli.IntFlag{
				Name:  "batch-size",
				Usage: "rows per INSERT (defaults to the configured batch size)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path, err := requireArg(cmd, "file")
			if err != nil {
				return err
			}

			mode, err := tablesync.ParseMode(cmd.String("mode"))
			if err != nil {
				return err
			}

			comments, err := parseComments(cmd.StringSlice("comment"))
			if err != nil {
				return err
			}

			table := cmd.String("table")
			if table == "" {
				if path == "-" {
					return errors.New("--table is required when reading from stdin")
				}
				table = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}

			f, err := readInput(cmd, path, cmd.String("format"))
			if err != nil {
				return err
			}

			s, err := env.connect(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			batchSize := int(cmd.Int("batch-size"))
			if batchSize <= 0 {
				batchSize = s.config.Sync.BatchSize
			}

			syncer := tablesync.New(tablesync.Config{
				Store:     s,
				Logger:    env.Logger,
				BatchSize: batchSize,
			})

			ref := tablesync.TableRef{Database: s.database(cmd), Table: table}
			res, err := syncer.Sync(ctx, ref, f, mode, tablesync.WithComments(comments))
			if err != nil {
				return err
			}

			w := output(cmd)
			fmt.Fprintf(w, "Synced %d row(s) into %s (%s)\n", res.Rows, res.Table, res.Mode)
			if res.Rows > 0 {
				fmt.Fprintf(w, "- ids %d to %d\n", res.FirstID, res.LastID)
				fmt.Fprintf(w, "- %d batch(es)\n", res.Batches)
			}

			return nil
		},
	}
}

// readInput reads path (stdin for "-") as a frame.
func readInput(cmd *cli.Command, path, format string) (*frame.Frame, error) {
	if format == "" {
		format = "csv"
		if strings.EqualFold(filepath.Ext(path), ".json") {
			format = "json"
		}
	}

	var r io.Reader
	if path == "-" {
		r = input(cmd)
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open file: %s", path)
		}
		defer file.Close()
		r = file
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return frame.ReadCSV(r, frame.CSVOptions{TrimSpace: true})
	case "json":
		return frame.ReadJSON(r)
	default:
		return nil, errors.Errorf("unknown input format %q (expected csv or json)", format)
	}
}

// parseComments parses col=text pairs.
func parseComments(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	comments := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		col, text, ok := strings.Cut(pair, "=")
		col = strings.TrimSpace(col)
		if !ok || col == "" {
			return nil, errors.Errorf("invalid comment %q (expected col=text)", pair)
		}
		comments[col] = text
	}

	return comments, nil
}
