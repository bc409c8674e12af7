package cmd

import (
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/chsync/pkg/clickhouse"
	"github.com/pseudomuto/chsync/pkg/config"
	"github.com/pseudomuto/chsync/pkg/frame"
	"github.com/pseudomuto/chsync/pkg/schema"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

type (
	// Database is the subset of *clickhouse.Client used by the commands.
	Database interface {
		Close() error
		Exec(ctx context.Context, query string, args ...any) error
		Query(ctx context.Context, query string, args ...any) (*frame.Frame, error)
		ShowDatabases(ctx context.Context, all bool) ([]string, error)
		CreateDatabase(ctx context.Context, database, engine, comment string) error
		ShowTables(ctx context.Context, database string) ([]string, error)
		ShowCreateTable(ctx context.Context, database, table string) (string, error)
		DescribeTable(ctx context.Context, database, table string) ([]schema.Column, error)
		DropTable(ctx context.Context, database, table string) error
		TruncateTable(ctx context.Context, database, table string) error
		RowCount(ctx context.Context, database, table string) (uint64, error)
		GetVersion(ctx context.Context) (*clickhouse.VersionInfo, error)
	}

	// Env is shared by all commands. It resolves the configured server from the global
	// flags and opens connections to it.
	Env struct {
		Logger *zap.Logger
		Level  zap.AtomicLevel

		load func(path string, dev bool) (*config.Config, error)
		dial func(ctx context.Context, srv config.Server) (Database, error)
	}

	// session is an open connection to the selected server.
	session struct {
		Database
		config *config.Config
		server config.Server
	}
)

// NewEnv returns an Env loading configuration through loader.
func NewEnv(loader *config.Loader, logger *zap.Logger, level zap.AtomicLevel) *Env {
	return &Env{
		Logger: logger,
		Level:  level,
		load:   loader.Load,
		dial: func(ctx context.Context, srv config.Server) (Database, error) {
			return clickhouse.NewClientWithOptions(ctx, srv.Address(), srv.ClientOptions())
		},
	}
}

// NewLogger builds the production logger used by the CLI. Output is limited to
// warnings until --verbose lowers the level.
func NewLogger() (*zap.Logger, zap.AtomicLevel, error) {
	level := zap.NewAtomicLevelAt(zap.WarnLevel)

	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()

	logger, err := cfg.Build()
	if err != nil {
		return nil, level, errors.Wrap(err, "failed to build logger")
	}

	return logger, level, nil
}

// connect loads the configuration named by the global flags and connects to the
// selected server.
func (e *Env) connect(ctx context.Context, cmd *cli.Command) (*session, error) {
	cfg, err := e.load(cmd.String("config"), cmd.Bool("dev"))
	if err != nil {
		return nil, err
	}

	srv, err := cfg.Server(cmd.String("server"))
	if err != nil {
		return nil, err
	}

	e.Logger.Debug("connecting", zap.String("address", srv.Address()), zap.String("database", srv.Database))

	db, err := e.dial(ctx, srv)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s", srv.Address())
	}

	return &session{Database: db, config: cfg, server: srv}, nil
}

// database returns the --db flag, falling back to the server's default database.
func (s *session) database(cmd *cli.Command) string {
	if db := cmd.String("db"); db != "" {
		return db
	}

	return s.server.Database
}

// output returns the writer commands print to.
func output(cmd *cli.Command) io.Writer {
	if cmd.Writer != nil {
		return cmd.Writer
	}

	return cmd.Root().Writer
}

// input returns the reader used when a command reads from stdin.
func input(cmd *cli.Command) io.Reader {
	if cmd.Reader != nil {
		return cmd.Reader
	}

	return cmd.Root().Reader
}

// requireArg returns the first positional argument or an error naming it.
func requireArg(cmd *cli.Command, name string) (string, error) {
	arg := strings.TrimSpace(cmd.Args().First())
	if arg == "" {
		return "", errors.Errorf("missing required argument <%s>", name)
	}

	return arg, nil
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "db",
		Usage: "the database (defaults to the server's database)",
		Config: cli.StringConfig{
			TrimSpace: true,
		},
	}
}

func tableFlag(required bool) cli.Flag {
	return &cli.StringFlag{
		Name:     "table",
		Aliases:  []string{"t"},
		Usage:    "the table name",
		Required: required,
		Config: cli.StringConfig{
			TrimSpace: true,
		},
	}
}
