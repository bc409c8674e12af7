package clickhouse

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/pkg/errors"
	"github.com/pseudomuto/chsync/pkg/frame"
)

type (
	// Client represents a ClickHouse database connection. It implements the table store
	// used by the sync engine (Exec, RowCount and DescribeTable).
	Client struct {
		conn driver.Conn
	}

	// ClientOptions contains configuration options for the ClickHouse client.
	// Empty fields leave whatever the DSN specified untouched.
	ClientOptions struct {
		// Username and Password override the credentials in the DSN
		Username string
		Password string

		// Database is the default database for unqualified names
		Database string

		// Compression enables LZ4 compression on the native protocol
		Compression bool

		// DialTimeout bounds connection establishment. Zero uses the driver default.
		DialTimeout time.Duration

		TLSSettings
	}

	// TLSSettings holds the files used to connect over mTLS.
	TLSSettings struct {
		CertFile string
		KeyFile  string
		CAFile   string
	}
)

// Enabled reports whether any TLS file was configured.
func (t TLSSettings) Enabled() bool {
	return t.CertFile != "" || t.KeyFile != "" || t.CAFile != ""
}

// NewClient creates a new ClickHouse client connection with default options.
// The DSN can be a plain "host:port" address or a full clickhouse:// or tcp:// URL.
//
// Example:
//
//	client, err := clickhouse.NewClient(ctx, "localhost:9000")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
func NewClient(ctx context.Context, dsn string) (*Client, error) {
	return NewClientWithOptions(ctx, dsn, ClientOptions{})
}

// NewClientWithOptions creates a new ClickHouse client connection with the given
// options and verifies it with a ping.
//
// Example:
//
//	client, err := clickhouse.NewClientWithOptions(ctx, "localhost:9000", clickhouse.ClientOptions{
//		Username:    "default",
//		Database:    "analytics",
//		Compression: true,
//	})
func NewClientWithOptions(ctx context.Context, dsn string, opts ClientOptions) (*Client, error) {
	options, err := buildOptions(dsn, opts)
	if err != nil {
		return nil, err
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open ClickHouse connection")
	}

	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "failed to connect to ClickHouse")
	}

	return newClient(conn), nil
}

func newClient(conn driver.Conn) *Client {
	return &Client{conn: conn}
}

func buildOptions(dsn string, opts ClientOptions) (*clickhouse.Options, error) {
	var options *clickhouse.Options
	if strings.Contains(dsn, "://") {
		parsed, err := clickhouse.ParseDSN(dsn)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse DSN")
		}
		options = parsed
	} else {
		options = &clickhouse.Options{Addr: []string{dsn}}
	}

	if opts.Username != "" {
		options.Auth.Username = opts.Username
	}
	if opts.Password != "" {
		options.Auth.Password = opts.Password
	}
	if opts.Database != "" {
		options.Auth.Database = opts.Database
	}

	if opts.Compression {
		options.Compression = &clickhouse.Compression{Method: clickhouse.CompressionLZ4}
	}

	if opts.DialTimeout > 0 {
		options.DialTimeout = opts.DialTimeout
	}

	if opts.Enabled() {
		tlsConfig, err := GetTLSConfig(opts)
		if err != nil {
			return nil, err
		}
		options.TLS = tlsConfig
	}

	return options, nil
}

// Close closes the ClickHouse connection
func (c *Client) Close() error {
	return c.conn.Close()
}

// Ping verifies the connection is still alive.
func (c *Client) Ping(ctx context.Context) error {
	return c.conn.Ping(ctx)
}

// Exec executes a single statement. Server errors are returned unchanged so callers can
// inspect them as *clickhouse.Exception.
func (c *Client) Exec(ctx context.Context, query string, args ...any) error {
	return c.conn.Exec(ctx, query, args...)
}

// Query runs a query and collects the result into a frame whose columns carry the
// names reported by the server. Values are scanned using the driver's scan types, so
// a Float64 column yields float64 values and a Nullable(String) column yields strings
// or nil.
//
// Example:
//
//	f, err := client.Query(ctx, "SELECT name, score FROM analytics.scores ORDER BY id")
//	if err != nil {
//		return err
//	}
//
//	frame.Write(os.Stdout, f, frame.FormatTable)
func (c *Client) Query(ctx context.Context, query string, args ...any) (*frame.Frame, error) {
	rows, err := c.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	types := rows.ColumnTypes()
	cols := make([]frame.Column, len(types))
	for i, ct := range types {
		cols[i] = frame.Column{Name: ct.Name(), Values: []any{}}
	}

	for rows.Next() {
		dest := make([]any, len(types))
		for i, ct := range types {
			dest[i] = reflect.New(ct.ScanType()).Interface()
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, errors.Wrap(err, "failed to scan row")
		}

		for i, d := range dest {
			cols[i].Values = append(cols[i].Values, deref(d))
		}
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating rows")
	}

	return frame.New(cols...)
}

// deref unwraps the pointer created for scanning. Nullable columns scan into a pointer
// to a pointer, and a nil inner pointer is NULL.
func deref(dest any) any {
	v := reflect.ValueOf(dest).Elem()
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	return v.Interface()
}
