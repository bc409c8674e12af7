package config

import (
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/pseudomuto/chsync/pkg/clickhouse"
	"github.com/pseudomuto/chsync/pkg/consts"
	"gopkg.in/yaml.v3"
)

// ErrServerNotFound is returned when a named server isn't in the registry.
var ErrServerNotFound = errors.New("server not found")

type (
	// Server describes how to reach a single ClickHouse server.
	Server struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port,omitempty"`
		Username string `yaml:"username,omitempty"`
		Password string `yaml:"password,omitempty"`

		// Database is the default database for unqualified names
		Database string `yaml:"database,omitempty"`

		// Compression enables LZ4 compression. Defaults to true.
		Compression *bool `yaml:"compression,omitempty"`

		// DialTimeout bounds connection establishment, e.g. "10s"
		DialTimeout time.Duration `yaml:"dial_timeout,omitempty"`

		// mTLS files, all optional
		CertFile string `yaml:"cert_file,omitempty"`
		KeyFile  string `yaml:"key_file,omitempty"`
		CAFile   string `yaml:"ca_file,omitempty"`
	}

	// Sync holds defaults for table syncs.
	Sync struct {
		// BatchSize is the maximum number of rows per INSERT
		BatchSize int `yaml:"batch_size,omitempty"`
	}

	// Config is the server registry plus sync defaults.
	Config struct {
		// Servers maps a server name to its connection settings
		Servers map[string]Server `yaml:"servers"`

		Sync Sync `yaml:"sync"`
	}
)

// LoadConfig parses a configuration from the provided io.Reader and fills in defaults:
// port 9000, username "default", compression on and a batch size of 1,000,000 rows.
//
// Example:
//
//	yamlData := `
//	servers:
//	  analytics:
//	    host: ch.internal
//	    password: secret
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	srv, _ := cfg.Server("analytics")
//	fmt.Println(srv.Address()) // ch.internal:9000
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	for name, srv := range cfg.Servers {
		if srv.Host == "" {
			return nil, errors.Errorf("server %q has no host", name)
		}
		if srv.Port == 0 {
			srv.Port = consts.DefaultPort
		}
		if srv.Username == "" {
			srv.Username = consts.DefaultUsername
		}
		if srv.Compression == nil {
			enabled := true
			srv.Compression = &enabled
		}
		cfg.Servers[name] = srv
	}

	if cfg.Sync.BatchSize <= 0 {
		cfg.Sync.BatchSize = consts.DefaultBatchSize
	}

	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
//
// Example:
//
//	cfg, err := config.LoadConfigFile("chsync.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Server returns the named server. An empty name selects the only configured server,
// and is an error when there are several.
func (c *Config) Server(name string) (Server, error) {
	if name == "" {
		if len(c.Servers) == 1 {
			for _, srv := range c.Servers {
				return srv, nil
			}
		}
		return Server{}, errors.Wrapf(ErrServerNotFound, "no server selected (available: %v)", c.ServerNames())
	}

	srv, ok := c.Servers[name]
	if !ok {
		return Server{}, errors.Wrapf(ErrServerNotFound, "%q (available: %v)", name, c.ServerNames())
	}

	return srv, nil
}

// ServerNames returns the configured server names in sorted order.
func (c *Config) ServerNames() []string {
	names := make([]string, 0, len(c.Servers))
	for name := range c.Servers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Address returns host:port.
func (s Server) Address() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}

// ClientOptions converts the server settings into client options.
func (s Server) ClientOptions() clickhouse.ClientOptions {
	return clickhouse.ClientOptions{
		Username:    s.Username,
		Password:    s.Password,
		Database:    s.Database,
		Compression: s.Compression == nil || *s.Compression,
		DialTimeout: s.DialTimeout,
		TLSSettings: clickhouse.TLSSettings{
			CertFile: s.CertFile,
			KeyFile:  s.KeyFile,
			CAFile:   s.CAFile,
		},
	}
}
