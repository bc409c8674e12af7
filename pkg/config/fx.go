package config

import (
	"github.com/pseudomuto/chsync/pkg/consts"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(NewLoader))

// Loader resolves and loads the configuration file for a command. Loading is deferred
// until a command runs because the file depends on the --config and --dev flags.
type Loader struct {
	load func(string) (*Config, error)
}

// NewLoader returns a Loader reading files from disk.
func NewLoader() *Loader {
	return &Loader{load: LoadConfigFile}
}

// Load loads path, or when path is empty the default file: chsync.dev.yaml when dev
// is set and chsync.yaml otherwise.
func (l *Loader) Load(path string, dev bool) (*Config, error) {
	if path == "" {
		path = consts.DefaultConfigFile
		if dev {
			path = consts.DevConfigFile
		}
	}

	return l.load(path)
}
