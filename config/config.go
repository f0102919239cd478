// Package config loads the Tuning Constants spec.md §6 names into a
// ramfs.FS, grounded on the cron-workflow-replicator's
// yaml.NewDecoder(f).Decode(&cfg) pattern (cmd/root.go).
package config

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"ramfs"
)

// Config mirrors spec.md §6's Tuning Constants. Zero values mean "use
// the engine default" — Load never fabricates the defaults itself, it
// leaves that to ramfs.New/ramfs.Init via the Options method.
type Config struct {
	MaxHandles                int `yaml:"maxHandles"`
	InitialCapacity           int `yaml:"initialCapacity"`
	ReallocSlack              int `yaml:"reallocSlack"`
	DetachPlaceholderCapacity int `yaml:"detachPlaceholderCapacity"`
}

// Load reads and decodes a YAML config file. A missing path is not an
// error — it returns the zero Config, which Options turns into "use
// every engine default."
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, errors.Wrapf(err, "[ramfs.config] open %q", path)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a Config from r without touching the filesystem,
// primarily for tests and embedded configs.
func Decode(r io.Reader) (Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "[ramfs.config] decode")
	}
	return cfg, nil
}

// Options translates the non-zero fields of cfg into ramfs.Option
// values, ready to pass to ramfs.New or ramfs.Init.
func (cfg Config) Options() []ramfs.Option {
	var opts []ramfs.Option
	if cfg.MaxHandles > 0 {
		opts = append(opts, ramfs.WithMaxHandles(cfg.MaxHandles))
	}
	if cfg.InitialCapacity > 0 {
		opts = append(opts, ramfs.WithInitialCapacity(cfg.InitialCapacity))
	}
	if cfg.ReallocSlack > 0 {
		opts = append(opts, ramfs.WithReallocSlack(cfg.ReallocSlack))
	}
	if cfg.DetachPlaceholderCapacity > 0 {
		opts = append(opts, ramfs.WithDetachPlaceholderCapacity(cfg.DetachPlaceholderCapacity))
	}
	return opts
}
