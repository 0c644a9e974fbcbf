// Package config loads collection options from configuration files and the
// environment. Supported formats are YAML, TOML and JSON, selected by file
// extension; environment variables override file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arkover/tracked/collection"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrUnsupportedFormat is returned for file extensions Load does not
// understand.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// DefaultEnvPrefix is the prefix FromEnv and LoadWithEnv use.
const DefaultEnvPrefix = "TRACKED_"

// Options is the file representation of collection configuration.
type Options struct {
	EnableSnapshots    bool `yaml:"enableSnapshots" toml:"enableSnapshots" json:"enableSnapshots"`
	EnableTransactions bool `yaml:"enableTransactions" toml:"enableTransactions" json:"enableTransactions"`
	SnapshotLimit      int  `yaml:"snapshotLimit" toml:"snapshotLimit" json:"snapshotLimit"`
}

// CollectionOptions converts the document into collection constructor
// options.
func (o Options) CollectionOptions() []collection.Option {
	var opts []collection.Option
	if o.EnableSnapshots {
		opts = append(opts, collection.WithSnapshots())
	}
	if o.EnableTransactions {
		opts = append(opts, collection.WithTransactions())
	}
	if o.SnapshotLimit > 0 {
		opts = append(opts, collection.WithSnapshotLimit(o.SnapshotLimit))
	}
	return opts
}

// Load reads an options document, choosing the decoder by extension:
// .yaml/.yml, .toml or .json.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read config: %w", err)
	}

	var opts Options
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &opts)
	case ".toml":
		err = toml.Unmarshal(data, &opts)
	case ".json":
		err = json.Unmarshal(data, &opts)
	default:
		return Options{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return Options{}, fmt.Errorf("decode config %s: %w", filepath.Base(path), err)
	}
	return opts, nil
}

// LoadWithEnv loads a file and applies environment overrides with the
// default prefix.
func LoadWithEnv(path string) (Options, error) {
	opts, err := Load(path)
	if err != nil {
		return Options{}, err
	}
	return opts.ApplyEnv(DefaultEnvPrefix), nil
}

// FromEnv builds options purely from environment variables.
func FromEnv(prefix string) Options {
	return Options{}.ApplyEnv(prefix)
}

// ApplyEnv overlays environment variables onto the options. Recognized
// variables, shown with the default prefix:
//
//	TRACKED_ENABLE_SNAPSHOTS    (bool)
//	TRACKED_ENABLE_TRANSACTIONS (bool)
//	TRACKED_SNAPSHOT_LIMIT      (int)
//
// Unparsable values are ignored; empty strings count as set.
func (o Options) ApplyEnv(prefix string) Options {
	if v, ok := os.LookupEnv(prefix + "ENABLE_SNAPSHOTS"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			o.EnableSnapshots = b
		}
	}
	if v, ok := os.LookupEnv(prefix + "ENABLE_TRANSACTIONS"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			o.EnableTransactions = b
		}
	}
	if v, ok := os.LookupEnv(prefix + "SNAPSHOT_LIMIT"); ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			o.SnapshotLimit = n
		}
	}
	return o
}
