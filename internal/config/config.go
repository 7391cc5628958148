package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/xsdver/pkg/xsdver"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables consulted for values not given on the command line.
const (
	EnvVersion = "XSDVER_VERSION"
	EnvSchema  = "XSDVER_SCHEMA"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// ConfigFileNames are searched in order by Load.
var ConfigFileNames = []string{"xsdver.yaml", "xsdver.yml", "xsdver.toml"}

type ProjectConfig struct {
	Schema          string `yaml:"schema" toml:"schema"`
	NamespacePrefix string `yaml:"namespace_prefix,omitempty" toml:"namespace_prefix,omitempty"`
	NamespaceScheme string `yaml:"namespace_scheme,omitempty" toml:"namespace_scheme,omitempty"`
	IDPrefix        string `yaml:"id_prefix,omitempty" toml:"id_prefix,omitempty"`
	SnapshotMarker  string `yaml:"snapshot_marker,omitempty" toml:"snapshot_marker,omitempty"`
	StrictArgs      bool   `yaml:"strict_args,omitempty" toml:"strict_args,omitempty"`
	Output          string `yaml:"output,omitempty" toml:"output,omitempty"`
}

// Load reads the first config file of ConfigFileNames found in dir.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range ConfigFileNames {
		cfg, err := LoadFile(filepath.Join(dir, name))
		if errors.Is(err, ErrConfigNotFound) {
			continue
		}
		return cfg, err
	}
	return nil, ErrConfigNotFound
}

// LoadFile reads a config file, choosing YAML or TOML by extension.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml", "":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return nil, fmt.Errorf("%w: unsupported config file extension %q", xsdver.ErrInvalidConfig, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", xsdver.ErrInvalidConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks values that have a fixed set of choices.
func (c *ProjectConfig) Validate() error {
	switch c.Output {
	case "", OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: output must be %q or %q, got %q", xsdver.ErrInvalidConfig, OutputText, OutputJSON, c.Output)
	}
	return nil
}
