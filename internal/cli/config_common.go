package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/vvka-141/xsdver/internal/config"
	"github.com/vvka-141/xsdver/pkg/xsdver"
)

// loadProjectConfig loads the explicit config file, or the default one from
// the working directory. A missing default file yields an empty config.
func loadProjectConfig(configPath string) (*config.ProjectConfig, error) {
	if configPath != "" {
		cfg, err := config.LoadFile(configPath)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: config file %s not found", xsdver.ErrInvalidConfig, configPath)
		}
		return cfg, err
	}

	cfg, err := config.Load(".")
	if errors.Is(err, config.ErrConfigNotFound) {
		return &config.ProjectConfig{}, nil
	}
	return cfg, err
}

// loadDotEnv loads .env from the working directory without overriding
// variables that are already set.
func loadDotEnv() {
	_ = godotenv.Load()
}

// resolvedInputs are the values handed to the checker.
type resolvedInputs struct {
	version    string
	schemaPath string
}

// resolveInputs applies the precedence positional args > environment > config file > defaults.
func resolveInputs(pos positionalArgs, cfg *config.ProjectConfig) resolvedInputs {
	in := resolvedInputs{version: pos.version, schemaPath: pos.schemaPath}
	if in.version == "" {
		in.version = os.Getenv(config.EnvVersion)
	}
	if in.schemaPath == "" {
		in.schemaPath = os.Getenv(config.EnvSchema)
	}
	if in.schemaPath == "" && cfg != nil {
		in.schemaPath = cfg.Schema
	}
	return in
}

// defaultSchemaPath returns detection.xsd next to the running executable.
// When that file does not exist but one exists in the working directory, the
// latter is used.
func defaultSchemaPath() string {
	exe, err := os.Executable()
	if err != nil {
		return xsdver.DefaultSchemaFileName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	candidate := filepath.Join(filepath.Dir(exe), xsdver.DefaultSchemaFileName)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	if _, err := os.Stat(xsdver.DefaultSchemaFileName); err == nil {
		return xsdver.DefaultSchemaFileName
	}
	return candidate
}
