package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/internal/client"
)

type contextKey string

const configKey contextKey = "npuctl-config"

// DefaultServerURL points at a local development backend.
const DefaultServerURL = "http://127.0.0.1:8000/api"

// FileConfig is the optional ~/.npuctl/config.yaml.
type FileConfig struct {
	Server string `yaml:"server"`
}

// EnvConfig is read from NPUCTL_* environment variables.
type EnvConfig struct {
	Server         string `envconfig:"SERVER"`
	NonInteractive bool   `envconfig:"NON_INTERACTIVE"`
}

// GlobalConfig holds shared configuration for all npuctl commands. It is
// injected into the cobra command context by the root command's
// PersistentPreRun hook and consumed by all subcommands.
type GlobalConfig struct {
	ServerURL      string
	NonInteractive bool
	Provider       *client.Provider
}

// Load resolves configuration with flag > environment > config file > default
// precedence. flagServer is the --server value, empty when the flag was not
// set.
func Load(flagServer string, flagNonInteractive bool) (*GlobalConfig, error) {
	cfg := &GlobalConfig{
		ServerURL:      DefaultServerURL,
		NonInteractive: flagNonInteractive,
	}

	if fc, err := loadFile(); err != nil {
		return nil, err
	} else if fc != nil && fc.Server != "" {
		cfg.ServerURL = fc.Server
	}

	var env EnvConfig
	if err := envconfig.Process("NPUCTL", &env); err != nil {
		return nil, fmt.Errorf("failed to parse NPUCTL_* environment: %w", err)
	}
	if env.Server != "" {
		cfg.ServerURL = env.Server
	}
	if env.NonInteractive {
		cfg.NonInteractive = true
	}

	if flagServer != "" {
		cfg.ServerURL = flagServer
	}
	return cfg, nil
}

func loadFile() (*FileConfig, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil
	}
	path := filepath.Join(home, ".npuctl", "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &fc, nil
}

// InjectConfig adds config to the cobra command context. Called in the root
// command's PersistentPreRunE.
func InjectConfig(ctx context.Context, cfg *GlobalConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from the cobra command context.
// Returns (nil, false) if config is not present.
func FromContext(ctx context.Context) (*GlobalConfig, bool) {
	cfg, ok := ctx.Value(configKey).(*GlobalConfig)
	return cfg, ok
}

// MustFromContext retrieves config from context or panics. Only for use in
// command RunE functions, after the root command has injected it.
func MustFromContext(ctx context.Context) *GlobalConfig {
	cfg, ok := FromContext(ctx)
	if !ok {
		panic("npuctl: config not found in context - this is a bug in npuctl")
	}
	return cfg
}
