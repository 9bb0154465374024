// Package config provides root directory configuration for the dolly application.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/op/dolly/pkg/fs"
)

// Environment variables consulted for the root directory, in precedence order.
const (
	// EnvRoot is the primary root directory override.
	EnvRoot = "DOLLY_ROOT"

	// EnvRootDeprecated is the deprecated alternate override, still honored.
	EnvRootDeprecated = "DOLLY_PATH"
)

// Config represents the application configuration.
type Config struct {
	RootDir string `yaml:"root_dir"`
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.RootDir == "" {
		return ErrRootDirEmpty
	}
	return nil
}

// Manager interface provides configuration management functionality.
type Manager interface {
	// GetConfig resolves the configuration from the environment, the
	// config file, and built-in defaults, in that order.
	GetConfig() (Config, error)

	// DefaultConfig returns the default configuration.
	DefaultConfig() Config
}

// NewManagerParams contains parameters for creating a new Manager instance.
// Environment access is injected so resolution stays testable as a pure
// function of its inputs.
type NewManagerParams struct {
	FS         fs.FS
	Getenv     func(string) string
	ConfigPath string // empty means ~/.config/dolly/config.yaml
}

type realManager struct {
	fs         fs.FS
	getenv     func(string) string
	configPath string
}

// NewManager creates a new Manager instance.
func NewManager(params NewManagerParams) Manager {
	m := &realManager{
		fs:         params.FS,
		getenv:     params.Getenv,
		configPath: params.ConfigPath,
	}
	if m.fs == nil {
		m.fs = fs.NewFS()
	}
	if m.getenv == nil {
		m.getenv = os.Getenv
	}
	return m
}

// GetConfig resolves the root directory through the precedence chain and
// expands any leading tilde.
func (c *realManager) GetConfig() (Config, error) {
	rootDir, err := c.rootDir()
	if err != nil {
		return Config{}, err
	}

	expanded, err := c.fs.ExpandPath(rootDir)
	if err != nil {
		return Config{}, fmt.Errorf("failed to expand root directory: %w", err)
	}

	config := Config{RootDir: expanded}
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// DefaultConfig returns the default configuration.
func (c *realManager) DefaultConfig() Config {
	return Config{RootDir: "~/src"}
}

func (c *realManager) rootDir() (string, error) {
	if root := c.getenv(EnvRoot); root != "" {
		return root, nil
	}
	if root := c.getenv(EnvRootDeprecated); root != "" {
		return root, nil
	}

	root, found, err := c.rootDirFromFile()
	if err != nil {
		return "", err
	}
	if found {
		return root, nil
	}

	return c.DefaultConfig().RootDir, nil
}

// rootDirFromFile reads root_dir from the YAML config file. A missing file is
// not an error, a malformed one is.
func (c *realManager) rootDirFromFile() (string, bool, error) {
	configPath := c.configPath
	if configPath == "" {
		homeDir, err := c.fs.GetHomeDir()
		if err != nil {
			return "", false, nil
		}
		configPath = filepath.Join(homeDir, ".config", "dolly", "config.yaml")
	}

	exists, err := c.fs.Exists(configPath)
	if err != nil || !exists {
		return "", false, nil
	}

	data, err := c.fs.ReadFile(configPath)
	if err != nil {
		return "", false, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if config.RootDir == "" {
		return "", false, nil
	}
	return config.RootDir, true, nil
}
