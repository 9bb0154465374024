//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestGetConfig_PrimaryEnvWins(t *testing.T) {
	manager := NewManager(NewManagerParams{
		Getenv: envFrom(map[string]string{
			EnvRoot:           "/primary",
			EnvRootDeprecated: "/deprecated",
		}),
		ConfigPath: "/nonexistent/config.yaml",
	})

	cfg, err := manager.GetConfig()
	assert.NoError(t, err)
	assert.Equal(t, "/primary", cfg.RootDir)
}

func TestGetConfig_DeprecatedEnvFallback(t *testing.T) {
	manager := NewManager(NewManagerParams{
		Getenv: envFrom(map[string]string{
			EnvRootDeprecated: "/deprecated",
		}),
		ConfigPath: "/nonexistent/config.yaml",
	})

	cfg, err := manager.GetConfig()
	assert.NoError(t, err)
	assert.Equal(t, "/deprecated", cfg.RootDir)
}

func TestGetConfig_ConfigFileFallback(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(configPath, []byte("root_dir: /from-file\n"), 0644)
	require.NoError(t, err)

	manager := NewManager(NewManagerParams{
		Getenv:     envFrom(nil),
		ConfigPath: configPath,
	})

	cfg, err := manager.GetConfig()
	assert.NoError(t, err)
	assert.Equal(t, "/from-file", cfg.RootDir)
}

func TestGetConfig_EnvBeatsConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(configPath, []byte("root_dir: /from-file\n"), 0644)
	require.NoError(t, err)

	manager := NewManager(NewManagerParams{
		Getenv: envFrom(map[string]string{
			EnvRoot: "/primary",
		}),
		ConfigPath: configPath,
	})

	cfg, err := manager.GetConfig()
	assert.NoError(t, err)
	assert.Equal(t, "/primary", cfg.RootDir)
}

func TestGetConfig_DefaultRoot(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	manager := NewManager(NewManagerParams{
		Getenv:     envFrom(nil),
		ConfigPath: "/nonexistent/config.yaml",
	})

	cfg, err := manager.GetConfig()
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, "src"), cfg.RootDir)
}

func TestGetConfig_MalformedConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(configPath, []byte("root_dir: [unclosed\n"), 0644)
	require.NoError(t, err)

	manager := NewManager(NewManagerParams{
		Getenv:     envFrom(nil),
		ConfigPath: configPath,
	})

	_, err = manager.GetConfig()
	assert.ErrorIs(t, err, ErrConfigFileParse)
}

func TestGetConfig_ExpandsTilde(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	manager := NewManager(NewManagerParams{
		Getenv: envFrom(map[string]string{
			EnvRoot: "~/repositories",
		}),
		ConfigPath: "/nonexistent/config.yaml",
	})

	cfg, err := manager.GetConfig()
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, "repositories"), cfg.RootDir)
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{RootDir: "/repos"}
	assert.NoError(t, cfg.Validate())

	empty := Config{}
	assert.ErrorIs(t, empty.Validate(), ErrRootDirEmpty)
}

func TestDefaultConfig(t *testing.T) {
	manager := NewManager(NewManagerParams{})
	assert.Equal(t, "~/src", manager.DefaultConfig().RootDir)
}
