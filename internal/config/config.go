package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jamescherti/vim-client/internal/vim"
)

// Config holds the user-level defaults for the vim-client tools. Command-line
// flags override everything here.
type Config struct {
	// VimBin lists candidate Vim binaries, tried in order.
	VimBin []string `yaml:"vim_bin,omitempty"`

	// ServerName is the default server-name pattern (case-insensitive
	// regexp search). Empty matches any server.
	ServerName string `yaml:"servername,omitempty"`

	// OpenIn is the default layout mode: current-window, tab, split, vsplit.
	OpenIn string `yaml:"open_in,omitempty"`

	// ForceTab upgrades current-window opens to new tabs when the server
	// already displays content.
	ForceTab bool `yaml:"force_tab,omitempty"`

	// PreCommands run before every open, PostCommands after.
	PreCommands  []string `yaml:"pre_commands,omitempty"`
	PostCommands []string `yaml:"post_commands,omitempty"`
}

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		VimBin: append([]string(nil), vim.DefaultBinaries...),
		OpenIn: string(vim.OpenCurrentWindow),
	}
}

// DefaultConfigPath returns the standard config location,
// ~/.config/vim-client/config.yaml, honoring XDG_CONFIG_HOME.
func DefaultConfigPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "vim-client", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing file is
// not an error; defaults apply.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads and validates the configuration at path, filling in
// defaults for anything left unset.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if len(cfg.VimBin) == 0 {
		cfg.VimBin = append([]string(nil), vim.DefaultBinaries...)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := vim.ParseOpenIn(c.OpenIn); err != nil {
		return err
	}
	for _, bin := range c.VimBin {
		if bin == "" {
			return fmt.Errorf("vim_bin entries must not be empty")
		}
	}
	return nil
}
