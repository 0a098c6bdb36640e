package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the arcade's settings file.
type Config struct {
	// Decks is the default shoe size for blackjack (1-8).
	Decks int `toml:"decks"`
	// Bankroll is the default blackjack buy-in in dollars.
	Bankroll int `toml:"bankroll"`
	// Chips is the default roulette buy-in.
	Chips int `toml:"chips"`
	// ClientSeed feeds the deterministic shuffle stream. Set your own to
	// make sessions verifiable against a seed you chose.
	ClientSeed string `toml:"client_seed"`
	// DatabasePath is where session history is kept. Empty means the
	// default data path.
	DatabasePath string `toml:"database_path"`
	// DocumentsDir is where the text editor reads and writes files.
	DocumentsDir string `toml:"documents_dir"`
}

func defaultConfig() *Config {
	return &Config{
		Decks:        1,
		Bankroll:     500,
		Chips:        100,
		ClientSeed:   "pbat",
		DatabasePath: filepath.Join(dataHome(), "pbat", "arcade.db"),
		DocumentsDir: filepath.Join(dataHome(), "pbat", "documents"),
	}
}

func dataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, ".local", "share")
}

func configHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, ".config")
}

// FilePath returns the path to the config file.
func FilePath() string {
	return filepath.Join(configHome(), "pbat", "config.toml")
}

// Load reads the config file, writing the defaults on first run.
func Load() (*Config, error) {
	path := FilePath()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := defaultConfig()
		if err := cfg.Save(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	// Fill gaps so a hand-edited file can omit keys.
	def := defaultConfig()
	if cfg.Decks < 1 || cfg.Decks > 8 {
		cfg.Decks = def.Decks
	}
	if cfg.Bankroll <= 0 {
		cfg.Bankroll = def.Bankroll
	}
	if cfg.Chips <= 0 {
		cfg.Chips = def.Chips
	}
	if cfg.ClientSeed == "" {
		cfg.ClientSeed = def.ClientSeed
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = def.DatabasePath
	}
	if cfg.DocumentsDir == "" {
		cfg.DocumentsDir = def.DocumentsDir
	}
	return &cfg, nil
}

// Save writes the config file, creating its directory when needed.
func (c *Config) Save() error {
	path := FilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(c); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}
	return nil
}
