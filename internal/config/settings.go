package config

import (
	"errors"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultBaseURL  = "https://habitica.com/api/v3"
	defaultClientID = "habhook"
)

type Config struct {
	API     APIConfig     `toml:"api"`
	Logging LoggingConfig `toml:"logging"`
}

type APIConfig struct {
	BaseURL  string `toml:"base_url"`
	ClientID string `toml:"client_id"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL:  defaultBaseURL,
			ClientID: defaultClientID,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the settings file, tolerating a missing or empty file: the
// defaults stand alone and nothing is ever written back.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return loadFromPath(path)
}

func loadFromPath(path string) (Config, error) {
	cfg := Default()
	if err := readTOML(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}

func (c Config) BaseURL() string {
	base := strings.TrimSpace(c.API.BaseURL)
	if base == "" {
		return defaultBaseURL
	}
	return strings.TrimRight(base, "/")
}

func (c Config) ClientID() string {
	id := strings.TrimSpace(c.API.ClientID)
	if id == "" {
		return defaultClientID
	}
	return id
}

func (c Config) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return "info"
	}
	return level
}
