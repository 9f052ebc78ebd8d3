package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

var cfgFile = "othello/config.yaml"

// Config is a nested key-value store with dot-path access:
//
//	cfg.GetInt("mcts.iterations", 400)
//	cfg.GetString("expert.name", "alphabeta")
type Config struct {
	data map[string]any
}

func New() *Config {
	return &Config{data: map[string]any{}}
}

// Load reads a YAML config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	data := map[string]any{}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &Config{data: data}, nil
}

// Discover looks the config file up in the XDG config paths. A missing
// file is not an error: every setting has a fallback.
func Discover() (*Config, error) {
	path, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		return New(), nil
	}
	return Load(path)
}

// Get walks the dot-separated path and returns the value there, or
// fallback when any segment is missing.
func (c *Config) Get(key string, fallback any) any {
	if key == "" {
		return c.data
	}

	var cur any = c.data
	for _, part := range strings.Split(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return fallback
		}
		if cur, ok = m[part]; !ok {
			return fallback
		}
	}
	return cur
}

func (c *Config) GetInt(key string, fallback int) int {
	switch v := c.Get(key, nil).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return fallback
	}
}

func (c *Config) GetFloat(key string, fallback float64) float64 {
	switch v := c.Get(key, nil).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return fallback
	}
}

func (c *Config) GetString(key string, fallback string) string {
	if v, ok := c.Get(key, nil).(string); ok {
		return v
	}
	return fallback
}

func (c *Config) GetBool(key string, fallback bool) bool {
	if v, ok := c.Get(key, nil).(bool); ok {
		return v
	}
	return fallback
}

// Set stores a value at the dot-separated path, creating intermediate
// maps as needed.
func (c *Config) Set(key string, value any) {
	parts := strings.Split(key, ".")
	cur := c.data
	for _, part := range parts[:len(parts)-1] {
		next, ok := cur[part].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[part] = next
		}
		cur = next
	}
	cur[parts[len(parts)-1]] = value
}
