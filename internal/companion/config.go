package companion

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/five82/alertface/internal/appmsg"
)

// DefaultListen matches the watch's default companion_addr.
const DefaultListen = "127.0.0.1:7490"

// Config holds the companion simulator settings.
type Config struct {
	Listen   string `yaml:"listen"`
	FailWith string `yaml:"fail_with"` // result name, e.g. "BUSY" or "MSG_NOT_CONNECTED"

	FailResult appmsg.Result `yaml:"-"` // Derived
}

// DefaultConfig returns a companion that acknowledges every message.
func DefaultConfig() Config {
	return Config{Listen: DefaultListen, FailResult: appmsg.OK}
}

// LoadConfig reads YAML from path. An empty path or a missing file yields
// the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config YAML from %s: %w", path, err)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	c.Listen = strings.TrimSpace(c.Listen)
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	name := strings.ToUpper(strings.TrimSpace(c.FailWith))
	if name == "" {
		c.FailResult = appmsg.OK
		return nil
	}
	code, ok := appmsg.ParseResult(name)
	if !ok {
		return fmt.Errorf("fail_with %q is not a known result", c.FailWith)
	}
	c.FailWith = name
	c.FailResult = code
	return nil
}
