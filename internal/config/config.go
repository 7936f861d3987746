package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings the watch face host needs.
type Config struct {
	CompanionAddr string
	LogDir        string
	SendTimeout   time.Duration
}

const (
	defaultConfigPath    = "~/.config/alertface/config.toml"
	defaultLogDir        = "~/.local/share/alertface"
	defaultCompanionAddr = "127.0.0.1:7490"
	defaultSendTimeout   = 5 * time.Second
)

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		CompanionAddr: defaultCompanionAddr,
		LogDir:        mustExpand(defaultLogDir),
		SendTimeout:   defaultSendTimeout,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		CompanionAddr      string `toml:"companion_addr"`
		LogDir             string `toml:"log_dir"`
		SendTimeoutSeconds int    `toml:"send_timeout_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if addr := strings.TrimSpace(raw.CompanionAddr); addr != "" {
		cfg.CompanionAddr = addr
	}
	if dir := strings.TrimSpace(raw.LogDir); dir != "" {
		cfg.LogDir = mustExpand(dir)
	}
	if raw.SendTimeoutSeconds > 0 {
		cfg.SendTimeout = time.Duration(raw.SendTimeoutSeconds) * time.Second
	}

	return cfg, nil
}

// LogPath returns the path of the app log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/alertface.log")
	}
	return filepath.Join(c.LogDir, "alertface.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// expandPath resolves a leading ~ and returns an absolute path.
func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
