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

// Config captures everything shorty reads from its config file.
type Config struct {
	APIURL         string
	RequestTimeout time.Duration
	Theme          string
	LogPath        string
	LogLevel       string

	// KeepErrorOnEdit leaves a failure message on screen while the user edits
	// the URL. The default clears it on the first keystroke.
	KeepErrorOnEdit bool
	// AllowOverlappingSubmits lets a new submission start while one is still
	// in flight. The default ignores enter until the pending request settles.
	AllowOverlappingSubmits bool
}

const (
	defaultConfigPath     = "~/.config/shorty/config.toml"
	defaultAPIURL         = "http://127.0.0.1:8080"
	defaultTimeoutSeconds = 10
	defaultTheme          = "Nightfox"
	defaultLogPath        = "~/.local/state/shorty/shorty.log"
	defaultLogLevel       = "info"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIURL:         defaultAPIURL,
		RequestTimeout: defaultTimeoutSeconds * time.Second,
		Theme:          defaultTheme,
		LogPath:        mustExpand(defaultLogPath),
		LogLevel:       defaultLogLevel,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL                  string `toml:"api_url"`
		RequestTimeoutSeconds   int    `toml:"request_timeout_seconds"`
		Theme                   string `toml:"theme"`
		LogPath                 string `toml:"log_path"`
		LogLevel                string `toml:"log_level"`
		KeepErrorOnEdit         bool   `toml:"keep_error_on_edit"`
		AllowOverlappingSubmits bool   `toml:"allow_overlapping_submits"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	cfg.KeepErrorOnEdit = raw.KeepErrorOnEdit
	cfg.AllowOverlappingSubmits = raw.AllowOverlappingSubmits

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if raw.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeoutSeconds) * time.Second
	}
	if v := strings.TrimSpace(raw.Theme); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(raw.LogPath); v != "" {
		cfg.LogPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	return cfg, nil
}

// DefaultPath returns the config location used when none is given.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
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
