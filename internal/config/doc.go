// Package config handles loading and parsing the shorty configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/shorty/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/shorty/config.toml
//   - Shortening service: http://127.0.0.1:8080
//   - Request timeout: 10 seconds
//   - Theme: Nightfox
//   - Log file: ~/.local/state/shorty/shorty.log
//   - Log level: info
//
// # TOML Format
//
//	api_url = "http://127.0.0.1:8080"
//	request_timeout_seconds = 10
//	theme = "Slate"
//	log_path = "~/.local/state/shorty/shorty.log"
//	log_level = "debug"
//
//	# Form behaviour switches
//	keep_error_on_edit = false
//	allow_overlapping_submits = false
//
// # Error Handling
//
// A missing file is not an error. Unreadable files and invalid TOML are
// returned wrapped with "open config", "read config" or "parse config" so the
// caller can surface them before the UI starts.
package config
