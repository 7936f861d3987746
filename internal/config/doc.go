// Package config handles loading the alertface TOML configuration.
//
// # Overview
//
// The watch face host needs three settings: where the paired companion
// listens, where to write the app log, and how long a single outbound send
// may take before it is reported as a timeout.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/alertface/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/alertface/config.toml
//   - Companion: 127.0.0.1:7490
//   - Log directory: ~/.local/share/alertface
//   - App log: <log_dir>/alertface.log
//   - Send timeout: 5 seconds
//
// # TOML Format
//
//	companion_addr = "127.0.0.1:7490"
//	log_dir = "~/.local/share/alertface"
//	send_timeout_seconds = 5
//
// # Path Expansion
//
// Paths starting with ~ are expanded to the user's home directory and made
// absolute. Values are trimmed before use; blank values count as missing.
//
// # Error Handling
//
// A missing file is not an error. Unreadable files and invalid TOML are
// returned wrapped ("open config", "read config", "parse config") so the CLI
// can report them before the terminal UI starts.
package config
