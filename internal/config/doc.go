// Package config handles loading and parsing gantry configuration files.
//
// # Overview
//
// This package reads gantry's TOML configuration to discover the OctoPrint
// server address, the API key, the polling cadence, and log file locations.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/gantry/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//  5. Apply environment variable overrides last
//
// A .env file in the working directory is loaded before the overrides are
// read, so development setups can keep the API key out of the shell profile.
//
// # Default Values
//
//   - Config file: ~/.config/gantry/config.toml
//   - Server: http://octopi.local
//   - Poll interval: 2s
//   - Log directory: ~/.local/share/gantry/logs
//   - Application log: <log_dir>/gantry.log
//
// # TOML Format
//
// Example gantry config.toml:
//
//	base_url = "http://octopi.local"
//	api_key = "0123456789ABCDEF"
//	poll_interval = "2s"
//	log_dir = "~/.local/share/gantry/logs"
//
// All fields are optional. Tilde expansion is performed automatically.
// poll_interval accepts extended duration syntax such as "1m30s" or "1h".
//
// # Environment Overrides
//
//   - OCTOPRINT_BASE_URL overrides base_url
//   - OCTOPRINT_API_KEY overrides api_key
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - Invalid or non-positive poll intervals
//
// Missing config files are NOT an error - defaults are used instead.
// This allows gantry to work out-of-the-box against a default OctoPi install.
//
// # Design Philosophy
//
// The config package is read-only and stateless - it loads configuration
// once at startup and returns an immutable Config struct. No global state
// or singleton patterns are used.
package config
