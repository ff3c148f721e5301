// Package config handles loading and parsing the evopanel configuration file.
//
// # Overview
//
// This package reads evopanel's TOML configuration to discover the evo
// daemon's admin endpoint and the panel's refresh cadence. The daemon
// owns its own configuration (persisted on its side); this file only
// tells the panel where to find it.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/evopanel/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/evopanel/config.toml
//   - Admin endpoint: 127.0.0.1:4950
//   - Poll interval: 2 seconds
//
// # TOML Format
//
// Example config.toml:
//
//	admin_bind = "127.0.0.1:4950"
//	poll_seconds = 2
//
// Both fields are optional. Tilde expansion is performed on the config
// path automatically.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Missing config files are NOT an error - defaults are used instead, so
// the panel works out-of-the-box against a daemon on the default bind.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//		log.Fatalf("failed to load config: %v", err)
//	}
//	client, err := backend.NewClient(cfg.AdminBind)
//
// The config package is read-only and stateless - it loads configuration
// once at startup and returns an immutable Config struct.
package config
