// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml (or config.toml) and validated using
// struct tags. The package supports multiple feeds and allows feed selection
// by name. The MBTA API key is resolved separately by ResolveAPIKey and handed
// to the provider; nothing in the core reads it.
package config
