package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort              = 16181
	DefaultMBTABaseURL       = "https://api-v3.mbta.com"
	DefaultRequestsPerMinute = 60
	DefaultConcurrency       = 4
	DefaultTimeoutMS         = 15000
	DefaultMaxAgeMinutes     = 24 * 60
	DefaultRouteCacheSize    = 1024

	// APIKeyEnv overrides any configured key.
	APIKeyEnv = "MBTA_API_KEY"
)

// DefaultRouteTypes selects light rail (0) and heavy rail (1) lines.
var DefaultRouteTypes = []int{0, 1}

// DefaultPaths are searched in order when no config path is given.
var DefaultPaths = []string{"config.yml", "config.yaml", "config.toml"}

// LoadAppConfigFrom reads the first existing path, decodes it by extension,
// validates it and applies defaults. A path that exists but cannot be read
// is an error; when none exist the error wraps fs.ErrNotExist.
func LoadAppConfigFrom(paths ...string) (AppConfig, error) {
	var data []byte
	var used string
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			used = p
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return AppConfig{}, fmt.Errorf("read %s: %w", p, err)
		}
	}
	if err != nil {
		return AppConfig{}, err
	}
	if used == "" {
		return AppConfig{}, errors.New("no config path given")
	}

	var cfg AppConfig
	switch strings.ToLower(filepath.Ext(used)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("decode %s: %w", used, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, fmt.Errorf("decode %s: %w", used, err)
		}
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("validate %s: %w", used, err)
	}
	ApplyDefaults(&cfg)
	return cfg, nil
}

// Validate checks struct tags on the whole configuration.
func Validate(cfg AppConfig) error {
	v := validator.New()
	return v.Struct(cfg)
}

// ApplyDefaults fills unset values, including those of every feed.
func ApplyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Provider == "" {
		cfg.Provider = "mbta"
	}
	applyMBTADefaults(&cfg.MBTA)
	applyGTFSDefaults(&cfg.GTFS)
	for i := range cfg.Feeds {
		applyMBTADefaults(&cfg.Feeds[i].MBTA)
		applyGTFSDefaults(&cfg.Feeds[i].GTFS)
	}
	if cfg.Cache.MaxAgeMinutes == 0 {
		cfg.Cache.MaxAgeMinutes = DefaultMaxAgeMinutes
	}
	if cfg.Cache.RouteCacheSize == 0 {
		cfg.Cache.RouteCacheSize = DefaultRouteCacheSize
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

func applyMBTADefaults(m *MBTAConfig) {
	if m.BaseURL == "" {
		m.BaseURL = DefaultMBTABaseURL
	}
	if len(m.RouteTypes) == 0 {
		m.RouteTypes = append([]int(nil), DefaultRouteTypes...)
	}
	if m.RequestsPerMinute == 0 {
		m.RequestsPerMinute = DefaultRequestsPerMinute
	}
	if m.Concurrency == 0 {
		m.Concurrency = DefaultConcurrency
	}
	if m.TimeoutMS == 0 {
		m.TimeoutMS = DefaultTimeoutMS
	}
}

func applyGTFSDefaults(g *GTFSConfig) {
	if len(g.RouteTypes) == 0 {
		g.RouteTypes = append([]int(nil), DefaultRouteTypes...)
	}
	if g.TimeoutMS == 0 {
		g.TimeoutMS = DefaultTimeoutMS
	}
}

// Default returns a configuration with every default applied, used when no
// config file exists.
func Default() AppConfig {
	var cfg AppConfig
	ApplyDefaults(&cfg)
	return cfg
}

// SelectFeed chooses a feed by name; fallback to first; if none, use top-level settings.
func SelectFeed(cfg AppConfig, name string) Feed {
	if name != "" {
		for _, f := range cfg.Feeds {
			if f.Name == name {
				return f
			}
		}
	}
	if len(cfg.Feeds) > 0 {
		return cfg.Feeds[0]
	}
	return Feed{Name: "default", Provider: cfg.Provider, MBTA: cfg.MBTA, GTFS: cfg.GTFS}
}

// ResolveAPIKey returns the MBTA API key: the environment variable first,
// then the inline key, then the trimmed contents of the key file. An empty
// key is valid; the API then applies its anonymous rate limit.
func ResolveAPIKey(m MBTAConfig) (string, error) {
	if k := strings.TrimSpace(os.Getenv(APIKeyEnv)); k != "" {
		return k, nil
	}
	if k := strings.TrimSpace(m.APIKey); k != "" {
		return k, nil
	}
	if m.APIKeyFile == "" {
		return "", nil
	}
	b, err := os.ReadFile(m.APIKeyFile)
	if err != nil {
		return "", fmt.Errorf("read api key file: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}
