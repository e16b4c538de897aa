package config

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" toml:"port" validate:"gte=0,lte=65535"`
}

// MBTAConfig contains MBTA v3 API provider configuration
type MBTAConfig struct {
	BaseURL           string `yaml:"baseURL" toml:"baseURL" validate:"omitempty,url"`
	APIKey            string `yaml:"apiKey" toml:"apiKey"`
	APIKeyFile        string `yaml:"apiKeyFile" toml:"apiKeyFile"`
	RouteTypes        []int  `yaml:"routeTypes" toml:"routeTypes" validate:"dive,gte=0,lte=12"`
	RequestsPerMinute int    `yaml:"requestsPerMinute" toml:"requestsPerMinute" validate:"gte=0"`
	Concurrency       int    `yaml:"concurrency" toml:"concurrency" validate:"gte=0,lte=32"`
	TimeoutMS         int    `yaml:"timeoutMS" toml:"timeoutMS" validate:"gte=0"`
}

// GTFSConfig contains static GTFS feed configuration
type GTFSConfig struct {
	StaticURL  string `yaml:"staticURL" toml:"staticURL"` // URL or local path to a GTFS zip
	RouteTypes []int  `yaml:"routeTypes" toml:"routeTypes" validate:"dive,gte=0,lte=12"`
	TimeoutMS  int    `yaml:"timeoutMS" toml:"timeoutMS" validate:"gte=0"`
}

// CacheConfig contains snapshot and route cache configuration
type CacheConfig struct {
	SnapshotPath   string `yaml:"snapshotPath" toml:"snapshotPath"`
	MaxAgeMinutes  int    `yaml:"maxAgeMinutes" toml:"maxAgeMinutes" validate:"gte=0"`
	RouteCacheSize int    `yaml:"routeCacheSize" toml:"routeCacheSize" validate:"gte=0"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level  string `yaml:"level" toml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `yaml:"format" toml:"format" validate:"omitempty,oneof=text json"`
}

// Feed represents a single named data source
type Feed struct {
	Name     string     `yaml:"name" toml:"name" validate:"required"`
	Provider string     `yaml:"provider" toml:"provider" validate:"required,oneof=mbta gtfs"`
	MBTA     MBTAConfig `yaml:"mbta" toml:"mbta"`
	GTFS     GTFSConfig `yaml:"gtfs" toml:"gtfs"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig `yaml:"server" toml:"server"`
	Provider string       `yaml:"provider" toml:"provider" validate:"omitempty,oneof=mbta gtfs"`
	MBTA     MBTAConfig   `yaml:"mbta" toml:"mbta"`
	GTFS     GTFSConfig   `yaml:"gtfs" toml:"gtfs"`
	Cache    CacheConfig  `yaml:"cache" toml:"cache"`
	Log      LogConfig    `yaml:"log" toml:"log"`
	Feeds    []Feed       `yaml:"feeds" toml:"feeds" validate:"dive"`
}
