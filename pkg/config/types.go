package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string            `mapstructure:"environment"`
	Server       ServerConfig      `mapstructure:"server"`
	Database     DatabaseConfig    `mapstructure:"database"`
	Storage      StorageConfig     `mapstructure:"storage"`
	Media        MediaConfig       `mapstructure:"media"`
	Annotations  AnnotationsConfig `mapstructure:"annotations"`
	Playback     PlaybackConfig    `mapstructure:"playback"`
	RateLimiting RateLimitConfig   `mapstructure:"rate_limiting"`
	Security     SecurityConfig    `mapstructure:"security"`
	Logging      LoggingConfig     `mapstructure:"logging"`
	GraphQL      GraphQLConfig     `mapstructure:"graphql"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
}

// DatabaseConfig contains database settings.
// DSN wins over Path when set; its prefix selects the driver.
type DatabaseConfig struct {
	DSN                   string        `mapstructure:"dsn"`
	Path                  string        `mapstructure:"path"`
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	LogQueries            bool          `mapstructure:"log_queries"`
	AutoMigrate           bool          `mapstructure:"auto_migrate"`
}

// StorageConfig contains on-disk media locations
type StorageConfig struct {
	VideosDir   string `mapstructure:"videos_dir"`
	SegmentsDir string `mapstructure:"segments_dir"`
}

// MediaConfig contains accepted media formats
type MediaConfig struct {
	AllowedTypes      []string `mapstructure:"allowed_types"`
	AllowedExtensions []string `mapstructure:"allowed_extensions"`
	URLPrefix         string   `mapstructure:"url_prefix"`
}

// AnnotationsConfig contains annotation defaults
type AnnotationsConfig struct {
	DefaultSpan  float64 `mapstructure:"default_span"` // Seconds
	DefaultType  string  `mapstructure:"default_type"`
	DefaultColor string  `mapstructure:"default_color"`
}

// PlaybackConfig contains player and session settings
type PlaybackConfig struct {
	AutoAdvanceThreshold   float64       `mapstructure:"auto_advance_threshold"` // Seconds before segment end
	MaxLoadAttempts        int           `mapstructure:"max_load_attempts"`
	SessionTTL             time.Duration `mapstructure:"session_ttl"`
	SessionCleanupInterval time.Duration `mapstructure:"session_cleanup_interval"`
	MaxSessions            int           `mapstructure:"max_sessions"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled   bool           `mapstructure:"enabled"`
	Endpoints map[string]int `mapstructure:"endpoints"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS  bool     `mapstructure:"enable_cors"`
	CORSOrigins []string `mapstructure:"cors_origins"`
	CORSMethods []string `mapstructure:"cors_methods"`
	CORSHeaders []string `mapstructure:"cors_headers"`
	EnableGzip  bool     `mapstructure:"enable_gzip"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text|json
}

// GraphQLConfig contains GraphQL endpoint settings
type GraphQLConfig struct {
	Path           string `mapstructure:"path"`
	MaxDepth       int    `mapstructure:"max_depth"`
	MaxParallelism int    `mapstructure:"max_parallelism"`
}
