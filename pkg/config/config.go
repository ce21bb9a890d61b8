package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// DefaultConfigPath is where Init looks for a settings file
const DefaultConfigPath = "./config/settings.yaml"

// EnvPrefix is prepended to environment overrides (ANNOTATOR_SERVER_PORT etc.)
const EnvPrefix = "ANNOTATOR"

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		path := os.Getenv(EnvPrefix + "_CONFIG")
		if path == "" {
			path = DefaultConfigPath
		}
		initErr = Load(path)
	})

	return initErr
}

// Load reads defaults, the optional config file at path, and environment
// overrides into the global viper instance. A missing file is not an error.
func Load(path string) error {
	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configPath := filepath.Clean(path)
	viper.SetConfigFile(configPath)

	if err := viper.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) && !os.IsNotExist(err) {
			return fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
		// Config file doesn't exist, defaults and env vars apply
	}

	if err := validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Reset clears all loaded configuration (for testing)
func Reset() {
	viper.Reset()
	once = sync.Once{}
	initErr = nil
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Get returns a config value by key using Viper directly
func Get(key string) any {
	return viper.Get(key)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetFloat64 returns a float config value
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// GetStringSlice returns a string slice config value
func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.dsn") == "" && viper.GetString("database.path") == "" {
		return fmt.Errorf("either database.dsn or database.path must be set")
	}

	// Auto-correct values the player cannot work with
	if viper.GetFloat64("annotations.default_span") <= 0 {
		viper.Set("annotations.default_span", 30.0)
	}
	if viper.GetInt("playback.max_load_attempts") <= 0 {
		viper.Set("playback.max_load_attempts", 3)
	}
	if viper.GetFloat64("playback.auto_advance_threshold") < 0 {
		viper.Set("playback.auto_advance_threshold", 0.5)
	}
	if viper.GetDuration("playback.session_ttl") <= 0 {
		viper.Set("playback.session_ttl", 30*time.Minute)
	}

	switch strings.ToLower(viper.GetString("logging.format")) {
	case "json", "text":
	default:
		viper.Set("logging.format", "text")
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.DSN == "" && c.Database.Path == "" {
		return fmt.Errorf("either database.dsn or database.path must be set")
	}

	if c.Annotations.DefaultSpan <= 0 {
		c.Annotations.DefaultSpan = 30
	}

	if c.Playback.MaxLoadAttempts <= 0 {
		c.Playback.MaxLoadAttempts = 3
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.max_body_bytes", 4194304)

	// Database defaults
	viper.SetDefault("database.dsn", "")
	viper.SetDefault("database.path", "./data/annotator.db")
	viper.SetDefault("database.max_connections", 10)
	viper.SetDefault("database.max_idle_connections", 5)
	viper.SetDefault("database.connection_max_lifetime", 30*time.Minute)
	viper.SetDefault("database.log_queries", false)
	viper.SetDefault("database.auto_migrate", true)

	// Storage defaults
	viper.SetDefault("storage.videos_dir", "./videos")
	viper.SetDefault("storage.segments_dir", "./videos/production")

	// Media defaults
	viper.SetDefault("media.allowed_types", []string{
		"video/mp4",
		"video/avi",
		"video/mov",
		"video/wmv",
		"video/flv",
		"video/webm",
	})
	viper.SetDefault("media.allowed_extensions", []string{".mp4", ".webm", ".mov", ".ts", ".m4s"})
	viper.SetDefault("media.url_prefix", "/api/v1/media")

	// Annotation defaults
	viper.SetDefault("annotations.default_span", 30.0)
	viper.SetDefault("annotations.default_type", "chapter")
	viper.SetDefault("annotations.default_color", "#3b82f6")

	// Playback defaults
	viper.SetDefault("playback.auto_advance_threshold", 0.5)
	viper.SetDefault("playback.max_load_attempts", 3)
	viper.SetDefault("playback.session_ttl", 30*time.Minute)
	viper.SetDefault("playback.session_cleanup_interval", 5*time.Minute)
	viper.SetDefault("playback.max_sessions", 1000)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.endpoints", map[string]int{
		"graphql":  20,
		"media":    50,
		"sessions": 50,
		"default":  10,
	})

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.cors_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	viper.SetDefault("security.cors_headers", []string{"Content-Type", "Authorization", "Range"})
	viper.SetDefault("security.enable_gzip", true)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")

	// GraphQL defaults
	viper.SetDefault("graphql.path", "/graphql")
	viper.SetDefault("graphql.max_depth", 10)
	viper.SetDefault("graphql.max_parallelism", 10)
}
