package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// SqliteConfig holds settings for the in-memory SQLite backend with
// periodic disk dumps.
type SqliteConfig struct {
	DumpPath     string        `json:"dumpPath" mapstructure:"dumpPath"`
	DumpInterval time.Duration `json:"dumpInterval" mapstructure:"dumpInterval"`
}

// StreamConfig holds settings for the WebSocket dashboard mirror.
type StreamConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	URL     string `json:"url" mapstructure:"url"`
	Secret  string `json:"secret" mapstructure:"secret"`
}

// StorageConfig selects and configures the feedback store backend.
type StorageConfig struct {
	Type   string       `json:"type" mapstructure:"type"`
	Sqlite SqliteConfig `json:"sqlite" mapstructure:"sqlite"`
	Stream StreamConfig `json:"stream" mapstructure:"stream"`
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	// Set default values
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./coachlogs")

	viper.SetDefault("llm.endpoint", "http://localhost:11434")
	viper.SetDefault("llm.apiKey", "")
	viper.SetDefault("llm.model", "gpt-4o-mini")
	viper.SetDefault("llm.timeoutSeconds", 60)

	viper.SetDefault("validation.maxWords", 500)

	viper.SetDefault("storage.type", "memory")
	viper.SetDefault("storage.sqlite.dumpPath", "./feedback.db")
	viper.SetDefault("storage.sqlite.dumpInterval", "30s")
	viper.SetDefault("storage.stream.enabled", false)
	viper.SetDefault("storage.stream.url", "ws://localhost:5001/stream")
	viper.SetDefault("storage.stream.secret", "")

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "posecoach")

	viper.SetDefault("influx.enabled", false)
	viper.SetDefault("influx.host", "localhost")
	viper.SetDefault("influx.port", "8086")
	viper.SetDefault("influx.protocol", "http")
	viper.SetDefault("influx.token", "")
	viper.SetDefault("influx.org", "posecoach-metrics")

	viper.SetDefault("otel.enabled", false)
	viper.SetDefault("otel.endpoint", "")
	viper.SetDefault("otel.insecure", true)

	viper.SetDefault("graylog.enabled", false)
	viper.SetDefault("graylog.address", "localhost:12201")

	viper.SetConfigName("posecoach.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// Storage returns the storage configuration section.
func Storage() StorageConfig {
	return StorageConfig{
		Type: viper.GetString("storage.type"),
		Sqlite: SqliteConfig{
			DumpPath:     viper.GetString("storage.sqlite.dumpPath"),
			DumpInterval: viper.GetDuration("storage.sqlite.dumpInterval"),
		},
		Stream: StreamConfig{
			Enabled: viper.GetBool("storage.stream.enabled"),
			URL:     viper.GetString("storage.stream.url"),
			Secret:  viper.GetString("storage.stream.secret"),
		},
	}
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
