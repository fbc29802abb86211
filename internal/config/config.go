package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Session  SessionConfig
	Admin    AdminConfig
	Mail     MailConfig
	Storage  StorageConfig
	BotCheck BotCheckConfig
	Event    EventConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	Environment  string
	AllowedHosts []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// SessionConfig holds admin session configuration
type SessionConfig struct {
	Secret string
}

// AdminConfig holds the admin directory input.
// Directory is a string of ";;"-separated entries, each entry six
// "|"-separated fields: email|role|name|question|answer|pin.
type AdminConfig struct {
	Directory string
}

// MailConfig holds outbound email configuration
type MailConfig struct {
	Enabled bool
	Domain  string
	APIKey  string
	Sender  string
}

// StorageConfig holds blob storage configuration for uploads
type StorageConfig struct {
	Bucket        string
	Region        string
	PublicBaseURL string
}

// BotCheckConfig holds bot-detection provider configuration
type BotCheckConfig struct {
	Enabled  bool
	Endpoint string
	APIKey   string
}

// EventConfig holds per-edition event settings
type EventConfig struct {
	TicketPrefix string
}

// DefaultSessionSecret is used when no secret is configured. Deploying with
// it makes every session forgeable; main logs a warning when it is in effect.
const DefaultSessionSecret = "techday-dev-secret-change-me"

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Read configuration
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Unmarshal configuration
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// IsProduction reports whether the server runs with production settings
// (secure cookies, release-mode gin).
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.Environment", "development")
	viper.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "techday")
	viper.SetDefault("Session.Secret", DefaultSessionSecret)
	viper.SetDefault("Admin.Directory", "")
	viper.SetDefault("Mail.Enabled", false)
	viper.SetDefault("Mail.Sender", "Tech Day <tickets@techday.example>")
	viper.SetDefault("Storage.Region", "us-east-1")
	viper.SetDefault("BotCheck.Enabled", true)
	viper.SetDefault("Event.TicketPrefix", "TD26")
	viper.SetDefault("LogLevel", "info")
}
