package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	JWT     JWTConfig
	Raffle  RaffleConfig
	Log     LogConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int // seconds
}

// RaffleConfig holds draw defaults
type RaffleConfig struct {
	DefaultWinnerCount int
	RandomSource       string // crypto or seeded
	CacheSize          int    // completed raffle summaries kept in memory
}

// LogConfig holds logging configuration. An empty File logs to stderr.
type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Load reads config.yaml from the given directories (default "." and
// "./config"), then .env, then environment variables such as MONGODB_URI or
// RAFFLE_DEFAULTWINNERCOUNT.
func Load(paths ...string) (*Config, error) {
	// A missing .env is fine; the process environment is used instead.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("Server.Port", "4000")
	v.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	v.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	v.SetDefault("MongoDB.Database", "nft-raffle")
	v.SetDefault("JWT.Secret", "")
	v.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	v.SetDefault("Raffle.DefaultWinnerCount", 15)
	v.SetDefault("Raffle.RandomSource", "crypto")
	v.SetDefault("Raffle.CacheSize", 128)
	v.SetDefault("Log.Level", "info")
	v.SetDefault("Log.File", "")
	v.SetDefault("Log.MaxSizeMB", 50)
	v.SetDefault("Log.MaxBackups", 5)
	v.SetDefault("Log.MaxAgeDays", 30)
}
