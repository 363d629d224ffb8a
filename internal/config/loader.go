package config

import (
	"fmt"

	"github.com/mpetrov/chathub/internal/db"
	"github.com/spf13/viper"
)

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr          string
	AllowedOrigin string
}

// AuthConfig holds token validation settings.
type AuthConfig struct {
	JWTSecret string
}

// Config is the full application configuration.
type Config struct {
	Database db.Config
	Server   ServerConfig
	Auth     AuthConfig
}

// DefaultConfig returns the configuration used when no file or env vars
// override it.
func DefaultConfig() Config {
	return Config{
		Database: db.DefaultConfig(),
		Server: ServerConfig{
			Addr:          ":8080",
			AllowedOrigin: "http://localhost:3000",
		},
		Auth: AuthConfig{
			JWTSecret: "dev-secret-change-me",
		},
	}
}

// Load reads config.yaml from configPath, with environment overrides like
// CHATHUB_DATABASE_HOST mapped onto the nested keys.
func Load(configPath string) (Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AutomaticEnv() // allow environment overrides
	v.SetEnvPrefix("CHATHUB")

	// Map nested keys to flat env vars
	v.BindEnv("database.host")
	v.BindEnv("database.port")
	v.BindEnv("database.user")
	v.BindEnv("database.password")
	v.BindEnv("database.dbname")
	v.BindEnv("database.sslmode")
	v.BindEnv("server.addr")
	v.BindEnv("server.allowed_origin")
	v.BindEnv("auth.jwt_secret")

	if err := v.ReadInConfig(); err != nil {
		// Config file not found? Just log it, use defaults + env
		fmt.Println("No config.yaml found, using defaults and env vars")
	} else {
		fmt.Println("Loaded config.yaml")
	}

	// Override defaults if values exist
	if v.IsSet("database.host") {
		cfg.Database.Host = v.GetString("database.host")
	}
	if v.IsSet("database.port") {
		cfg.Database.Port = v.GetInt("database.port")
	}
	if v.IsSet("database.user") {
		cfg.Database.User = v.GetString("database.user")
	}
	if v.IsSet("database.password") {
		cfg.Database.Password = v.GetString("database.password")
	}
	if v.IsSet("database.dbname") {
		cfg.Database.DBName = v.GetString("database.dbname")
	}
	if v.IsSet("database.sslmode") {
		cfg.Database.SSLMode = v.GetString("database.sslmode")
	}
	if v.IsSet("server.addr") {
		cfg.Server.Addr = v.GetString("server.addr")
	}
	if v.IsSet("server.allowed_origin") {
		cfg.Server.AllowedOrigin = v.GetString("server.allowed_origin")
	}
	if v.IsSet("auth.jwt_secret") {
		cfg.Auth.JWTSecret = v.GetString("auth.jwt_secret")
	}

	return cfg, nil
}
