package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Addr        string
	DBPath      string
	LogLevel    string
	LogColors   bool
	Timezone    string
	Language    string
	CORSOrigins []string
}

var validLevels = map[string]bool{
	"DEBUG": true, "INFO": true, "WARN": true, "WARNING": true, "ERROR": true,
}

var validLanguages = map[string]bool{"en": true, "ja": true}

// Load reads configuration from a .env file (if present), an optional
// tracker.{yaml,toml,json} in the working directory and environment variables,
// applying defaults when values are missing.
func Load() Config {
	// Ignore error so the app still starts when .env is absent.
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) Config {
	v.SetDefault("ADDR", "127.0.0.1:8080")
	v.SetDefault("DB_PATH", "match_history.db")
	v.SetDefault("LOG_LEVEL", "INFO")
	v.SetDefault("LOG_COLORS", true)
	v.SetDefault("TIMEZONE", "Local")
	v.SetDefault("LANGUAGE", "en")
	v.SetDefault("CORS_ORIGINS", "")

	v.SetConfigName("tracker")
	v.AddConfigPath(".")
	// A missing or unreadable config file leaves defaults and env in place.
	_ = v.ReadInConfig()
	v.AutomaticEnv()

	return Config{
		Addr:        v.GetString("ADDR"),
		DBPath:      v.GetString("DB_PATH"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogColors:   v.GetBool("LOG_COLORS"),
		Timezone:    v.GetString("TIMEZONE"),
		Language:    strings.ToLower(v.GetString("LANGUAGE")),
		CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if !validLevels[strings.ToUpper(c.LogLevel)] {
		return fmt.Errorf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR (got %q)", c.LogLevel)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("TIMEZONE %q is not a known location: %w", c.Timezone, err)
	}
	if !validLanguages[c.Language] {
		return fmt.Errorf("LANGUAGE must be en or ja (got %q)", c.Language)
	}
	return nil
}

// Location resolves the timezone that decides which calendar day is "today".
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}
