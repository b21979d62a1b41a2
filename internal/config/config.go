package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

const (
	DefaultPort      = "8000"
	DefaultCredsFile = "creds.json"
)

type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Port         string
	CredsFile    string
	LogLevel     logrus.Level
}

// Load reads the configuration from the environment. Nothing is required:
// missing OAuth values only surface once Drive is called.
func Load() *Config {
	cfg := &Config{
		ClientID:     os.Getenv("CLIENT_ID"),
		ClientSecret: os.Getenv("CLIENT_SECRET"),
		RedirectURI:  os.Getenv("REDIRECT_URI"),
		Port:         getEnv("PORT", DefaultPort),
		CredsFile:    getEnv("CREDS_FILE", DefaultCredsFile),
		LogLevel:     logrus.InfoLevel,
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		level, err := logrus.ParseLevel(val)
		if err != nil {
			logrus.WithField("value", val).Warn("invalid LOG_LEVEL, using default")
		} else {
			cfg.LogLevel = level
		}
	}

	return cfg
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
