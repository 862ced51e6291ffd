package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DB holds the relational store connection settings.
type DB struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// Config is the process configuration, sourced from the environment.
type Config struct {
	SecretKey   string
	Debug       bool
	Port        string
	CORSOrigins []string
	DB          DB
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// firstEnv returns the first non-empty value among the given variables.
// The store settings accept two naming conventions (DB_* and MYSQL_*).
func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// Load reads configuration from the environment, after loading .env if
// one is present.
func Load() Config {
	_ = godotenv.Load()

	port, err := strconv.Atoi(firstEnv("DB_PORT", "MYSQL_PORT"))
	if err != nil || port <= 0 {
		port = 3306
	}

	origins := []string{"http://localhost:8080", "http://127.0.0.1:8080"}
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Config{
		SecretKey:   getEnv("SECRET_KEY", "drone_delivery_dev_secret"),
		Debug:       os.Getenv("APP_ENV") == "development",
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: origins,
		DB: DB{
			Host:     firstEnv("DB_HOST", "MYSQL_HOST"),
			Port:     port,
			User:     firstEnv("DB_USER", "MYSQL_USER"),
			Password: firstEnv("DB_PASSWORD", "MYSQL_PASSWORD"),
			Name:     firstEnv("DB_NAME", "MYSQL_DB"),
		},
	}
}
