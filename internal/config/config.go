package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	AppEnv             string
	AppName            string
	AppVersion         string
	AppPort            string
	TrustedProxies     []string
	CORSAllowedOrigins []string
	TranslationFolder  string
	SeedTodos          bool
	ShutdownTimeout    time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppEnv:             getEnv("APP_ENV", EnvProduction),
		AppName:            getEnv("APP_NAME", "todolist"),
		AppVersion:         getEnv("APP_VERSION", "dev"),
		AppPort:            getEnv("APP_PORT", "3000"),
		TrustedProxies:     parseList(os.Getenv("TRUSTED_PROXIES")),
		CORSAllowedOrigins: parseList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		TranslationFolder:  getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		SeedTodos:          getBool("SEED_TODOS", true),
		ShutdownTimeout:    getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == EnvDevelopment
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
