// internal/config/config.go
package config

import (
	"os"
	"time"
)

type Config struct {
	ServerPort   string
	CatalogFile  string
	JWTSecret    string
	JWTExpiresIn time.Duration
	BotToken     string
}

func MustLoad() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Путь до YAML-каталога; пусто — используем встроенный
	catalogFile := os.Getenv("CATALOG_FILE")

	// ✅ JWT-настройки
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-super-secret-jwt-key-change-in-prod"
	}

	jwtExpiresIn := 24 * time.Hour
	if expiresInStr := os.Getenv("JWT_EXPIRES_IN"); expiresInStr != "" {
		if d, err := time.ParseDuration(expiresInStr); err == nil {
			jwtExpiresIn = d
		}
	}

	return Config{
		ServerPort:   ":" + port,
		CatalogFile:  catalogFile,
		JWTSecret:    jwtSecret,
		JWTExpiresIn: jwtExpiresIn,
		BotToken:     os.Getenv("TELEGRAM_BOT_TOKEN"),
	}
}
