package config

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultHost      = "127.0.0.1"
	defaultPort      = "8080"
	defaultAssetsDir = "./public/assets"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	Host               string
	Port               string
	AssetsDir          string
	CORSAllowedOrigins []string
	LogLevel           slog.Level
}

// Addr возвращает адрес для прослушивания в виде host:port.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	// Загружаем .env файл, если он есть. Ошибку не считаем фатальной.
	_ = godotenv.Load()

	return FromEnv()
}

// FromEnv читает конфигурацию только из окружения процесса.
func FromEnv() (*Config, error) {
	host := getEnvOrDefault("HOST", defaultHost)

	port := getEnvOrDefault("PORT", defaultPort)
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT environment variable: %w", err)
	}
	if portNum <= 0 || portNum > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535, got %d", portNum)
	}

	level, err := parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Host:               host,
		Port:               port,
		AssetsDir:          getEnvOrDefault("ASSETS_DIR", defaultAssetsDir),
		CORSAllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           level,
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL environment variable: %w", err)
	}
	return level, nil
}
