package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrDatabaseURLNotSet возвращается, когда переменная окружения DATABASE_URL не задана
var ErrDatabaseURLNotSet = errors.New("config: DATABASE_URL environment variable is required")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Database DatabaseConfig `toml:"database"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// DatabaseConfig настройки connection pool (время жизни в секундах)
// Строка подключения не хранится в файле: она приходит из окружения
type DatabaseConfig struct {
	MaxOpenConns    int `toml:"max_open_conns"`
	MaxIdleConns    int `toml:"max_idle_conns"`
	ConnMaxLifetime int `toml:"conn_max_lifetime"`

	dsn string
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return d.dsn
}

// Load читает конфигурацию из TOML файла
// DSN базы данных берётся из обязательной переменной окружения DATABASE_URL
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, ErrDatabaseURLNotSet
	}
	cfg.Database.dsn = dsn

	return &cfg, nil
}
