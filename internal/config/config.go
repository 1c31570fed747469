package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Slots    SlotsConfig    `toml:"slots"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к БД
type DatabaseConfig struct {
	Driver          string `toml:"driver"` // postgres | memory
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	RunMigrations   bool   `toml:"run_migrations"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SlotsConfig настройки генерации слотов
type SlotsConfig struct {
	DefaultOpeningHour int    `toml:"default_opening_hour"`
	DefaultClosingHour int    `toml:"default_closing_hour"`
	HorizonDays        int    `toml:"horizon_days"`
	MaxGenerateDays    int    `toml:"max_generate_days"`
	RefreshInterval    string `toml:"refresh_interval"` // time.ParseDuration, например "24h"
	SchedulerEnabled   bool   `toml:"scheduler_enabled"`
}

// RefreshIntervalDuration период фонового обновления горизонта слотов
func (s SlotsConfig) RefreshIntervalDuration() time.Duration {
	d, err := time.ParseDuration(s.RefreshInterval)
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}

// BookingConfig настройки жизненного цикла бронирований
type BookingConfig struct {
	StrictStatusTransitions bool `toml:"strict_status_transitions"`
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Driver:          DriverPostgres,
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Password:        "postgres",
			DBName:          "studio_booking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			RunMigrations:   true,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "studio-booking-service",
		},
		Slots: SlotsConfig{
			DefaultOpeningHour: 9,
			DefaultClosingHour: 18,
			HorizonDays:        7,
			MaxGenerateDays:    90,
			RefreshInterval:    "24h",
			SchedulerEnabled:   true,
		},
		Booking: BookingConfig{
			StrictStatusTransitions: true,
		},
	}
}

// Load читает TOML файл поверх значений по умолчанию
// Если рядом лежит .env, переменные из него подхватываются до применения overrides
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	envFile := filepath.Join(filepath.Dir(path), ".env")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT=%q is not a number", ErrInvalidConfig, v)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	switch c.Database.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("%w: database.driver must be %q or %q", ErrInvalidConfig, DriverPostgres, DriverMemory)
	}

	if c.Slots.DefaultOpeningHour < 0 || c.Slots.DefaultOpeningHour > 23 {
		return fmt.Errorf("%w: slots.default_opening_hour must be in 0..23", ErrInvalidConfig)
	}
	if c.Slots.DefaultClosingHour < 0 || c.Slots.DefaultClosingHour > 23 {
		return fmt.Errorf("%w: slots.default_closing_hour must be in 0..23", ErrInvalidConfig)
	}
	if c.Slots.HorizonDays <= 0 {
		return fmt.Errorf("%w: slots.horizon_days must be positive", ErrInvalidConfig)
	}
	if c.Slots.MaxGenerateDays < c.Slots.HorizonDays {
		return fmt.Errorf("%w: slots.max_generate_days must be >= horizon_days", ErrInvalidConfig)
	}
	if _, err := time.ParseDuration(c.Slots.RefreshInterval); err != nil {
		return fmt.Errorf("%w: slots.refresh_interval: %v", ErrInvalidConfig, err)
	}

	return nil
}
