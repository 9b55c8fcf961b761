package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-TableBookingService/internal/domain"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Booking    BookingConfig    `toml:"booking"`
	Expiry     ExpiryConfig     `toml:"expiry"`
	Restaurant RestaurantConfig `toml:"restaurant"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig политика расчета слотов и статусов столов
type BookingConfig struct {
	SlotIntervalMinutes    int   `toml:"slot_interval_minutes"`
	MinLeadMinutes         int   `toml:"min_lead_minutes"`
	MinGapMinutes          int   `toml:"min_gap_minutes"`
	MinStayMinutes         int   `toml:"min_stay_minutes"`
	LookAheadMinutes       int   `toml:"look_ahead_minutes"`
	PendingTTLSeconds      int   `toml:"pending_ttl_seconds"`
	ConflictHorizonMinutes int   `toml:"conflict_horizon_minutes"`
	PendingBlocksSlots     *bool `toml:"pending_blocks_slots"`
}

// Policy конвертирует секцию в доменную политику
func (c BookingConfig) Policy() domain.BookingPolicy {
	policy := domain.BookingPolicy{
		SlotIntervalMinutes:    c.SlotIntervalMinutes,
		MinLeadMinutes:         c.MinLeadMinutes,
		MinGapMinutes:          c.MinGapMinutes,
		MinStayMinutes:         c.MinStayMinutes,
		LookAheadMinutes:       c.LookAheadMinutes,
		PendingTTLSeconds:      c.PendingTTLSeconds,
		ConflictHorizonMinutes: c.ConflictHorizonMinutes,
		PendingBlocksSlots:     true,
	}
	if c.PendingBlocksSlots != nil {
		policy.PendingBlocksSlots = *c.PendingBlocksSlots
	}
	return policy
}

// ExpiryConfig настройки фоновой очистки просроченных заявок
type ExpiryConfig struct {
	Enabled              bool `toml:"enabled"`
	SweepIntervalSeconds int  `toml:"sweep_interval_seconds"`
}

// SweepInterval возвращает период очистки
func (c ExpiryConfig) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}

// RestaurantConfig настройки локального времени ресторана
type RestaurantConfig struct {
	Timezone string `toml:"timezone"`
}

// Location возвращает часовой пояс ресторана
func (c RestaurantConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Load читает конфигурацию из TOML файла
// Переменные окружения (и файл .env, если есть) переопределяют секреты БД
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Database.Port = port
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		c.Database.DBName = v
	}
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 15)
	setDefault(&c.Server.WriteTimeout, 15)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 10)

	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.MaxOpenConns, 25)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "table_booking_service"
	}

	setDefault(&c.Booking.SlotIntervalMinutes, domain.DefaultSlotIntervalMinutes)
	setDefault(&c.Booking.MinLeadMinutes, domain.DefaultMinLeadMinutes)
	setDefault(&c.Booking.MinGapMinutes, domain.DefaultMinGapMinutes)
	setDefault(&c.Booking.MinStayMinutes, domain.DefaultMinStayMinutes)
	setDefault(&c.Booking.LookAheadMinutes, domain.DefaultLookAheadMinutes)
	setDefault(&c.Booking.PendingTTLSeconds, domain.DefaultPendingTTLSeconds)
	setDefault(&c.Booking.ConflictHorizonMinutes, domain.DefaultConflictHorizonMinutes)

	setDefault(&c.Expiry.SweepIntervalSeconds, domain.DefaultExpirySweepSeconds)

	if c.Restaurant.Timezone == "" {
		c.Restaurant.Timezone = "Local"
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.Booking.SlotIntervalMinutes > 24*60 || 24*60%c.Booking.SlotIntervalMinutes != 0 {
		return fmt.Errorf("%w: booking.slot_interval_minutes=%d must divide a day",
			ErrInvalidConfig, c.Booking.SlotIntervalMinutes)
	}
	if c.Booking.MinStayMinutes < 0 || c.Booking.MinGapMinutes < 0 || c.Booking.MinLeadMinutes < 0 {
		return fmt.Errorf("%w: booking minutes must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Restaurant.Location(); err != nil {
		return fmt.Errorf("%w: restaurant.timezone=%q: %v", ErrInvalidConfig, c.Restaurant.Timezone, err)
	}
	return nil
}

func setDefault(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}
