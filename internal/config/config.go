package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath переменная окружения, переопределяющая путь к конфигу
const EnvConfigPath = "CONFIG_PATH"

// Step gate backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

var (
	// ErrLoad возвращается, когда файл конфигурации не удалось прочитать
	ErrLoad = errors.New("config: failed to load")

	// ErrInvalid возвращается при невалидных значениях конфигурации
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server             ServerConfig   `toml:"server"`
	Database           DatabaseConfig `toml:"database"`
	Logs               LogsConfig     `toml:"logs"`
	Metrics            MetricsConfig  `toml:"metrics"`
	Redis              RedisConfig    `toml:"redis"`
	StepGate           StepGateConfig `toml:"step_gate"`
	DonorService       ServiceConfig  `toml:"donor_service"`
	AppointmentService ServiceConfig  `toml:"appointment_service"`
	Workflow           WorkflowConfig `toml:"workflow"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
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

// RedisConfig настройки Redis
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// StepGateConfig хранилище шагов флоу
type StepGateConfig struct {
	Backend        string `toml:"backend"`         // memory | redis
	SessionTTLMins int    `toml:"session_ttl_min"` // время жизни состояния сессии, 0 = без ограничения
}

// SessionTTL время жизни состояния сессии
func (s StepGateConfig) SessionTTL() time.Duration {
	return time.Duration(s.SessionTTLMins) * time.Minute
}

// ServiceConfig настройки внешнего сервиса
type ServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// TimeoutDuration таймаут запроса
func (s ServiceConfig) TimeoutDuration() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}

// WorkflowConfig настройки флоу записи
type WorkflowConfig struct {
	HistoryTimeoutMs int `toml:"history_timeout_ms"` // ограничение на загрузку истории записей
}

// HistoryTimeout ограничение на загрузку истории записей
func (w WorkflowConfig) HistoryTimeout() time.Duration {
	return time.Duration(w.HistoryTimeoutMs) * time.Millisecond
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
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
			File:  "logs/donation-service.log",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "donation-service",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		StepGate: StepGateConfig{
			Backend:        BackendMemory,
			SessionTTLMins: 60,
		},
		DonorService: ServiceConfig{
			Timeout: 5,
		},
		AppointmentService: ServiceConfig{
			Timeout: 5,
		},
		Workflow: WorkflowConfig{
			HistoryTimeoutMs: 3000,
		},
	}
}

// Load читает TOML файл поверх значений по умолчанию.
// Если задана переменная CONFIG_PATH, путь берётся из неё.
func Load(path string) (*Config, error) {
	if env := os.Getenv(EnvConfigPath); env != "" {
		path = env
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalid, c.Server.HTTPPort)
	}

	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalid)
	}

	switch c.StepGate.Backend {
	case BackendMemory:
	case BackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis.addr is required for step_gate.backend=redis", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown step_gate.backend %q", ErrInvalid, c.StepGate.Backend)
	}

	if c.StepGate.SessionTTLMins < 0 {
		return fmt.Errorf("%w: step_gate.session_ttl_min must not be negative", ErrInvalid)
	}

	if c.DonorService.URL == "" {
		return fmt.Errorf("%w: donor_service.url is required", ErrInvalid)
	}
	if c.AppointmentService.URL == "" {
		return fmt.Errorf("%w: appointment_service.url is required", ErrInvalid)
	}
	if c.DonorService.Timeout <= 0 || c.AppointmentService.Timeout <= 0 {
		return fmt.Errorf("%w: service timeouts must be positive", ErrInvalid)
	}

	if c.Workflow.HistoryTimeoutMs <= 0 {
		return fmt.Errorf("%w: workflow.history_timeout_ms must be positive", ErrInvalid)
	}

	return nil
}
