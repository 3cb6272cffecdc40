package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса, загружается из TOML файла.
// Почтовые учетные данные приходят из окружения (.env поддерживается),
// их отсутствие выключает email-доставку, но не сам сервис.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Database DatabaseConfig `toml:"database"`
	Mail     MailConfig     `toml:"mail"`
	WhatsApp WhatsAppConfig `toml:"whatsapp"`
	API      APIConfig      `toml:"api"`
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
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CatalogConfig источник справочного каталога: "file" или "postgres"
type CatalogConfig struct {
	Source string `toml:"source"`
	File   string `toml:"file"`
}

// DatabaseConfig подключение к PostgreSQL (для source = "postgres")
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

// DSN строка подключения PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// MailConfig настройки SMTP. User/Password/AdminEmail заполняются
// из переменных окружения EMAIL_USER, EMAIL_PASSWORD, ADMIN_EMAIL
type MailConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`

	User       string `toml:"-"`
	Password   string `toml:"-"`
	AdminEmail string `toml:"-"`
}

// Configured возвращает true, если почтовый канал настроен
func (m MailConfig) Configured() bool {
	return m.User != "" && m.Password != ""
}

// WhatsAppConfig настройки messaging-link доставки
type WhatsAppConfig struct {
	OperatorNumber string `toml:"operator_number"`
}

// APIConfig настройки клиента бэкенда (используется cmd/wizard)
type APIConfig struct {
	BaseURL string `toml:"base_url"`
	Timeout int    `toml:"timeout"`
}

// Load читает конфигурацию из TOML файла и окружения
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	// .env опционален, его отсутствие не ошибка
	_ = godotenv.Load()

	cfg.Mail.User = os.Getenv("EMAIL_USER")
	cfg.Mail.Password = os.Getenv("EMAIL_PASSWORD")
	cfg.Mail.AdminEmail = os.Getenv("ADMIN_EMAIL")

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 3001
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "zanaya-booking"
	}
	if c.Catalog.Source == "" {
		c.Catalog.Source = "file"
	}
	if c.Catalog.File == "" {
		c.Catalog.File = "catalog.toml"
	}
	if c.Mail.Host == "" {
		c.Mail.Host = "smtp.gmail.com"
	}
	if c.Mail.Port == 0 {
		c.Mail.Port = 587
	}
	if c.WhatsApp.OperatorNumber == "" {
		c.WhatsApp.OperatorNumber = "918273441052"
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = fmt.Sprintf("http://localhost:%d", c.Server.HTTPPort)
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = 15
	}
}

func (c *Config) validate() error {
	switch c.Catalog.Source {
	case "file", "postgres":
	default:
		return fmt.Errorf("config: unknown catalog source %q (want \"file\" or \"postgres\")", c.Catalog.Source)
	}
	if c.Catalog.Source == "postgres" && c.Database.Host == "" {
		return fmt.Errorf("config: catalog source is postgres but [database] is not configured")
	}
	return nil
}
