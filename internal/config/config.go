package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/inigoestebangomez/cool-mex-server/internal/domain"
	"github.com/inigoestebangomez/cool-mex-server/pkg/types"
)

var (
	// ErrInvalidTablePlan возвращается при некорректной секции [tables]
	ErrInvalidTablePlan = errors.New("config: invalid table plan")

	// ErrInvalidSchedule возвращается при некорректной секции [schedule]
	ErrInvalidSchedule = errors.New("config: invalid schedule")
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Broker   BrokerConfig   `toml:"broker"`
	Tables   TablesConfig   `toml:"tables"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	QueryTimeout    int    `toml:"query_timeout"`     // секунды, таймаут обращений к хранилищу
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig настройки проверки административных токенов
type AuthConfig struct {
	TokenSecret string `toml:"token_secret"`
}

// BrokerConfig настройки брокера сообщений для уведомлений
type BrokerConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Queue   string `toml:"queue"`
}

// TablesConfig секция [tables]: столы ресторана по категориям
type TablesConfig struct {
	Buckets []TableBucketConfig `toml:"buckets"`
}

// TableBucketConfig одна категория столов
type TableBucketConfig struct {
	Category  string `toml:"category"`
	MaxGuests int    `toml:"max_guests"`
	Tables    int    `toml:"tables"`
}

// ScheduleConfig секция [schedule]: каталог слотов и окно блокировки
type ScheduleConfig struct {
	Times              []string `toml:"times"`
	BlockBeforeMinutes int      `toml:"block_before_minutes"`
	BlockAfterMinutes  int      `toml:"block_after_minutes"`
}

// Load читает конфигурацию из TOML файла
// Секреты (пароль БД, секрет токенов, URL брокера) можно переопределить
// переменными окружения DB_PASSWORD, TOKEN_SECRET, RABBITMQ_URL
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("TOKEN_SECRET"); v != "" {
		cfg.Auth.TokenSecret = v
	}
	if v := os.Getenv("RABBITMQ_URL"); v != "" {
		cfg.Broker.URL = v
	}

	return &cfg, nil
}

// TablePlan конвертирует секцию [tables] в доменную конфигурацию
// Пустая секция означает план по умолчанию
func (c *Config) TablePlan() (domain.TablePlan, error) {
	if len(c.Tables.Buckets) == 0 {
		return domain.DefaultTablePlan(), nil
	}

	plan := domain.TablePlan{Buckets: make([]domain.CategoryBucket, 0, len(c.Tables.Buckets))}
	for _, b := range c.Tables.Buckets {
		category := domain.TableCategory(b.Category)
		if !category.IsValid() {
			return domain.TablePlan{}, fmt.Errorf("%w: unknown category %q", ErrInvalidTablePlan, b.Category)
		}
		if b.MaxGuests < domain.MinGuests {
			return domain.TablePlan{}, fmt.Errorf("%w: category %q max_guests must be positive", ErrInvalidTablePlan, b.Category)
		}
		if b.Tables <= 0 {
			return domain.TablePlan{}, fmt.Errorf("%w: category %q tables must be positive", ErrInvalidTablePlan, b.Category)
		}
		plan.Buckets = append(plan.Buckets, domain.CategoryBucket{
			Category:  category,
			MaxGuests: b.MaxGuests,
			Tables:    b.Tables,
		})
	}

	// Классификатор обходит корзины по возрастанию границ
	sort.Slice(plan.Buckets, func(i, j int) bool {
		return plan.Buckets[i].MaxGuests < plan.Buckets[j].MaxGuests
	})

	return plan, nil
}

// ServiceSchedule конвертирует секцию [schedule] в доменную конфигурацию
// Пустой каталог означает расписание по умолчанию
func (c *Config) ServiceSchedule() (domain.ServiceSchedule, error) {
	if len(c.Schedule.Times) == 0 {
		return domain.DefaultServiceSchedule(), nil
	}

	catalog := make([]types.TimeString, 0, len(c.Schedule.Times))
	for _, raw := range c.Schedule.Times {
		t, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return domain.ServiceSchedule{}, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}
		catalog = append(catalog, t)
	}

	// Каталог обязан быть упорядочен по возрастанию
	sort.Slice(catalog, func(i, j int) bool { return catalog[i].IsBefore(catalog[j]) })

	if c.Schedule.BlockBeforeMinutes < 0 || c.Schedule.BlockAfterMinutes < 0 {
		return domain.ServiceSchedule{}, fmt.Errorf("%w: blocking window must not be negative", ErrInvalidSchedule)
	}

	return domain.ServiceSchedule{
		Catalog:            catalog,
		BlockBeforeMinutes: c.Schedule.BlockBeforeMinutes,
		BlockAfterMinutes:  c.Schedule.BlockAfterMinutes,
	}, nil
}
