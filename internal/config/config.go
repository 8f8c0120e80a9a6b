// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Monitoring    MonitoringConfig    `yaml:"monitoring"`
	Retention     RetentionConfig     `yaml:"retention"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	// CronSecret, when set, is required as a bearer token on trigger endpoints.
	CronSecret string `yaml:"cron_secret"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// MonitoringConfig defines comparison and alerting behavior.
type MonitoringConfig struct {
	// ThresholdPercent is the minimum deviation that raises an alert. 0 alerts on any regression.
	ThresholdPercent float64 `yaml:"threshold_percent"`
	// CompareThresholdPercent is the default for snapshot compare-and-alert.
	CompareThresholdPercent float64       `yaml:"compare_threshold_percent"`
	ASINs                   []string      `yaml:"asins"`
	SellerSKUs              []string      `yaml:"seller_skus"`
	Concurrency             int           `yaml:"concurrency"`
	DedupWindow             time.Duration `yaml:"dedup_window"`
	EscalationRatio         float64       `yaml:"escalation_ratio"`
}

// RetentionConfig defines age-based cleanup limits in days.
type RetentionConfig struct {
	AlertDays       int `yaml:"alert_days"`
	HistoryDays     int `yaml:"history_days"`
	ObservationDays int `yaml:"observation_days"`
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	Enabled            bool          `yaml:"enabled"`
	MonitoringInterval time.Duration `yaml:"monitoring_interval"`
	CleanupInterval    time.Duration `yaml:"cleanup_interval"`
	NotifyInterval     time.Duration `yaml:"notify_interval"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	MinSeverity string          `yaml:"min_severity"`
	Discord     DiscordConfig   `yaml:"discord"`
	Telegram    TelegramConfig  `yaml:"telegram"`
	Kafka       KafkaConfig     `yaml:"kafka"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// TelegramConfig defines Telegram bot settings.
type TelegramConfig struct {
	Enabled bool   `yaml:"enabled"`
	Token   string `yaml:"token"`
	ChatID  int64  `yaml:"chat_id"`
}

// KafkaConfig defines the Kafka alert topic.
type KafkaConfig struct {
	Enabled bool     `yaml:"enabled"`
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// RateLimitConfig throttles outgoing notifications.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
	// DailyLimit caps notifications per rolling 24h window. 0 disables the cap.
	DailyLimit int64 `yaml:"daily_limit"`
}

// TelemetryConfig defines OpenTelemetry export.
type TelemetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Endpoint    string        `yaml:"endpoint"`
	Insecure    bool          `yaml:"insecure"`
	ServiceName string        `yaml:"service_name"`
	Interval    time.Duration `yaml:"interval"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
	// File, when set, also writes logs to a rotating file.
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML config content, performing environment variable
// substitution, defaulting and validation.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyMonitoringDefaults(&cfg.Monitoring)
	applyRetentionDefaults(&cfg.Retention)
	applyScheduleDefaults(&cfg.Schedule)
	applyNotificationDefaults(&cfg.Notifications)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 60 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyMonitoringDefaults(m *MonitoringConfig) {
	if m.CompareThresholdPercent == 0 {
		m.CompareThresholdPercent = 10
	}
	if m.Concurrency == 0 {
		m.Concurrency = 8
	}
	if m.DedupWindow == 0 {
		m.DedupWindow = 24 * time.Hour
	}
	if m.EscalationRatio == 0 {
		m.EscalationRatio = 0.7
	}
}

func applyRetentionDefaults(r *RetentionConfig) {
	if r.AlertDays == 0 {
		r.AlertDays = 90
	}
	if r.HistoryDays == 0 {
		r.HistoryDays = 365
	}
	if r.ObservationDays == 0 {
		r.ObservationDays = 30
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.MonitoringInterval == 0 {
		s.MonitoringInterval = time.Hour
	}
	if s.CleanupInterval == 0 {
		s.CleanupInterval = 24 * time.Hour
	}
	if s.NotifyInterval == 0 {
		s.NotifyInterval = 15 * time.Minute
	}
}

func applyNotificationDefaults(n *NotificationsConfig) {
	if n.MinSeverity == "" {
		n.MinSeverity = string(domain.SeverityHigh)
	}
	if n.Kafka.Topic == "" {
		n.Kafka.Topic = "competitive-alerts"
	}
	if n.RateLimit.PerSecond == 0 {
		n.RateLimit.PerSecond = 1
	}
	if n.RateLimit.Burst == 0 {
		n.RateLimit.Burst = 5
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "competitive-price-monitor"
	}
	if t.Interval == 0 {
		t.Interval = 30 * time.Second
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
	if l.MaxSizeMB == 0 {
		l.MaxSizeMB = 100
	}
	if l.MaxBackups == 0 {
		l.MaxBackups = 3
	}
	if l.MaxAgeDays == 0 {
		l.MaxAgeDays = 28
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	m := cfg.Monitoring
	if m.ThresholdPercent < 0 {
		errs = append(errs, fmt.Errorf("monitoring.threshold_percent must be >= 0"))
	}
	if m.CompareThresholdPercent < 0 {
		errs = append(errs, fmt.Errorf("monitoring.compare_threshold_percent must be >= 0"))
	}
	if m.EscalationRatio <= 0 || m.EscalationRatio > 1 {
		errs = append(errs, fmt.Errorf("monitoring.escalation_ratio must be in (0, 1]"))
	}
	if m.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("monitoring.concurrency must be positive"))
	}
	// Alert dedup slots are the window truncated from the epoch.
	if m.DedupWindow < time.Minute || m.DedupWindow%time.Minute != 0 {
		errs = append(errs, fmt.Errorf("monitoring.dedup_window must be a whole number of minutes, got %s", m.DedupWindow))
	}

	r := cfg.Retention
	if r.AlertDays < 0 || r.HistoryDays < 0 || r.ObservationDays < 0 {
		errs = append(errs, fmt.Errorf("retention days must be positive"))
	}

	n := cfg.Notifications
	if _, err := domain.ParseSeverity(n.MinSeverity); err != nil {
		errs = append(errs, fmt.Errorf("notifications.min_severity: %w", err))
	}
	if n.Discord.Enabled && n.Discord.WebhookURL == "" {
		errs = append(errs, fmt.Errorf("notifications.discord.webhook_url is required when discord is enabled"))
	}
	if n.Telegram.Enabled && (n.Telegram.Token == "" || n.Telegram.ChatID == 0) {
		errs = append(errs, fmt.Errorf("notifications.telegram.token and chat_id are required when telegram is enabled"))
	}
	if n.Kafka.Enabled && len(n.Kafka.Brokers) == 0 {
		errs = append(errs, fmt.Errorf("notifications.kafka.brokers is required when kafka is enabled"))
	}

	if cfg.Telemetry.Enabled && cfg.Telemetry.Endpoint == "" {
		errs = append(errs, fmt.Errorf("telemetry.endpoint is required when telemetry is enabled"))
	}

	return errors.Join(errs...)
}
