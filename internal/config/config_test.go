package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalDatabase = `
database:
  host: localhost
  name: testdb
  user: testuser
`

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: minimalDatabase,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testdb", cfg.Database.Name)
				assert.Equal(t, "testuser", cfg.Database.User)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: minimalDatabase,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 60*time.Second, cfg.Server.WriteTimeout)
				assert.Empty(t, cfg.Server.CronSecret)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.InDelta(t, 0.0, cfg.Monitoring.ThresholdPercent, 0.0001)
				assert.InDelta(t, 10.0, cfg.Monitoring.CompareThresholdPercent, 0.0001)
				assert.InDelta(t, 0.7, cfg.Monitoring.EscalationRatio, 0.0001)
				assert.Equal(t, 8, cfg.Monitoring.Concurrency)
				assert.Equal(t, 24*time.Hour, cfg.Monitoring.DedupWindow)
				assert.Equal(t, 90, cfg.Retention.AlertDays)
				assert.Equal(t, 365, cfg.Retention.HistoryDays)
				assert.Equal(t, 30, cfg.Retention.ObservationDays)
				assert.Equal(t, time.Hour, cfg.Schedule.MonitoringInterval)
				assert.Equal(t, 24*time.Hour, cfg.Schedule.CleanupInterval)
				assert.Equal(t, 15*time.Minute, cfg.Schedule.NotifyInterval)
				assert.Equal(t, "high", cfg.Notifications.MinSeverity)
				assert.Equal(t, "competitive-alerts", cfg.Notifications.Kafka.Topic)
				assert.Equal(t, 5, cfg.Notifications.RateLimit.Burst)
				assert.Equal(t, "competitive-price-monitor", cfg.Telemetry.ServiceName)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
				assert.Equal(t, 100, cfg.Logging.MaxSizeMB)
			},
		},
		{
			name: "env var substitution",
			yaml: minimalDatabase + `  password: "${TEST_DB_PASSWORD}"
server:
  cron_secret: "${TEST_CRON_SECRET}"
`,
			envVars: map[string]string{
				"TEST_DB_PASSWORD": "secret123",
				"TEST_CRON_SECRET": "cron-token",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Database.Password)
				assert.Equal(t, "cron-token", cfg.Server.CronSecret)
			},
		},
		{
			name: "monitoring selection and threshold",
			yaml: minimalDatabase + `
monitoring:
  threshold_percent: 5
  asins: [B000000001, B000000002]
  seller_skus: [SKU-1]
  dedup_window: 12h
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.InDelta(t, 5.0, cfg.Monitoring.ThresholdPercent, 0.0001)
				assert.Equal(t, []string{"B000000001", "B000000002"}, cfg.Monitoring.ASINs)
				assert.Equal(t, []string{"SKU-1"}, cfg.Monitoring.SellerSKUs)
				assert.Equal(t, 12*time.Hour, cfg.Monitoring.DedupWindow)
			},
		},
		{
			name: "notification targets",
			yaml: minimalDatabase + `
notifications:
  min_severity: medium
  discord:
    enabled: true
    webhook_url: https://discord.com/api/webhooks/test
  telegram:
    enabled: true
    token: abc
    chat_id: 42
  kafka:
    enabled: true
    brokers: [localhost:9092]
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				n := cfg.Notifications
				assert.Equal(t, "medium", n.MinSeverity)
				assert.True(t, n.Discord.Enabled)
				assert.Equal(t, int64(42), n.Telegram.ChatID)
				assert.Equal(t, []string{"localhost:9092"}, n.Kafka.Brokers)
			},
		},
		{
			name: "logging file rotation",
			yaml: minimalDatabase + `
logging:
  level: debug
  format: json
  file: /var/log/cpm.log
  max_backups: 7
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.Equal(t, "/var/log/cpm.log", cfg.Logging.File)
				assert.Equal(t, 7, cfg.Logging.MaxBackups)
				assert.Equal(t, 28, cfg.Logging.MaxAgeDays)
			},
		},
		{
			name: "missing required database.host",
			yaml: `
database:
  name: testdb
  user: testuser
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing required database.name",
			yaml: `
database:
  host: localhost
  user: testuser
`,
			wantErr: "database.name is required",
		},
		{
			name: "missing required database.user",
			yaml: `
database:
  host: localhost
  name: testdb
`,
			wantErr: "database.user is required",
		},
		{
			name: "negative threshold",
			yaml: minimalDatabase + `
monitoring:
  threshold_percent: -1
`,
			wantErr: "monitoring.threshold_percent must be >= 0",
		},
		{
			name: "escalation ratio above one",
			yaml: minimalDatabase + `
monitoring:
  escalation_ratio: 1.5
`,
			wantErr: "monitoring.escalation_ratio must be in (0, 1]",
		},
		{
			name: "dedup window below one minute",
			yaml: minimalDatabase + `
monitoring:
  dedup_window: 30s
`,
			wantErr: "monitoring.dedup_window must be a whole number of minutes, got 30s",
		},
		{
			name: "dedup window with seconds",
			yaml: minimalDatabase + `
monitoring:
  dedup_window: 90s
`,
			wantErr: "monitoring.dedup_window must be a whole number of minutes, got 1m30s",
		},
		{
			name: "negative dedup window",
			yaml: minimalDatabase + `
monitoring:
  dedup_window: -1h
`,
			wantErr: "monitoring.dedup_window",
		},
		{
			name: "unknown min severity",
			yaml: minimalDatabase + `
notifications:
  min_severity: urgent
`,
			wantErr: "notifications.min_severity",
		},
		{
			name: "discord enabled without webhook",
			yaml: minimalDatabase + `
notifications:
  discord:
    enabled: true
`,
			wantErr: "notifications.discord.webhook_url is required",
		},
		{
			name: "telegram enabled without chat id",
			yaml: minimalDatabase + `
notifications:
  telegram:
    enabled: true
    token: abc
`,
			wantErr: "notifications.telegram.token and chat_id are required",
		},
		{
			name: "kafka enabled without brokers",
			yaml: minimalDatabase + `
notifications:
  kafka:
    enabled: true
`,
			wantErr: "notifications.kafka.brokers is required",
		},
		{
			name: "telemetry enabled without endpoint",
			yaml: minimalDatabase + `
telemetry:
  enabled: true
`,
			wantErr: "telemetry.endpoint is required",
		},
		{
			name:    "invalid yaml",
			yaml:    "database: [unclosed",
			wantErr: "parsing config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "basic DSN",
			cfg: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				Name:     "testdb",
				User:     "testuser",
				Password: "testpass",
				SSLMode:  "disable",
			},
			want: "host=localhost port=5432 dbname=testdb user=testuser password=testpass sslmode=disable",
		},
		{
			name: "production DSN",
			cfg: DatabaseConfig{
				Host:     "db.example.com",
				Port:     5433,
				Name:     "monitor",
				User:     "admin",
				Password: "s3cret",
				SSLMode:  "require",
			},
			want: "host=db.example.com port=5433 dbname=monitor user=admin password=s3cret sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}
