package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("EMAIL_USER", "")
	t.Setenv("EMAIL_PASSWORD", "")
	t.Setenv("ADMIN_EMAIL", "")

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "file", cfg.Catalog.Source)
	assert.Equal(t, "catalog.toml", cfg.Catalog.File)
	assert.Equal(t, "smtp.gmail.com", cfg.Mail.Host)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Equal(t, "918273441052", cfg.WhatsApp.OperatorNumber)
	assert.Equal(t, "http://localhost:3001", cfg.API.BaseURL)
	assert.Equal(t, 15, cfg.API.Timeout)

	// Без учетных данных почтовый канал выключен
	assert.False(t, cfg.Mail.Configured())
}

func TestLoad_ExplicitValues(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[server]
http_port = 8080

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true
service_name = "zny-test"

[catalog]
source = "file"
file = "data/catalog.toml"

[whatsapp]
operator_number = "911234567890"

[api]
base_url = "http://api.internal:9000"
timeout = 30
`))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "zny-test", cfg.Metrics.ServiceName)
	assert.Equal(t, "data/catalog.toml", cfg.Catalog.File)
	assert.Equal(t, "911234567890", cfg.WhatsApp.OperatorNumber)
	assert.Equal(t, "http://api.internal:9000", cfg.API.BaseURL)
	assert.Equal(t, 30, cfg.API.Timeout)
}

func TestLoad_MailCredentialsFromEnv(t *testing.T) {
	t.Setenv("EMAIL_USER", "zanaya@example.com")
	t.Setenv("EMAIL_PASSWORD", "secret")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.True(t, cfg.Mail.Configured())
	assert.Equal(t, "zanaya@example.com", cfg.Mail.User)
	assert.Equal(t, "admin@example.com", cfg.Mail.AdminEmail)
}

func TestLoad_UnknownCatalogSource(t *testing.T) {
	_, err := Load(writeConfig(t, `
[catalog]
source = "redis"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown catalog source")
}

func TestLoad_PostgresRequiresDatabase(t *testing.T) {
	_, err := Load(writeConfig(t, `
[catalog]
source = "postgres"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[database] is not configured")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	dsn := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "zanaya",
		Password: "secret",
		DBName:   "catalog",
		SSLMode:  "disable",
	}.DSN()

	assert.Equal(t, "host=localhost port=5432 user=zanaya password=secret dbname=catalog sslmode=disable", dsn)
}
