package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "APP_VERSION", "DEBUG", "PORT", "HOST",
		"DATABASE_URL", "DATABASE_SSLMODE",
		"EMAIL_ENABLED", "SMTP_HOST", "SMTP_PORT", "EMAIL_USER", "EMAIL_PASS",
		"EMAIL_FROM", "EMAIL_RECIVER", "EMAIL_RECEIVER",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, "0.0.0.0:5000", cfg.App.Addr())
	assert.Equal(t, "sqlite:///./intake.db", cfg.Database.URL)
	assert.False(t, cfg.Email.Enabled, "email must stay off without credentials")
	assert.Equal(t, "smtp.gmail.com", cfg.Email.SMTPHost)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
}

func TestLoadEmailFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("EMAIL_USER", "forms@example.com")
	t.Setenv("EMAIL_PASS", "app-password")
	t.Setenv("EMAIL_RECIVER", "desk@example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Email.Enabled)
	assert.Equal(t, "forms@example.com", cfg.Email.FromEmail)
	assert.Equal(t, "desk@example.com", cfg.Email.ToEmail)
}

func TestLoadDisablesEmailWithoutRecipient(t *testing.T) {
	clearEnv(t)
	t.Setenv("EMAIL_USER", "forms@example.com")
	t.Setenv("EMAIL_PASS", "app-password")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Email.Enabled)
	assert.Contains(t, cfg.Email.DisabledReason, "EMAIL_RECIVER")
}

func TestLoadRejectsNonNumericPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "http")

	_, err := Load()
	require.Error(t, err)
}

func TestDatabaseConfig(t *testing.T) {
	tests := []struct {
		name       string
		cfg        DatabaseConfig
		isPostgres bool
		dsn        string
		sqlitePath string
	}{
		{
			name:       "postgres url gains sslmode",
			cfg:        DatabaseConfig{URL: "postgres://u:p@db:5432/forms", SSLMode: "require"},
			isPostgres: true,
			dsn:        "postgres://u:p@db:5432/forms?sslmode=require",
		},
		{
			name:       "explicit sslmode is kept",
			cfg:        DatabaseConfig{URL: "postgresql://u:p@db/forms?sslmode=disable", SSLMode: "require"},
			isPostgres: true,
			dsn:        "postgresql://u:p@db/forms?sslmode=disable",
		},
		{
			name:       "sqlite path",
			cfg:        DatabaseConfig{URL: "sqlite:///./intake.db"},
			dsn:        "sqlite:///./intake.db",
			sqlitePath: "./intake.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isPostgres, tt.cfg.IsPostgres())
			assert.Equal(t, tt.dsn, tt.cfg.GetPostgresDSN())
			if !tt.isPostgres {
				assert.Equal(t, tt.sqlitePath, tt.cfg.GetSQLitePath())
			}
		})
	}
}
