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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "db.example.supabase.co"
dbname = "postgres"

[auth]
jwt_secret = "super-secret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, PriceModeTrust, cfg.Booking.PriceMode)
	assert.False(t, cfg.Booking.StrictAdmission)
	assert.False(t, cfg.Tours.AtomicDateReplace)
}

func TestLoad_ExplicitValues(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "localhost"
port = 6543
dbname = "tours"
sslmode = "disable"

[auth]
jwt_secret = "secret"

[booking]
strict_admission = true
price_mode = "recompute"

[tours]
atomic_date_replace = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.True(t, cfg.Booking.StrictAdmission)
	assert.Equal(t, PriceModeRecompute, cfg.Booking.PriceMode)
	assert.True(t, cfg.Tours.AtomicDateReplace)
	assert.Contains(t, cfg.Database.DSN(), "sslmode=disable")
}

func TestLoad_EnvOverridesSecret(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "tours"
`)
	t.Setenv("AUTH_JWT_SECRET", "from-env")
	t.Setenv("DB_PASSWORD", "pa55")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "pa55", cfg.Database.Password)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("Missing JWT secret", func(t *testing.T) {
		path := writeConfig(t, `
[database]
host = "localhost"
dbname = "tours"
`)
		t.Setenv("AUTH_JWT_SECRET", "")

		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("Unknown price mode", func(t *testing.T) {
		path := writeConfig(t, `
[database]
host = "localhost"
dbname = "tours"

[auth]
jwt_secret = "s"

[booking]
price_mode = "discount"
`)

		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}
