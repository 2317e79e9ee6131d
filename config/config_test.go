package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Empty values count as unset.
	for _, key := range []string{"APP_PORT", "GIN_MODE", "DB_DRIVER", "DB_DSN", "DB_CONN_MAX_LIFETIME", "SESSION_MAX_AGE"} {
		t.Setenv(key, "")
	}

	cfg, _, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "tickets.db", cfg.Database.DSN)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 6, cfg.Session.MaxAge)
}

func TestLoad_MySQLFromParts(t *testing.T) {
	t.Setenv("DB_DRIVER", "MySQL")
	t.Setenv("DB_DSN", "")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "root")
	t.Setenv("DB_PASS", "pw")
	t.Setenv("DB_NAME", "booking")

	cfg, _, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, "root:pw@tcp(localhost:3306)/booking?charset=utf8mb4&parseTime=True&loc=Local", cfg.Database.DSN)
}

func TestValidate(t *testing.T) {
	t.Run("missing mysql parts", func(t *testing.T) {
		cfg := &Config{
			Database: DatabaseConfig{Driver: DriverMySQL, Host: "localhost"},
			Server:   ServerConfig{Mode: "release"},
			Session:  SessionConfig{MaxAge: 6},
		}
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := &Config{
			Database: DatabaseConfig{Driver: "oracle"},
			Server:   ServerConfig{Mode: "release"},
			Session:  SessionConfig{MaxAge: 6},
		}
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive session age", func(t *testing.T) {
		cfg := &Config{
			Server:   ServerConfig{Mode: "release"},
			Database: DatabaseConfig{Driver: DriverSQLite},
			Session:  SessionConfig{MaxAge: 0},
		}
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown gin mode", func(t *testing.T) {
		cfg := &Config{
			Server:   ServerConfig{Mode: "verbose"},
			Database: DatabaseConfig{Driver: DriverSQLite},
			Session:  SessionConfig{MaxAge: 6},
		}
		assert.Error(t, cfg.Validate())
	})

	t.Run("explicit mysql dsn wins", func(t *testing.T) {
		cfg := &Config{
			Database: DatabaseConfig{Driver: DriverMySQL, DSN: "u:p@tcp(db:3306)/x"},
			Server:   ServerConfig{Mode: "release"},
			Session:  SessionConfig{MaxAge: 6},
		}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "u:p@tcp(db:3306)/x", cfg.Database.DSN)
	})
}
