package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_NAME", "LOG_LEVEL", "LOG_COMPRESS"} {
		t.Setenv(key, "")
	}

	c := loadFromEnv()

	assert.Equal(t, DriverMySQL, c.DBDriver)
	assert.Equal(t, "127.0.0.1", c.DBHost)
	assert.Equal(t, 3306, c.DBPort)
	assert.Equal(t, "lms", c.DBName)
	assert.Equal(t, "INFO", c.LogLevel)
	assert.True(t, c.LogCompress)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "Memory")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("LOG_COMPRESS", "false")
	t.Setenv("LOG_MAX_AGE", "not-a-number")

	c := loadFromEnv()

	assert.Equal(t, DriverMemory, c.DBDriver)
	assert.Equal(t, 3307, c.DBPort)
	assert.False(t, c.LogCompress)
	assert.Equal(t, 28, c.LogMaxAge)
}

func TestDSN(t *testing.T) {
	c := AppConfig{DBUser: "lms", DBPass: "secret", DBHost: "db", DBPort: 3306, DBName: "lms"}
	assert.Equal(t, "lms:secret@tcp(db:3306)/lms?charset=utf8mb4&parseTime=True&loc=UTC", c.DSN())
}
