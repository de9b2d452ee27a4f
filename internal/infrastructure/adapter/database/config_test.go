package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validTestConfig() *Config {
	return &Config{
		Host:     "localhost",
		Port:     5432,
		Username: "fundr",
		Password: "fundr",
		Database: "donation_ledger",
		SSLMode:  "disable",
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, validTestConfig().Validate())
	})

	t.Run("Missing host", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Host = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("Bad port", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Port = 0
		assert.Error(t, cfg.Validate())

		cfg.Port = 70000
		assert.Error(t, cfg.Validate())
	})

	t.Run("Missing database name", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Database = ""
		assert.Error(t, cfg.Validate())
	})
}

func TestConfigDSN(t *testing.T) {
	dsn := validTestConfig().DSN()
	assert.Equal(t, "host=localhost port=5432 user=fundr password=fundr dbname=donation_ledger sslmode=disable", dsn)
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 6543, ParsePort("6543"))
	assert.Equal(t, 5432, ParsePort("not-a-port"))
	assert.Equal(t, 5432, ParsePort(""))
	assert.Equal(t, 5432, ParsePort("-1"))
}
