package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodisys/netbanx-gateway/internal/config"
)

func setBaseEnv(t *testing.T) {
	t.Helper()

	t.Setenv("NETBANX_PRIMARY__ENV", "test")
	t.Setenv("NETBANX_MERCHANT__ACCOUNT_NUMBER", "89983472")
	t.Setenv("NETBANX_MERCHANT__STORE_ID", "teststore")
	t.Setenv("NETBANX_MERCHANT__STORE_PASSWORD", "secret")
	t.Setenv("NETBANX_GATEWAY__ENVIRONMENT", "test")
	t.Setenv("NETBANX_GATEWAY__PROTOCOL", "legacy")
	t.Setenv("NETBANX_GATEWAY__CURRENCY", "CAD")
	t.Setenv("NETBANX_GATEWAY__CONN_TIMEOUT", "30s")
	t.Setenv("NETBANX_ORG__NAME", "Maison des arts")
	t.Setenv("NETBANX_ORG__LOCALE", "fr")
	t.Setenv("NETBANX_STORE__LOG_BACKEND", "postgres")
	t.Setenv("NETBANX_DATABASE__HOST", "localhost")
	t.Setenv("NETBANX_DATABASE__PORT", "5432")
}

func TestLoadConfig(t *testing.T) {
	setBaseEnv(t)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "89983472", cfg.Merchant.AccountNumber)
	assert.Equal(t, "test", cfg.Gateway.Environment)
	assert.Equal(t, "legacy", cfg.Gateway.Protocol)
	assert.Equal(t, "CAD", cfg.Gateway.Currency)
	assert.Equal(t, 30*time.Second, cfg.Gateway.ConnTimeout)
	assert.Equal(t, "fr", cfg.Org.Locale)
	assert.Equal(t, "postgres", cfg.Store.LogBackend)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoadConfigRejectsUnknownEnvironment(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("NETBANX_GATEWAY__ENVIRONMENT", "staging")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRejectsUnknownProtocol(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("NETBANX_GATEWAY__PROTOCOL", "soap2")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRejectsUnknownLogBackend(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("NETBANX_STORE__LOG_BACKEND", "memcached")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRequiresAccountNumber(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("NETBANX_MERCHANT__ACCOUNT_NUMBER", "")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}
