// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "licencias", cfg.Database.Database)
	assert.Equal(t, "@miaucode.digital", cfg.Business.CorporateEmailDomain)
	assert.True(t, cfg.Business.RenewWithInactiveService)
}

func TestLoadOverridesFromEnv(t *testing.T) {
	t.Setenv("CORPORATE_EMAIL_DOMAIN", "@example.org")
	t.Setenv("RENEW_WITH_INACTIVE_SERVICE", "false")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "@example.org", cfg.Business.CorporateEmailDomain)
	assert.False(t, cfg.Business.RenewWithInactiveService)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestValidateRejectsDomainWithoutAt(t *testing.T) {
	t.Setenv("CORPORATE_EMAIL_DOMAIN", "miaucode.digital")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CORPORATE_EMAIL_DOMAIN")
}

func TestValidateRequiresPasswordInProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DB_PASSWORD", "")

	_, err := Load()
	require.Error(t, err)
}
