package auth

import (
	"testing"

	"insure-backend/internal/config"
	"insure-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "insure-backend"
	return cfg
}

func TestGenerateAndValidateToken(t *testing.T) {
	mgr := NewJWTManager(testConfig())
	user := &models.User{ID: "u-1", Name: "Admin", Email: "admin@gkinsurance.local"}

	token, err := mgr.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "admin@gkinsurance.local", claims.Email)
	assert.Equal(t, "insure-backend", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	mgr := NewJWTManager(testConfig())
	token, err := mgr.GenerateToken(&models.User{ID: "u-1"})
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.JWT.Secret = "different-secret"
	_, err = NewJWTManager(otherCfg).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	mgr := NewJWTManager(testConfig())
	_, err := mgr.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, VerifyPassword(hash, "correct horse battery"))
	assert.False(t, VerifyPassword(hash, "wrong password"))
}
