package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"jwt": map[string]any{
			"secretKey":   "",
			"validIssuer": "",
		},
		"rateLimit": map[string]any{
			"expiresIn": "3m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "JWT_SECRETKEY", want: "jwt.secretKey"},
		{envKey: "JWT_VALIDISSUER", want: "jwt.validIssuer"},
		{envKey: "RATELIMIT_EXPIRESIN", want: "rateLimit.expiresIn"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func validConfig() *Config {
	return &Config{
		JWT: &JWTConfig{
			SecretKey:     "a-long-enough-secret-for-hmac-signing",
			ValidIssuer:   "vuttr",
			ValidAudience: "vuttr-clients",
		},
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.applyDefaults()

	assert.Equal(t, defaultTokenTTL, cfg.JWT.TTL)
	assert.Equal(t, 12*time.Minute, cfg.JWT.TTL)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing jwt", mutate: func(c *Config) { c.JWT = nil }, wantErr: "jwt configuration is missing"},
		{name: "blank secret", mutate: func(c *Config) { c.JWT.SecretKey = "  " }, wantErr: "jwt.secretKey"},
		{name: "missing issuer", mutate: func(c *Config) { c.JWT.ValidIssuer = "" }, wantErr: "jwt.validIssuer"},
		{name: "missing audience", mutate: func(c *Config) { c.JWT.ValidAudience = "" }, wantErr: "jwt.validAudience"},
		{name: "negative ttl", mutate: func(c *Config) { c.JWT.TTL = -time.Second }, wantErr: "jwt.ttl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
