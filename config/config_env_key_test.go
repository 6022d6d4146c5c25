package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"media": map[string]any{
			"bucketUrl":     "mem://",
			"publicBaseUrl": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"mail": map[string]any{
			"host": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "MEDIA_BUCKETURL", want: "media.bucketUrl"},
		{envKey: "MEDIA_PUBLICBASEURL", want: "media.publicBaseUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "MAIL_HOST", want: "mail.host"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, int64(5<<20), cfg.Media.MaxImageSize)
	assert.Equal(t, 5, cfg.Media.MaxImageCount)
	assert.Equal(t, int64(20<<20), cfg.Media.MaxDocumentSize)
	assert.Equal(t, "content", cfg.Content.DefaultsDir)
}

func TestConfig_ApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:  &AuthConfig{AccessTokenTTL: time.Hour},
		Media: &MediaConfig{MaxImageCount: 2},
	}
	cfg.HTTP.MaxRequestBodySize = "10MB"
	cfg.applyDefaults()

	assert.Equal(t, "10MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 2, cfg.Media.MaxImageCount)
}
