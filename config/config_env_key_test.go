package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"backend": map[string]any{
			"baseUrl": "",
			"timeout": "15s",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"redis": map[string]any{
			"poolSize": 4,
		},
		"testRoutes": map[string]any{
			"enabled": false,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "BACKEND_BASEURL", want: "backend.baseUrl"},
		{envKey: "BACKEND_TIMEOUT", want: "backend.timeout"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "REDIS_POOLSIZE", want: "redis.poolSize"},
		{envKey: "TESTROUTES_ENABLED", want: "testRoutes.enabled"},
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

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{QRCode: &QRCodeConfig{}}
	cfg.Backend.BaseURL = " http://localhost:8081/api/ "

	applyDefaults(cfg)

	assert.Equal(t, "http://localhost:8081/api", cfg.Backend.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	require.Error(t, cfg.validate())

	cfg.Backend.BaseURL = "http://localhost:8081/api"
	require.NoError(t, cfg.validate())

	cfg.Live = &LiveConfig{Provider: LiveProviderFirestore}
	require.Error(t, cfg.validate())

	cfg.Firebase = &FirebaseConfig{ProjectID: "streetbite"}
	require.NoError(t, cfg.validate())

	cfg.Live.Provider = "carrier-pigeon"
	require.Error(t, cfg.validate())
}

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	t.Setenv("BACKEND_BASEURL", "http://backend.internal/api")
	t.Setenv("REDIS_POOLSIZE", "9")

	cfg, err := LoadWithEnv[Config]("config", ".")
	require.NoError(t, err)

	assert.Equal(t, "http://backend.internal/api", cfg.Backend.BaseURL)
	assert.Equal(t, 9, cfg.Redis.PoolSize)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, LiveProviderMemory, cfg.Live.Provider)
}
