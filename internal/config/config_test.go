package config

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APPLE_DEVELOPER_TEAM_ID", "TEAM123")
	t.Setenv("PASS_CERTIFICATE", base64.StdEncoding.EncodeToString([]byte("cert-pem")))
	t.Setenv("PASS_PRIVATE_KEY", base64.StdEncoding.EncodeToString([]byte("key-pem")))
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	for _, k := range []string{"PORT", "PASS_STORE_BACKEND", "PASS_STORE_CAPACITY", "PASS_STORE_TTL", "IMAGE_MAX_BYTES", "IMAGE_MAX_PIXELS", "MAX_BODY_BYTES", "IMAGE_RESPONSE_TIMEOUT", "IMAGE_DEADLINE", "PASS_WWDR_CERTIFICATE", "PASS_TYPE_IDENTIFIER"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "TEAM123", cfg.TeamIdentifier)
	assert.Equal(t, "pass.br.ufpe.cin.academy.gera", cfg.PassTypeIdentifier)
	assert.Equal(t, []byte("cert-pem"), cfg.Certificate)
	assert.Equal(t, []byte("key-pem"), cfg.PrivateKey)
	assert.Nil(t, cfg.WWDRCertificate)
	assert.Equal(t, StoreBackendMemory, cfg.StoreBackend)
	assert.Equal(t, 10000, cfg.StoreCapacity)
	assert.Equal(t, time.Duration(0), cfg.StoreTTL)
	assert.Equal(t, int64(2097152), cfg.ImageMaxBytes)
	assert.Equal(t, int64(16383*16383), cfg.ImageMaxPixels)
	assert.Equal(t, int64(100*1024), cfg.MaxBodyBytes)
	assert.Equal(t, time.Second, cfg.ImageResponseTimeout)
	assert.Equal(t, 2*time.Second, cfg.ImageDeadline)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9090")
	t.Setenv("PASS_STORE_BACKEND", "Redis")
	t.Setenv("PASS_STORE_TTL", "24h")
	t.Setenv("CONTACT_EMAIL", "suporte@gera.app")
	t.Setenv("IMAGE_MAX_PIXELS", "1000000")
	t.Setenv("MAX_BODY_BYTES", "2048")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, StoreBackendRedis, cfg.StoreBackend)
	assert.Equal(t, 24*time.Hour, cfg.StoreTTL)
	assert.Equal(t, "suporte@gera.app", cfg.ContactEmail)
	assert.Equal(t, int64(1000000), cfg.ImageMaxPixels)
	assert.Equal(t, int64(2048), cfg.MaxBodyBytes)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
	}{
		{"invalid port", "PORT", "http"},
		{"invalid backend", "PASS_STORE_BACKEND", "mongo"},
		{"invalid capacity", "PASS_STORE_CAPACITY", "-1"},
		{"invalid ttl", "PASS_STORE_TTL", "forever"},
		{"invalid image limit", "IMAGE_MAX_BYTES", "big"},
		{"invalid deadline", "IMAGE_DEADLINE", "2"},
		{"invalid pixel limit", "IMAGE_MAX_PIXELS", "0"},
		{"invalid body limit", "MAX_BODY_BYTES", "-5"},
		{"invalid certificate", "PASS_CERTIFICATE", "%%%"},
		{"missing team", "APPLE_DEVELOPER_TEAM_ID", ""},
		{"missing key", "PASS_PRIVATE_KEY", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tc.key, tc.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
