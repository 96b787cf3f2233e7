package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"client"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8080", c.ServerBaseURL)
	assert.Equal(t, "", c.DatabasePath)
	assert.Equal(t, 5*time.Second, c.NotificationTTL)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:8080", cfg.ServerBaseURL)
	assert.Equal(t, 5*time.Second, cfg.NotificationTTL)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	resetArgs(t, "-a", "http://roster.school:9090", "-t", "10")

	cfg := LoadConfig()

	assert.Equal(t, "http://roster.school:9090", cfg.ServerBaseURL)
	assert.Equal(t, 10*time.Second, cfg.NotificationTTL)
}
