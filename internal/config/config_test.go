package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("NPUCTL_SERVER", "")
	t.Setenv("NPUCTL_NON_INTERACTIVE", "")

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load("", false)
		require.NoError(t, err)
		assert.Equal(t, DefaultServerURL, cfg.ServerURL)
		assert.False(t, cfg.NonInteractive)
	})

	t.Run("config file overrides default", func(t *testing.T) {
		dir := filepath.Join(home, ".npuctl")
		require.NoError(t, os.MkdirAll(dir, 0700))
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, "config.yaml"),
			[]byte("server: https://portal.example.org/api\n"), 0600))

		cfg, err := Load("", false)
		require.NoError(t, err)
		assert.Equal(t, "https://portal.example.org/api", cfg.ServerURL)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("NPUCTL_SERVER", "https://env.example.org/api")
		t.Setenv("NPUCTL_NON_INTERACTIVE", "true")

		cfg, err := Load("", false)
		require.NoError(t, err)
		assert.Equal(t, "https://env.example.org/api", cfg.ServerURL)
		assert.True(t, cfg.NonInteractive)
	})

	t.Run("flag overrides everything", func(t *testing.T) {
		t.Setenv("NPUCTL_SERVER", "https://env.example.org/api")

		cfg, err := Load("https://flag.example.org/api", false)
		require.NoError(t, err)
		assert.Equal(t, "https://flag.example.org/api", cfg.ServerURL)
	})
}

func TestContextRoundTrip(t *testing.T) {
	cfg := &GlobalConfig{ServerURL: "https://portal.example.org/api"}
	ctx := InjectConfig(t.Context(), cfg)

	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, cfg, got)

	_, ok = FromContext(t.Context())
	assert.False(t, ok)
}
