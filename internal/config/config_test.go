package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPathHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "paragen", "config.yaml"), path)
}

func TestDefaultPathFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "paragen", "config.yaml"), path)
}

func TestLoadWhenMissingReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	saved := &Config{Provider: "ollama", Model: "llama3", Endpoint: "http://localhost:11434", Timeout: "45s"}

	require.NoError(t, Save(path, saved))
	_, err := os.Stat(path)
	require.NoError(t, err, "config file was not created")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	timeout, err := loaded.RequestTimeout()
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, timeout)
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint: https://example.test\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultProvider, cfg.Provider)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, "https://example.test", cfg.Endpoint)
	assert.Equal(t, DefaultTimeout.String(), cfg.Timeout)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("invalid: yaml: content: [}"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadInvalidTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: soon\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid timeout")
}

func TestApplyEnvAndOverridePrecedence(t *testing.T) {
	t.Setenv("PARAGEN_PROVIDER", "openai")
	t.Setenv("PARAGEN_MODEL", "gpt-4o")
	t.Setenv("PARAGEN_ENDPOINT", "")
	t.Setenv("PARAGEN_TIMEOUT", "10s")

	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, "10s", cfg.Timeout)

	cfg.Override("", "gpt-4.1", "", "")
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4.1", cfg.Model)

	cfg.Override("ollama", "", "http://gpu-box:11434", "1m")
	assert.Equal(t, "ollama", cfg.Provider)
	assert.Empty(t, cfg.Model, "switching provider should drop the old model")
	assert.Equal(t, "http://gpu-box:11434", cfg.Endpoint)
	assert.Equal(t, "1m", cfg.Timeout)
}

func TestApplyEnvProviderDropsInheritedModel(t *testing.T) {
	t.Setenv("PARAGEN_PROVIDER", "openai")
	t.Setenv("PARAGEN_MODEL", "")
	t.Setenv("PARAGEN_ENDPOINT", "")
	t.Setenv("PARAGEN_TIMEOUT", "")

	cfg := Default()
	cfg.ApplyEnv()
	cfg.Override("", "", "", "")
	assert.Equal(t, "openai", cfg.Provider)
	assert.Empty(t, cfg.Model, "the gemini default model must not follow the provider switch")

	t.Setenv("PARAGEN_PROVIDER", "Gemini")
	same := Default()
	same.ApplyEnv()
	assert.Equal(t, DefaultModel, same.Model, "same provider keeps its model")
}

func TestRequestTimeout(t *testing.T) {
	cases := []struct {
		value   string
		want    time.Duration
		wantErr bool
	}{
		{value: "", want: DefaultTimeout},
		{value: "0s", want: 0},
		{value: "90s", want: 90 * time.Second},
		{value: "-1s", wantErr: true},
		{value: "later", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			got, err := (&Config{Timeout: tc.value}).RequestTimeout()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
