package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeTempConfig(t, `{
		"seed": 42,
		"region": "houston",
		"ai_provider": "ollama",
		"listen_addr": ":9000"
	}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "houston", cfg.Region)
	assert.Equal(t, "ollama", cfg.AIProvider)
	assert.Equal(t, ":9000", cfg.ListenAddr)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, "{not json")

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate_NegativeSeedRejected(t *testing.T) {
	cfg := &Config{Seed: -1}
	assert.Error(t, cfg.Validate())
}

func TestValidate_UnknownProviderRejected(t *testing.T) {
	cfg := &Config{AIProvider: "skynet"}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown 'ai_provider'")
}

func TestValidate_GeminiRequiresKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	cfg := &Config{AIProvider: "gemini"}
	assert.Error(t, cfg.Validate())

	cfg.APIKey = "test-key"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_EmptyConfigIsValid(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults_FillsEmptyFields(t *testing.T) {
	cfg := &Config{Region: "austin"}
	defaults := Config{
		Region:     "houston",
		AIProvider: "mock",
		ListenAddr: ":8080",
		Seed:       7,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "austin", merged.Region, "explicit value wins over default")
	assert.Equal(t, "mock", merged.AIProvider)
	assert.Equal(t, ":8080", merged.ListenAddr)
	assert.Equal(t, int64(7), merged.Seed)
}

func TestMergeWithDefaults_DoesNotMutateReceiver(t *testing.T) {
	cfg := &Config{}
	_ = cfg.MergeWithDefaults(Config{Region: "el-paso"})

	assert.Empty(t, cfg.Region)
}
