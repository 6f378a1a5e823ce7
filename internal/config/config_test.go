package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_NewFromFile_ShouldApplyDefaults(t *testing.T) {
	t.Setenv(apiKeyEnv, "")
	keyFile := writeFile(t, "api.key", "  abc123\n")
	path := writeFile(t, "config.yaml", `
app:
  convert-to: huf
  max-currencies: 3
openexchangerates:
  api-key-file: `+keyFile+`
`)

	cfg, err := NewFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "HUF", cfg.App().TargetCurrency())
	assert.Equal(t, int32(2), cfg.App().Decimals())
	assert.Equal(t, 12.0, cfg.App().UpdateFrequency())
	assert.Equal(t, 3, cfg.App().MaxCurrencies())
	assert.True(t, cfg.App().UsageVisible())
	assert.True(t, cfg.App().RatesUpdatedVisible())
	assert.Equal(t, defaultUpdatedLayout, cfg.App().LastUpdatedLayout())
	assert.Equal(t, "abc123", cfg.OXR().ApiKey())
	assert.Equal(t, 10*time.Second, cfg.OXR().Timeout())
	assert.Equal(t, BackendMemory, cfg.Storage().Kind())
	assert.Equal(t, "conversionRates", cfg.Storage().Key())
	assert.Equal(t, "rate_snapshots", cfg.Postgres().Table())
	assert.False(t, cfg.Kafka().Enabled())
}

func Test_NewFromFile_ShouldPreferKeyFromEnv(t *testing.T) {
	t.Setenv(apiKeyEnv, "from-env")
	path := writeFile(t, "config.yaml", "openexchangerates:\n  api-key-file: /does/not/exist\n")

	cfg, err := NewFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.OXR().ApiKey())
}

func Test_NewFromFile_MissingKeyFileIsNotAnError(t *testing.T) {
	t.Setenv(apiKeyEnv, "")
	path := writeFile(t, "config.yaml", "openexchangerates:\n  api-key-file: /does/not/exist\n")

	cfg, err := NewFromFile(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.OXR().ApiKey())
}

func Test_NewFromFile_ShouldRejectInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "bad target", yaml: "app:\n  convert-to: EURO\n"},
		{name: "negative decimals", yaml: "app:\n  decimals: -1\n"},
		{name: "zero frequency", yaml: "app:\n  update-frequency-hours: 0\n"},
		{name: "unknown backend", yaml: "storage:\n  backend: sqlite\n"},
		{name: "not yaml", yaml: "app: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFromFile(writeFile(t, "config.yaml", tt.yaml))
			assert.Error(t, err)
		})
	}
}

func Test_NewFromFile_ShouldFailOnMissingFile(t *testing.T) {
	_, err := NewFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
