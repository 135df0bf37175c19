package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", cfg.FragmentBaseURL)
	assert.Equal(t, "vitrine.db", cfg.DatabasePath)
}

func TestParseFlags_OverridesDefaults(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = []string{"vitrine", "-a", "http://fragments.local", "-d", "/tmp/store.db"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://fragments.local", cfg.FragmentBaseURL)
	assert.Equal(t, "/tmp/store.db", cfg.DatabasePath)
}

func TestParseJson_OverlaysFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"fragment_base_url":"http://json.local"}`), 0o600))

	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = []string{"vitrine", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "http://json.local", cfg.FragmentBaseURL)
	// Fields absent from the JSON keep their defaults.
	assert.Equal(t, "vitrine.db", cfg.DatabasePath)
}

func TestLoadConfig_FlagsWinOverJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"fragment_base_url":"http://json.local"}`), 0o600))

	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = []string{"vitrine", "-c", path, "-a", "http://flag.local"}

	cfg := LoadConfig()
	assert.Equal(t, "http://flag.local", cfg.FragmentBaseURL)
}
