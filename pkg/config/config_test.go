package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5, cfg.Iterations)
	assert.Equal(t, 5*time.Second, cfg.TestDuration)
	assert.Len(t, cfg.ConcurrencySettings(), 3)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
iterations: 2
test_duration: 250ms
cpus: [1, 4]
concurrency:
  - producers: 1
    consumers: 3
implementations: [linkedqueue]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Iterations)
	assert.Equal(t, 250*time.Millisecond, cfg.TestDuration)
	assert.Equal(t, uint64(1024), cfg.Capacity, "unset fields keep defaults")
	assert.Equal(t, []Concurrency{{NumProducers: 1, NumConsumers: 3}}, cfg.Concurrency)
	assert.Equal(t, []string{"linkedqueue"}, cfg.Implementations)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeConfig(t, "iterations: 0\n")

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "iterations: [not a number\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"duration":    func(c *Config) { c.TestDuration = 0 },
		"capacity":    func(c *Config) { c.Capacity = 0 },
		"concurrency": func(c *Config) { c.Concurrency = nil },
		"consumers":   func(c *Config) { c.Concurrency = []Concurrency{{NumProducers: 1}} },
		"cpus":        func(c *Config) { c.CPUs = []int{0} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestHighConcurrency(t *testing.T) {
	cfg := Default()
	cfg.HighConcurrency = true

	got := cfg.ConcurrencySettings()
	require.Len(t, got, 6)
	assert.Equal(t, Concurrency{NumProducers: 500, NumConsumers: 500}, got[5])
	assert.Len(t, cfg.Concurrency, 3, "base list is not modified")
}

func TestCPUSettings(t *testing.T) {
	cfg := Default()
	assert.Equal(t, []int{1, 2, 3, 4, 6, 8}, cfg.CPUSettings(8))

	cfg.CPUs = []int{2, 64, 128}
	assert.Equal(t, []int{2, 16}, cfg.CPUSettings(16))
}
