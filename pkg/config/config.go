package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/i5heu/GoStateHooks/internal/testbench"
)

// Concurrency is an alias for testbench.Config. This allows other programs to
// describe producer/consumer mixes without importing the testbench.
type Concurrency = testbench.Config

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid benchmark config")

// Config describes one benchmark session.
type Config struct {
	Iterations      int           `yaml:"iterations"`
	TestDuration    time.Duration `yaml:"test_duration"`
	Capacity        uint64        `yaml:"capacity"`
	CPUs            []int         `yaml:"cpus"`
	Concurrency     []Concurrency `yaml:"concurrency"`
	HighConcurrency bool          `yaml:"high_concurrency"`
	Implementations []string      `yaml:"implementations"`
}

// CommonCPUs are the GOMAXPROCS values tried when no CPU list is configured.
var CommonCPUs = []int{1, 2, 3, 4, 6, 8, 12, 16, 32, 48, 56, 64, 96, 128, 192, 256, 384, 512}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		Iterations:   5,
		TestDuration: 5 * time.Second,
		Capacity:     1024,
		Concurrency: []Concurrency{
			{NumProducers: 2, NumConsumers: 2},
			{NumProducers: 10, NumConsumers: 10},
			{NumProducers: 50, NumConsumers: 50},
		},
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the config can drive a session.
func (c Config) Validate() error {
	if c.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalid, c.Iterations)
	}
	if c.TestDuration <= 0 {
		return fmt.Errorf("%w: test_duration must be positive, got %s", ErrInvalid, c.TestDuration)
	}
	if c.Capacity == 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalid)
	}
	if len(c.Concurrency) == 0 {
		return fmt.Errorf("%w: at least one concurrency entry is required", ErrInvalid)
	}
	for i, cc := range c.Concurrency {
		if cc.NumProducers < 1 || cc.NumConsumers < 1 {
			return fmt.Errorf("%w: concurrency[%d] needs at least one producer and one consumer", ErrInvalid, i)
		}
	}
	for _, n := range c.CPUs {
		if n < 1 {
			return fmt.Errorf("%w: cpu count %d", ErrInvalid, n)
		}
	}
	return nil
}

// ConcurrencySettings returns the configured mixes, extended with the high
// concurrency ones when enabled.
func (c Config) ConcurrencySettings() []Concurrency {
	out := append([]Concurrency(nil), c.Concurrency...)
	if c.HighConcurrency {
		out = append(out,
			Concurrency{NumProducers: 100, NumConsumers: 100},
			Concurrency{NumProducers: 250, NumConsumers: 250},
			Concurrency{NumProducers: 500, NumConsumers: 500},
		)
	}
	return out
}

// CPUSettings returns the GOMAXPROCS values to test on a machine with
// trueCPUs cores. Configured values above trueCPUs are capped.
func (c Config) CPUSettings(trueCPUs int) []int {
	var out []int
	if len(c.CPUs) > 0 {
		seen := make(map[int]bool)
		for _, n := range c.CPUs {
			n = min(n, trueCPUs)
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
		return out
	}
	for _, v := range CommonCPUs {
		if v <= trueCPUs {
			out = append(out, v)
		}
	}
	return out
}
