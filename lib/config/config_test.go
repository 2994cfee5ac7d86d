package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HydroshieldMKII/rainbow-table-generator/lib/digest"
)

func validConfig() Config {
	return Config{
		Algorithm: digest.SHA256,
		MinLength: 1,
		MaxLength: 4,
		Threads:   2,
	}
}

// TestValidate tests Config field validation.
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: nil,
		},
		{
			name:    "zero min length",
			mutate:  func(c *Config) { c.MinLength = 0 },
			wantErr: ErrInvalidLength,
		},
		{
			name:    "negative max length",
			mutate:  func(c *Config) { c.MaxLength = -1 },
			wantErr: ErrInvalidLength,
		},
		{
			name:    "min above max",
			mutate:  func(c *Config) { c.MinLength = 5 },
			wantErr: ErrInvalidLength,
		},
		{
			name:    "zero threads",
			mutate:  func(c *Config) { c.Threads = 0 },
			wantErr: ErrInvalidThreadCount,
		},
		{
			name:    "invalid algorithm",
			mutate:  func(c *Config) { c.Algorithm = digest.Algorithm(42) },
			wantErr: digest.ErrInvalidAlgorithm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestFromViper tests assembly and validation from viper settings.
func TestFromViper(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]any
		expected Config
		wantErr  error
	}{
		{
			name: "complete settings",
			settings: map[string]any{
				"algorithm":  "sha256",
				"salt":       "pepper",
				"min_length": 2,
				"max_length": 4,
				"threads":    3,
				"uppercase":  true,
				"digits":     true,
			},
			expected: Config{
				Algorithm: digest.SHA256,
				Salt:      "pepper",
				MinLength: 2,
				MaxLength: 4,
				Threads:   3,
				Uppercase: true,
				Digits:    true,
			},
		},
		{
			name: "missing algorithm",
			settings: map[string]any{
				"max_length": 4,
				"min_length": 1,
				"threads":    1,
			},
			wantErr: ErrMissingParameter,
		},
		{
			name: "unknown algorithm",
			settings: map[string]any{
				"algorithm":  "whirlpool",
				"max_length": 4,
				"min_length": 1,
				"threads":    1,
			},
			wantErr: digest.ErrInvalidAlgorithm,
		},
		{
			name: "missing max length",
			settings: map[string]any{
				"algorithm":  "md5",
				"min_length": 1,
				"threads":    1,
			},
			wantErr: ErrMissingParameter,
		},
		{
			name: "min above max",
			settings: map[string]any{
				"algorithm":  "md5",
				"min_length": 5,
				"max_length": 2,
				"threads":    1,
			},
			wantErr: ErrInvalidLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)

			for key, value := range tt.settings {
				viper.Set(key, value)
			}

			cfg, err := FromViper()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

// TestSetDefaults verifies defaults leave required settings unset.
func TestSetDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()

	assert.Equal(t, defaultMinLength, viper.GetInt("min_length"))
	assert.Equal(t, defaultBenchmarkDurationSeconds, viper.GetInt("benchmark_duration"))
	assert.GreaterOrEqual(t, viper.GetInt("threads"), 1)

	// Required settings must stay absent so their omission fails loudly.
	assert.Empty(t, viper.GetString("algorithm"))
	assert.Zero(t, viper.GetInt("max_length"))
}

// TestDefaultThreads tests the CPU count probe.
func TestDefaultThreads(t *testing.T) {
	assert.GreaterOrEqual(t, DefaultThreads(), 1)
}

// TestValidateBenchmarkDuration tests the lower duration bound.
func TestValidateBenchmarkDuration(t *testing.T) {
	assert.NoError(t, ValidateBenchmarkDuration(time.Second))
	assert.NoError(t, ValidateBenchmarkDuration(30*time.Second))
	assert.ErrorIs(t, ValidateBenchmarkDuration(500*time.Millisecond), ErrInvalidBenchmarkDuration)
	assert.ErrorIs(t, ValidateBenchmarkDuration(0), ErrInvalidBenchmarkDuration)
}
