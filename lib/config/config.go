// Package config provides configuration management and fail-fast validation
// for the rainbow table generator.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/spf13/viper"

	"github.com/HydroshieldMKII/rainbow-table-generator/lib/digest"
)

// Validation errors. All are surfaced before any generation work starts and
// are fatal to the current call; nothing in the engine retries.
var (
	// ErrMissingParameter is returned when a required setting has no value.
	ErrMissingParameter = errors.New("missing required parameter")
	// ErrInvalidLength is returned when the length bounds are not positive
	// integers or the minimum exceeds the maximum.
	ErrInvalidLength = errors.New("invalid length range")
	// ErrInvalidThreadCount is returned when the worker count is not positive.
	ErrInvalidThreadCount = errors.New("invalid thread count")
	// ErrInvalidBenchmarkDuration is returned when the benchmark duration is
	// below one second.
	ErrInvalidBenchmarkDuration = errors.New("invalid benchmark duration")
)

const (
	defaultMinLength                = 1
	defaultBenchmarkDurationSeconds = 10
)

// Config holds every parameter the engine needs. All fields are validated
// before a single candidate is generated.
type Config struct {
	Algorithm digest.Algorithm // Algorithm selects the digest function.
	Salt      string           // Salt is prepended to every candidate before hashing; may be empty.
	MinLength int              // MinLength is the inclusive lower candidate length bound.
	MaxLength int              // MaxLength is the inclusive upper candidate length bound.
	Threads   int              // Threads is the fixed worker pool size.
	Uppercase bool             // Uppercase enables the uppercase letter category.
	Digits    bool             // Digits enables the digit category.
	Special   bool             // Special enables the special symbol category.
}

// Validate checks every field and returns the first violation found.
func (c Config) Validate() error {
	if c.MinLength < 1 || c.MaxLength < 1 {
		return fmt.Errorf("%w: lengths must be positive, got min=%d max=%d", ErrInvalidLength, c.MinLength, c.MaxLength)
	}

	if c.MinLength > c.MaxLength {
		return fmt.Errorf("%w: min %d exceeds max %d", ErrInvalidLength, c.MinLength, c.MaxLength)
	}

	if c.Threads < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidThreadCount, c.Threads)
	}

	if !c.Algorithm.Valid() {
		return fmt.Errorf("%w: %s", digest.ErrInvalidAlgorithm, c.Algorithm)
	}

	return nil
}

// SetDefaults registers default configuration values with viper. The
// algorithm and maximum length stay unset on purpose: they are required and
// their absence must surface as a validation error, not a silent default.
func SetDefaults() {
	viper.SetDefault("min_length", defaultMinLength)
	viper.SetDefault("threads", DefaultThreads())
	viper.SetDefault("uppercase", false)
	viper.SetDefault("digits", false)
	viper.SetDefault("special", false)
	viper.SetDefault("salt", "")
	viper.SetDefault("benchmark_duration", defaultBenchmarkDurationSeconds)
}

// FromViper assembles and validates a Config from the viper settings.
func FromViper() (Config, error) {
	algName := viper.GetString("algorithm")
	if algName == "" {
		return Config{}, fmt.Errorf("%w: algorithm", ErrMissingParameter)
	}

	alg, err := digest.ParseAlgorithm(algName)
	if err != nil {
		return Config{}, err
	}

	if viper.GetInt("max_length") == 0 {
		return Config{}, fmt.Errorf("%w: max_length", ErrMissingParameter)
	}

	cfg := Config{
		Algorithm: alg,
		Salt:      viper.GetString("salt"),
		MinLength: viper.GetInt("min_length"),
		MaxLength: viper.GetInt("max_length"),
		Threads:   viper.GetInt("threads"),
		Uppercase: viper.GetBool("uppercase"),
		Digits:    viper.GetBool("digits"),
		Special:   viper.GetBool("special"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// DefaultThreads returns the logical CPU count, falling back to
// runtime.NumCPU when the probe fails.
func DefaultThreads() int {
	count, err := cpu.Counts(true)
	if err != nil || count < 1 {
		return runtime.NumCPU()
	}

	return count
}

// ValidateBenchmarkDuration rejects durations below one second; the sampler
// needs a measurable window to report a meaningful rate.
func ValidateBenchmarkDuration(d time.Duration) error {
	if d < time.Second {
		return fmt.Errorf("%w: %s", ErrInvalidBenchmarkDuration, d)
	}

	return nil
}
