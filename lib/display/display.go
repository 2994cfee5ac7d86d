// Package display provides output and logging functions for the generator.
package display

// Put all the functions that display output here so that they can be easily changed later

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v4/host"

	"github.com/HydroshieldMKII/rainbow-table-generator/appstate"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/config"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/engine"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/progress"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/table"
)

// Startup logs the process start together with basic host information.
func Startup(version string) {
	appstate.Logger.Info("Starting rainbow table generator", "version", version)

	if info, err := host.Info(); err == nil {
		appstate.Logger.Debug("Host info", "os", info.OS, "platform", info.Platform, "kernel_arch", info.KernelArch)
	}
}

// RunParameters logs the validated configuration and the derived space size.
func RunParameters(cfg config.Config, charsetSize int, total uint64) {
	appstate.Logger.Info("Run parameters",
		"algorithm", cfg.Algorithm,
		"min_length", cfg.MinLength,
		"max_length", cfg.MaxLength,
		"threads", cfg.Threads,
		"charset_size", charsetSize,
		"candidates", humanize.Comma(int64(total))) //nolint:gosec // Display only
	appstate.Logger.Debug("Salt configured", "salt_len", len(cfg.Salt))
}

// TableComplete logs the finished table size and the run duration.
func TableComplete(tbl *table.Table, elapsed time.Duration) {
	rate := float64(tbl.Len()) / elapsed.Seconds()
	appstate.Logger.Info("Table complete",
		"entries", humanize.Comma(int64(tbl.Len())),
		"elapsed", elapsed.Round(time.Millisecond),
		"speed", humanize.SI(rate, "H/s"))
}

// TableWritten logs the serialized output destination.
func TableWritten(path string, format table.Format) {
	appstate.Logger.Info("Table written", "path", path, "format", format)
}

// SearchHit logs a successful search result.
func SearchHit(res *engine.Result) {
	appstate.Logger.Info("Plaintext found", "digest", res.Digest, "plaintext", res.Plaintext)
}

// SearchExhausted logs that the space was exhausted without a match.
func SearchExhausted(total uint64) {
	appstate.Logger.Info("Keyspace exhausted, no match",
		"candidates_checked", humanize.Comma(int64(total))) //nolint:gosec // Display only
}

// BenchmarkStarting logs that a benchmark run is beginning.
func BenchmarkStarting(d time.Duration) {
	appstate.Logger.Info("Performing benchmark", "duration", d)
}

// Benchmark logs one benchmark sample: rate, volume, and the share of the
// sampled space that was covered.
func Benchmark(sample engine.Sample) {
	appstate.Logger.Info("Benchmark result",
		"speed", humanize.SI(sample.Rate(), "H/s"),
		"hashed", humanize.Comma(int64(sample.Hashed)), //nolint:gosec // Display only
		"elapsed", sample.Elapsed.Round(time.Millisecond),
		"keyspace_covered", progress.Percent(float64(sample.Hashed), float64(sample.KeyspaceTotal)))
}

// ShuttingDown logs process shutdown.
func ShuttingDown() {
	appstate.Logger.Info("Shutting down")
}
