package engine

import (
	"time"

	"github.com/HydroshieldMKII/rainbow-table-generator/lib/config"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/digest"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/keyspace"
)

// Sample reports one timed benchmark run. It is never persisted; it exists
// only to report achievable throughput for the active configuration.
type Sample struct {
	Elapsed       time.Duration // Elapsed is the measured wall-clock time.
	Hashed        uint64        // Hashed is the number of digests computed.
	KeyspaceTotal uint64        // KeyspaceTotal is the candidate count of the sampled space.
}

// Rate returns the measured throughput in hashes per second.
func (s Sample) Rate() float64 {
	if s.Elapsed <= 0 {
		return 0
	}

	return float64(s.Hashed) / s.Elapsed.Seconds()
}

// Benchmark measures single-thread hash throughput for the current
// configuration. It deliberately runs without workers, samples candidates of
// the maximum length only, and discards every digest. The wall-clock
// deadline is checked at each iteration, so the run terminates promptly even
// when the sampled space is far larger than could ever be exhausted; an
// in-progress hash is never interrupted.
func (e *Engine) Benchmark(d time.Duration) (Sample, error) {
	if err := config.ValidateBenchmarkDuration(d); err != nil {
		return Sample{}, err
	}

	space, err := keyspace.New(e.symbols, e.cfg.MaxLength, e.cfg.MaxLength)
	if err != nil {
		return Sample{}, err
	}

	cursor := space.Cursor()

	start := time.Now()
	deadline := start.Add(d)

	var hashed uint64

	for time.Now().Before(deadline) {
		candidate, ok := cursor.Next()
		if !ok {
			break
		}

		if _, err := digest.Sum(e.cfg.Algorithm, e.cfg.Salt, candidate); err != nil {
			return Sample{}, err
		}

		hashed++
	}

	return Sample{
		Elapsed:       time.Since(start),
		Hashed:        hashed,
		KeyspaceTotal: space.Total(),
	}, nil
}
