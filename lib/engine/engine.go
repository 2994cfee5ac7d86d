// Package engine drives the parallel combinatorial search-and-hash runs: a
// fixed worker pool pulls candidates from one shared keyspace cursor, hashes
// them, and aggregates results behind a single lock, in table mode, search
// mode, or both at once.
package engine

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/HydroshieldMKII/rainbow-table-generator/lib/charset"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/config"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/digest"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/keyspace"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/progress"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/table"
)

// ErrAmbiguousRequest is returned when a search-only request also carries a
// persisted-table destination; that combination needs the table-building call.
var ErrAmbiguousRequest = errors.New("ambiguous request: search-only call cannot also persist a table")

// Engine is a configured, validated handle over one candidate space. All run
// methods may be called repeatedly; each run takes a fresh cursor over the
// space.
type Engine struct {
	cfg     config.Config
	symbols string
	space   *keyspace.Keyspace
}

// Result is one (digest, plaintext) search hit.
type Result struct {
	Digest    string // Digest is the matched lowercase hex digest.
	Plaintext string // Plaintext is the candidate that produced it.
}

// New validates the configuration, composes the charset, and builds the
// keyspace. Any validation failure surfaces here, before work starts.
func New(cfg config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	symbols := charset.Compose(charset.Options{
		Uppercase: cfg.Uppercase,
		Digits:    cfg.Digits,
		Special:   cfg.Special,
	})

	space, err := keyspace.New(symbols, cfg.MinLength, cfg.MaxLength)
	if err != nil {
		return nil, err
	}

	return &Engine{cfg: cfg, symbols: symbols, space: space}, nil
}

// Charset returns the composed ordered symbol set.
func (e *Engine) Charset() string {
	return e.symbols
}

// Keyspace returns the candidate space the engine enumerates.
func (e *Engine) Keyspace() *keyspace.Keyspace {
	return e.space
}

// Config returns the validated configuration.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// BuildTable processes the whole candidate space and returns the populated
// rainbow table. The observer receives one advisory tick per candidate.
func (e *Engine) BuildTable(obs progress.Observer) (*table.Table, error) {
	tbl, _, err := e.run("", true, obs)

	return tbl, err
}

// Search looks for a candidate whose digest equals target, stopping
// cooperatively once a match is recorded: workers observe the found flag at
// iteration boundaries, so candidates already in flight may still be hashed
// after the match. Returns nil when the space is exhausted without a match.
func (e *Engine) Search(target string) (*Result, error) {
	_, res, err := e.run(normalizeTarget(target), false, progress.Nop())

	return res, err
}

// BuildTableAndSearch builds the full table and records a search result in a
// single pass. The search match does not stop the run; the table covers the
// whole space.
func (e *Engine) BuildTableAndSearch(target string, obs progress.Observer) (*table.Table, *Result, error) {
	return e.run(normalizeTarget(target), true, obs)
}

// CheckRequest rejects parameter combinations the calling surface cannot
// honor: a call that produces no table cannot also be given a table
// destination alongside a search target.
func CheckRequest(wantTable bool, outputPath, target string) error {
	if !wantTable && outputPath != "" && target != "" {
		return ErrAmbiguousRequest
	}

	return nil
}

// normalizeTarget lowercases the target so it compares against the engine's
// lowercase hex digests.
func normalizeTarget(target string) string {
	return strings.ToLower(strings.TrimSpace(target))
}

// aggregate is the single-lock shared state of one run. The critical section
// is a pure map insert / compare-and-set; hashing always happens outside it.
type aggregate struct {
	mu  sync.Mutex
	tbl *table.Table
	res *Result
	err error
}

// run executes one pass over the space with the configured worker pool.
// target == "" disables search mode; wantTable disables or enables table
// accumulation. On any digest error the run stops cooperatively and returns
// the first error with no partial results.
func (e *Engine) run(target string, wantTable bool, obs progress.Observer) (*table.Table, *Result, error) {
	agg := &aggregate{}
	if wantTable {
		agg.tbl = table.New()
	}

	// In search-only mode a recorded match stops the run; with a table
	// requested the pass must cover the whole space regardless.
	stopOnMatch := target != "" && !wantTable

	var stop atomic.Bool

	cursor := e.space.Cursor()

	var wg sync.WaitGroup
	for range e.cfg.Threads {
		wg.Add(1)

		go func() {
			defer wg.Done()
			e.worker(cursor, agg, &stop, target, stopOnMatch, obs)
		}()
	}

	wg.Wait()
	obs.Finish()

	if agg.err != nil {
		return nil, nil, agg.err
	}

	return agg.tbl, agg.res, nil
}

// worker pulls candidates until the space is exhausted or the stop flag is
// raised. The stop check happens only at iteration boundaries; there is no
// preemption of an in-flight hash.
func (e *Engine) worker(cursor *keyspace.Cursor, agg *aggregate, stop *atomic.Bool, target string, stopOnMatch bool, obs progress.Observer) {
	for !stop.Load() {
		candidate, ok := cursor.Next()
		if !ok {
			return
		}

		sum, err := digest.Sum(e.cfg.Algorithm, e.cfg.Salt, candidate)
		if err != nil {
			// A digest failure is a programming error, fatal to the
			// whole run. First error wins.
			agg.mu.Lock()
			if agg.err == nil {
				agg.err = err
			}
			agg.mu.Unlock()
			stop.Store(true)

			return
		}

		agg.mu.Lock()
		if agg.tbl != nil {
			agg.tbl.Put(sum, candidate)
		}

		if target != "" && agg.res == nil && sum == target {
			// First writer wins; the slot is written at most once.
			agg.res = &Result{Digest: sum, Plaintext: candidate}
			if stopOnMatch {
				stop.Store(true)
			}
		}
		agg.mu.Unlock()

		obs.Tick()
	}
}
