package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HydroshieldMKII/rainbow-table-generator/lib/config"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/digest"
	"github.com/HydroshieldMKII/rainbow-table-generator/lib/progress"
)

const sha256OfA = "ca978112ca1bbdcafac231b39a23dc4da786eff8147c4e72b9807785afee48bb"

func testConfig() config.Config {
	return config.Config{
		Algorithm: digest.SHA256,
		MinLength: 1,
		MaxLength: 2,
		Threads:   4,
	}
}

// TestNewRejectsInvalidConfig verifies validation happens before any work.
func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Threads = 0

	_, err := New(cfg)
	assert.ErrorIs(t, err, config.ErrInvalidThreadCount)
}

// TestNewComposesCharset verifies the engine reflects its composed symbols.
func TestNewComposesCharset(t *testing.T) {
	cfg := testConfig()
	cfg.Digits = true

	eng, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, "abcdefghijklmnopqrstuvwxyz0123456789", eng.Charset())
	assert.Equal(t, uint64(36+36*36), eng.Keyspace().Total())
}

// TestBuildTableCoversSpace verifies the full lowercase length-1..2 space
// yields one entry per candidate.
func TestBuildTableCoversSpace(t *testing.T) {
	eng, err := New(testConfig())
	require.NoError(t, err)

	tbl, err := eng.BuildTable(progress.Nop())
	require.NoError(t, err)

	// 26 + 676 candidates, and SHA-256 yields no collisions among them.
	assert.Equal(t, 702, tbl.Len())

	plaintext, ok := tbl.Lookup(sha256OfA)
	assert.True(t, ok)
	assert.Equal(t, "a", plaintext)
}

// TestBuildTableEntriesMatchDigest verifies each stored pair recomputes.
func TestBuildTableEntriesMatchDigest(t *testing.T) {
	cfg := testConfig()
	cfg.Algorithm = digest.MD5
	cfg.Salt = "pepper"
	cfg.MaxLength = 1

	eng, err := New(cfg)
	require.NoError(t, err)

	tbl, err := eng.BuildTable(progress.Nop())
	require.NoError(t, err)

	require.Equal(t, 26, tbl.Len())

	for sum, plaintext := range tbl.Entries() {
		expected, err := digest.Sum(digest.MD5, "pepper", plaintext)
		require.NoError(t, err)
		assert.Equal(t, expected, sum)
	}
}

// TestSearchFindsKnownDigest verifies a reachable target is recovered.
func TestSearchFindsKnownDigest(t *testing.T) {
	eng, err := New(testConfig())
	require.NoError(t, err)

	res, err := eng.Search(sha256OfA)
	require.NoError(t, err)

	require.NotNil(t, res)
	assert.Equal(t, sha256OfA, res.Digest)
	assert.Equal(t, "a", res.Plaintext)
}

// TestSearchNormalizesTarget verifies case and whitespace in the target are
// tolerated.
func TestSearchNormalizesTarget(t *testing.T) {
	eng, err := New(testConfig())
	require.NoError(t, err)

	res, err := eng.Search("  " + "CA978112CA1BBDCAFAC231B39A23DC4DA786EFF8147C4E72B9807785AFEE48BB" + "  ")
	require.NoError(t, err)

	require.NotNil(t, res)
	assert.Equal(t, "a", res.Plaintext)
}

// TestSearchExhaustsWithoutMatch verifies an unreachable target yields nil.
func TestSearchExhaustsWithoutMatch(t *testing.T) {
	eng, err := New(testConfig())
	require.NoError(t, err)

	res, err := eng.Search("0000000000000000000000000000000000000000000000000000000000000000")
	require.NoError(t, err)
	assert.Nil(t, res)
}

// TestSearchRespectsSalt verifies the salt participates in the comparison.
func TestSearchRespectsSalt(t *testing.T) {
	cfg := testConfig()
	cfg.Salt = "na"

	eng, err := New(cfg)
	require.NoError(t, err)

	// SHA-256("na" + "cl"); the salted digest must resolve to the candidate
	// alone, without the salt.
	target, err := digest.Sum(digest.SHA256, "na", "cl")
	require.NoError(t, err)

	res, err := eng.Search(target)
	require.NoError(t, err)

	require.NotNil(t, res)
	assert.Equal(t, "cl", res.Plaintext)
}

// TestBuildTableAndSearch verifies the combined pass covers the whole space
// while still recording the hit.
func TestBuildTableAndSearch(t *testing.T) {
	eng, err := New(testConfig())
	require.NoError(t, err)

	tbl, res, err := eng.BuildTableAndSearch(sha256OfA, progress.Nop())
	require.NoError(t, err)

	// The match must not cut the pass short.
	assert.Equal(t, 702, tbl.Len())

	require.NotNil(t, res)
	assert.Equal(t, "a", res.Plaintext)
}

// TestBuildTableAndSearchMiss verifies a missing target still yields the full
// table.
func TestBuildTableAndSearchMiss(t *testing.T) {
	eng, err := New(testConfig())
	require.NoError(t, err)

	tbl, res, err := eng.BuildTableAndSearch("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", progress.Nop())
	require.NoError(t, err)

	assert.Equal(t, 702, tbl.Len())
	assert.Nil(t, res)
}

// TestSingleThreadMatchesMultiThread verifies worker count never changes the
// resulting table contents.
func TestSingleThreadMatchesMultiThread(t *testing.T) {
	single := testConfig()
	single.Threads = 1

	engSingle, err := New(single)
	require.NoError(t, err)

	tblSingle, err := engSingle.BuildTable(progress.Nop())
	require.NoError(t, err)

	multi := testConfig()
	multi.Threads = 8

	engMulti, err := New(multi)
	require.NoError(t, err)

	tblMulti, err := engMulti.BuildTable(progress.Nop())
	require.NoError(t, err)

	assert.Equal(t, tblSingle.Entries(), tblMulti.Entries())
}

// TestCheckRequest tests the ambiguous-parameter guard.
func TestCheckRequest(t *testing.T) {
	tests := []struct {
		name       string
		wantTable  bool
		outputPath string
		target     string
		wantErr    bool
	}{
		{name: "search only", target: "abcd"},
		{name: "table with output", wantTable: true, outputPath: "out.txt"},
		{name: "table with output and target", wantTable: true, outputPath: "out.txt", target: "abcd"},
		{name: "search with output", outputPath: "out.txt", target: "abcd", wantErr: true},
		{name: "output without target", outputPath: "out.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRequest(tt.wantTable, tt.outputPath, tt.target)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrAmbiguousRequest)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
