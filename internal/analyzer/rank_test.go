package analyzer

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// names extracts base names for compact assertions.
func names(files []FileRecord) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, filepath.Base(f.Path))
	}

	return out
}

func TestRankingScenario(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	files := []FileRecord{
		{Path: "/v/a.txt", Size: 50 * MBBytes, Modified: now.AddDate(0, 0, -10)},
		{Path: "/v/b.log", Size: 200 * MBBytes, Modified: now.AddDate(0, 0, -200)},
		{Path: "/v/c.txt", Size: 5 * MBBytes, Modified: now.AddDate(0, 0, -5)},
	}

	assert.Equal(t, []string{"b.log", "a.txt", "c.txt"}, names(rankBySize(files)))
	assert.Equal(t, []string{"a.txt", "c.txt"}, names(modifiedWithin(files, now, 30)))
	assert.Equal(t, []string{"b.log"}, names(modifiedBefore(files, now, 180)))

	// The .txt group (55 MB) trails .log (200 MB) in the distribution.
	dist := extensionDistribution(files)
	require.Len(t, dist, 2)
	assert.Equal(t, "log", dist[0].Extension)
	assert.Equal(t, "txt", dist[1].Extension)
}

func TestRankBySizeTieBreakByPath(t *testing.T) {
	files := []FileRecord{
		{Path: "/v/zz.bin", Size: 10},
		{Path: "/v/aa.bin", Size: 10},
		{Path: "/v/mm.bin", Size: 10},
	}

	ranked := rankBySize(files)

	assert.Equal(t, []string{"aa.bin", "mm.bin", "zz.bin"}, names(ranked))
}

func TestRankBySizeIdempotent(t *testing.T) {
	files := []FileRecord{
		{Path: "/v/b.bin", Size: 30},
		{Path: "/v/a.bin", Size: 30},
		{Path: "/v/c.bin", Size: 99},
	}

	once := rankBySize(files)
	twice := rankBySize(once)

	assert.Equal(t, once, twice)
}

func TestRankBySizeDoesNotMutateInput(t *testing.T) {
	files := []FileRecord{
		{Path: "/v/small.bin", Size: 1},
		{Path: "/v/big.bin", Size: 100},
	}

	_ = rankBySize(files)

	assert.Equal(t, "small.bin", filepath.Base(files[0].Path))
}

func TestUnknownTimestampExcludedFromWindowsOnly(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	files := []FileRecord{
		{Path: "/v/known.bin", Size: 10, Modified: now.AddDate(0, 0, -400)},
		{Path: "/v/unknown.bin", Size: 500}, // zero Modified
	}

	assert.Equal(t, []string{"unknown.bin", "known.bin"}, names(rankBySize(files)))
	assert.Empty(t, names(modifiedWithin(files, now, 30)))
	assert.Equal(t, []string{"known.bin"}, names(modifiedBefore(files, now, 180)))
}

func TestTakeTop(t *testing.T) {
	files := []FileRecord{
		{Path: "/v/a"}, {Path: "/v/b"}, {Path: "/v/c"},
	}

	assert.Len(t, takeTop(files, 2), 2)
	assert.Len(t, takeTop(files, 10), 3)
}
