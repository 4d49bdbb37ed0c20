package analyzer

import (
	"sort"
	"time"
)

// rankBySize returns a copy of files sorted by size descending. Equal
// sizes are ordered by path ascending so output is deterministic
// regardless of input order.
func rankBySize(files []FileRecord) []FileRecord {
	ranked := make([]FileRecord, len(files))
	copy(ranked, files)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Size != ranked[j].Size {
			return ranked[i].Size > ranked[j].Size
		}

		return ranked[i].Path < ranked[j].Path
	})

	return ranked
}

// modifiedWithin keeps files modified more recently than now minus the
// given number of days, ranked by size. Files with an unknown
// modification time are excluded.
func modifiedWithin(files []FileRecord, now time.Time, days int) []FileRecord {
	cutoff := now.AddDate(0, 0, -days)

	kept := make([]FileRecord, 0, len(files))

	for _, rec := range files {
		if rec.Modified.IsZero() {
			continue
		}

		if rec.Modified.After(cutoff) {
			kept = append(kept, rec)
		}
	}

	return rankBySize(kept)
}

// modifiedBefore keeps files not modified since now minus the given
// number of days, ranked by size. Files with an unknown modification
// time are excluded.
func modifiedBefore(files []FileRecord, now time.Time, days int) []FileRecord {
	cutoff := now.AddDate(0, 0, -days)

	kept := make([]FileRecord, 0, len(files))

	for _, rec := range files {
		if rec.Modified.IsZero() {
			continue
		}

		if rec.Modified.Before(cutoff) {
			kept = append(kept, rec)
		}
	}

	return rankBySize(kept)
}

// takeTop returns at most n leading entries without mutating the input.
func takeTop[T any](ranked []T, n int) []T {
	if len(ranked) > n {
		return ranked[:n]
	}

	return ranked
}
