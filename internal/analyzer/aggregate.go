package analyzer

import (
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
)

// extensionOf returns the grouping key for a file path: the lowercase
// extension without the leading dot, or NoExtension. A leading-dot name
// with no other dot (".bashrc") counts as extensionless.
func extensionOf(path string) string {
	base := filepath.Base(path)

	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	if ext == "" || "."+ext == base {
		return NoExtension
	}

	return strings.ToLower(ext)
}

// extensionDistribution groups files by normalized extension, summing
// sizes and counts per group. Each worker folds a partial map over its
// chunk of the file list; partials are merged by summing matching keys,
// so the result is independent of chunking and input order. Groups at or
// below minExtensionSize are dropped; output is sorted by cumulative
// size descending with extension ascending as tie-break.
func extensionDistribution(files []FileRecord) []ExtensionStat {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(files) {
		workers = len(files)
	}

	if workers < 1 {
		workers = 1
	}

	partials := make([]map[string]ExtensionStat, workers)

	var wg sync.WaitGroup

	chunk := (len(files) + workers - 1) / workers

	for i := range workers {
		lo := i * chunk

		hi := lo + chunk
		if hi > len(files) {
			hi = len(files)
		}

		wg.Add(1)

		go func(i, lo, hi int) {
			defer wg.Done()

			partial := make(map[string]ExtensionStat)

			for _, rec := range files[lo:hi] {
				ext := extensionOf(rec.Path)

				stat := partial[ext]
				stat.Extension = ext
				stat.Size += rec.Size
				stat.Count++
				partial[ext] = stat
			}

			partials[i] = partial
		}(i, lo, hi)
	}

	wg.Wait()

	merged := make(map[string]ExtensionStat)

	for _, partial := range partials {
		for ext, stat := range partial {
			acc := merged[ext]
			acc.Extension = ext
			acc.Size += stat.Size
			acc.Count += stat.Count
			merged[ext] = acc
		}
	}

	distribution := make([]ExtensionStat, 0, len(merged))

	for _, stat := range merged {
		if stat.Size > minExtensionSize {
			distribution = append(distribution, stat)
		}
	}

	sort.Slice(distribution, func(i, j int) bool {
		if distribution[i].Size != distribution[j].Size {
			return distribution[i].Size > distribution[j].Size
		}

		return distribution[i].Extension < distribution[j].Extension
	})

	return distribution
}

// folderSizes computes the recursive roll-up for every eligible shallow
// directory in a single bottom-up pass over the file list: each file
// contributes its size to every shallow ancestor, however deeply nested
// the file itself is. Files under hidden subdirectories therefore still
// count toward visible ancestors. Directories at or below minFolderSize
// are dropped; output is sorted by size descending with path ascending
// as tie-break.
func folderSizes(root string, shallowDirs []string, files []FileRecord) []FolderSize {
	root = filepath.Clean(root)

	eligible := make(map[string]*FolderSize, len(shallowDirs))
	for _, dir := range shallowDirs {
		eligible[filepath.Clean(dir)] = &FolderSize{Path: filepath.Clean(dir)}
	}

	for _, rec := range files {
		dir := filepath.Dir(rec.Path)

		for dir != root && len(dir) > len(root) {
			if agg, ok := eligible[dir]; ok {
				agg.Size += rec.Size
				agg.FileCount++
			}

			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}

			dir = parent
		}
	}

	folders := make([]FolderSize, 0, len(eligible))

	for _, agg := range eligible {
		if agg.Size > minFolderSize {
			folders = append(folders, *agg)
		}
	}

	sort.Slice(folders, func(i, j int) bool {
		if folders[i].Size != folders[j].Size {
			return folders[i].Size > folders[j].Size
		}

		return folders[i].Path < folders[j].Path
	})

	return folders
}
