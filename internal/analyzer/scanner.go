package analyzer

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/rs/zerolog"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// scanResult holds the raw datasets produced by a single volume scan.
type scanResult struct {
	// files is the flat list of every reachable file under the root.
	files []FileRecord
	// shallowDirs are directories within shallowDepth levels of the
	// root whose own name is not hidden.
	shallowDirs []string
	// errorCount is the number of entries skipped due to errors.
	errorCount int64
}

// collector aggregates scan output from concurrent fastwalk callbacks
// using a mutex.
type collector struct {
	mu          sync.Mutex
	files       []FileRecord
	shallowDirs []string
	fileCount   int64
	totalBytes  int64
	errorCount  int64
}

// addFile records a file. Protected by a mutex since fastwalk calls the
// callback from multiple goroutines concurrently.
func (c *collector) addFile(rec FileRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.files = append(c.files, rec)
	c.fileCount++
	c.totalBytes += rec.Size
}

// addDir records a shallow directory eligible for the folder report.
func (c *collector) addDir(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.shallowDirs = append(c.shallowDirs, path)
}

// addError increments the skipped-entry counter.
func (c *collector) addError() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.errorCount++
}

// snapshot returns the current file count and byte total for progress
// reporting.
func (c *collector) snapshot() (files, bytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fileCount, c.totalBytes
}

// calculateDepth returns the depth of a path relative to the root.
func calculateDepth(path, root string) int {
	relPath := strings.TrimPrefix(path, root)

	relPath = strings.TrimPrefix(relPath, string(filepath.Separator))
	if relPath == "" {
		return 0
	}

	return strings.Count(relPath, string(filepath.Separator)) + 1
}

// scanner performs parallel recursive volume scans.
type scanner struct {
	log              zerolog.Logger
	progressHook     func(files, bytes int64)
	progressInterval time.Duration
}

// startProgressReporter invokes the hook on each tick until ctx is done.
func (s *scanner) startProgressReporter(ctx context.Context, c *collector) {
	if s.progressHook == nil {
		return
	}

	interval := s.progressInterval
	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				files, bytes := c.snapshot()
				s.progressHook(files, bytes)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// scan walks the tree under root and returns every reachable file plus
// the shallow directory list. Entries that error during traversal are
// skipped; only a failure to open the root itself is a hard error.
func (s *scanner) scan(ctx context.Context, root string) (*scanResult, error) {
	root = filepath.Clean(root)

	if info, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("%w: accessing %q: %w", ErrInvalidVolume, root, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrInvalidVolume, root)
	}

	c := &collector{}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.startProgressReporter(ctx, c)

	start := time.Now()

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.log.Debug().Str("path", path).Err(err).Msg("skipping entry")
			c.addError()

			return nil // Silently skip errors
		}

		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if d.IsDir() {
			if path == root {
				return nil
			}

			depth := calculateDepth(path, root)
			if depth <= shallowDepth && !strings.HasPrefix(filepath.Base(path), ".") {
				c.addDir(path)
			}

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			c.addError()

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		c.addFile(FileRecord{
			Path:     path,
			Size:     info.Size(),
			Modified: info.ModTime(),
			Accessed: accessTime(info),
		})

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	s.log.Debug().
		Str("root", root).
		Int64("files", c.fileCount).
		Int64("bytes", c.totalBytes).
		Int64("skipped", c.errorCount).
		Dur("elapsed", time.Since(start)).
		Msg("scan complete")

	return &scanResult{
		files:       c.files,
		shallowDirs: c.shallowDirs,
		errorCount:  c.errorCount,
	}, nil
}
