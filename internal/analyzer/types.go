package analyzer

import (
	"time"

	"github.com/idelchi/drivestat/internal/volume"
)

const (
	// GBBytes is the number of bytes per gigabyte (2^30).
	GBBytes int64 = 1 << 30
	// MBBytes is the number of bytes per megabyte (2^20).
	MBBytes int64 = 1 << 20

	// NoExtension is the grouping key for files without an extension.
	NoExtension = "(no extension)"

	// minFolderSize is the smallest aggregate size (exclusive) a
	// directory must exceed to be reported (0.1 GB).
	minFolderSize = GBBytes / 10
	// minExtensionSize is the smallest cumulative size (exclusive) an
	// extension group must exceed to be reported (0.01 GB).
	minExtensionSize = GBBytes / 100

	// shallowDepth is how many levels below the volume root directories
	// are collected for the largest-folders report.
	shallowDepth = 3
)

// FileRecord describes a single file found during a scan.
// Records are immutable once collected.
type FileRecord struct {
	// Path is the absolute file path.
	Path string `json:"path"`
	// Size is the file size in bytes.
	Size int64 `json:"size"`
	// Modified is the last modification time. A zero value means the
	// timestamp could not be determined.
	Modified time.Time `json:"modified"`
	// Accessed is the last access time, when the filesystem tracks it.
	Accessed time.Time `json:"accessed,omitzero"`
}

// FolderSize is the recursive size roll-up for a shallow directory.
type FolderSize struct {
	// Path is the directory path.
	Path string `json:"path"`
	// Size is the sum of every file transitively beneath the directory.
	Size int64 `json:"size"`
	// FileCount is the number of files contributing to Size.
	FileCount int `json:"file_count"`
}

// ExtensionStat aggregates files sharing a normalized extension.
type ExtensionStat struct {
	// Extension is the lowercase extension without the leading dot,
	// or NoExtension for extensionless files.
	Extension string `json:"extension"`
	// Size is the cumulative size in bytes.
	Size int64 `json:"size"`
	// Count is the number of files in the group.
	Count int `json:"count"`
}

// Report is the composite result of a full volume analysis.
type Report struct {
	// Volume is the analyzed volume identifier.
	Volume string `json:"volume"`
	// GeneratedAt is when the report was assembled.
	GeneratedAt time.Time `json:"generated_at"`
	// Space is the point-in-time capacity readout. Nil when the space
	// query failed; see SpaceError.
	Space *volume.Space `json:"space,omitempty"`
	// SpaceError carries the space-query failure, if any. The remaining
	// sections are still populated.
	SpaceError string `json:"space_error,omitempty"`
	// Folders are the largest shallow directories, size descending.
	Folders []FolderSize `json:"folders"`
	// Extensions is the size distribution by extension, size descending.
	Extensions []ExtensionStat `json:"extensions"`
	// LargestFiles are the largest files on the volume.
	LargestFiles []FileRecord `json:"largest_files"`
	// RecentFiles are the largest files modified within the recent window.
	RecentFiles []FileRecord `json:"recent_files"`
	// OldFiles are the largest files not modified since the stale window.
	OldFiles []FileRecord `json:"old_files"`
}

// Options configures engine behavior.
type Options struct {
	// TopN is the number of entries returned by ranked queries.
	TopN int
	// RecentDays is the modification window for recent large files.
	RecentDays int
	// StaleDays is the modification cutoff for old large files.
	StaleDays int
}

// withDefaults fills unset options.
func (o Options) withDefaults() Options {
	if o.TopN <= 0 {
		o.TopN = 10
	}

	if o.RecentDays <= 0 {
		o.RecentDays = 30
	}

	if o.StaleDays <= 0 {
		o.StaleDays = 180
	}

	return o
}
