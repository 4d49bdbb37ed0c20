package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/idelchi/drivestat/internal/volume"
)

// Analyzer answers storage queries for volumes. Scans are memoized per
// volume identifier; capacity readouts are always fresh.
type Analyzer struct {
	provider volume.Provider
	cache    *scanCache
	scanner  *scanner
	opts     Options
	log      zerolog.Logger
	now      func() time.Time
}

// Option customizes an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger used for scan lifecycle output.
func WithLogger(log zerolog.Logger) Option {
	return func(a *Analyzer) {
		a.log = log
		a.scanner.log = log
	}
}

// WithProgress installs a hook invoked periodically during a scan with
// the running file and byte counts.
func WithProgress(hook func(files, bytes int64), interval time.Duration) Option {
	return func(a *Analyzer) {
		a.scanner.progressHook = hook
		a.scanner.progressInterval = interval
	}
}

// WithClock overrides the time source used for date-windowed queries.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) {
		a.now = now
	}
}

// New creates an Analyzer backed by the given volume provider.
func New(provider volume.Provider, opts Options, options ...Option) *Analyzer {
	a := &Analyzer{
		provider: provider,
		cache:    newScanCache(),
		scanner:  &scanner{log: zerolog.Nop()},
		opts:     opts.withDefaults(),
		log:      zerolog.Nop(),
		now:      time.Now,
	}

	for _, opt := range options {
		opt(a)
	}

	return a
}

// scan returns the memoized scan for id, performing it on first use.
func (a *Analyzer) scan(ctx context.Context, id string) (*scanResult, error) {
	return a.cache.getOrScan(ctx, id, func(ctx context.Context) (*scanResult, error) {
		a.log.Info().Str("volume", id).Msg("no cached scan, scanning")

		return a.scanner.scan(ctx, id)
	})
}

// DriveSpace returns the point-in-time capacity readout for a volume.
// The result is never cached: free space is volatile and must reflect
// the instant of the query.
func (a *Analyzer) DriveSpace(id string) (volume.Space, error) {
	space, err := a.provider.SpaceOf(id)
	if err != nil {
		return volume.Space{}, fmt.Errorf("%w: %q: %w", ErrVolumeUnavailable, id, err)
	}

	return space, nil
}

// LargestFolders returns the largest shallow directories of the volume,
// size descending.
func (a *Analyzer) LargestFolders(ctx context.Context, id string) ([]FolderSize, error) {
	res, err := a.scan(ctx, id)
	if err != nil {
		return nil, err
	}

	return takeTop(folderSizes(id, res.shallowDirs, res.files), a.opts.TopN), nil
}

// ExtensionDistribution returns the per-extension size distribution of
// the volume, size descending.
func (a *Analyzer) ExtensionDistribution(ctx context.Context, id string) ([]ExtensionStat, error) {
	res, err := a.scan(ctx, id)
	if err != nil {
		return nil, err
	}

	return takeTop(extensionDistribution(res.files), a.opts.TopN), nil
}

// LargestFiles returns the largest files on the volume.
func (a *Analyzer) LargestFiles(ctx context.Context, id string) ([]FileRecord, error) {
	res, err := a.scan(ctx, id)
	if err != nil {
		return nil, err
	}

	return takeTop(rankBySize(res.files), a.opts.TopN), nil
}

// RecentLargeFiles returns the largest files modified within the recent
// window (default 30 days).
func (a *Analyzer) RecentLargeFiles(ctx context.Context, id string) ([]FileRecord, error) {
	res, err := a.scan(ctx, id)
	if err != nil {
		return nil, err
	}

	return takeTop(modifiedWithin(res.files, a.now(), a.opts.RecentDays), a.opts.TopN), nil
}

// OldLargeFiles returns the largest files not modified since the stale
// window (default 180 days).
func (a *Analyzer) OldLargeFiles(ctx context.Context, id string) ([]FileRecord, error) {
	res, err := a.scan(ctx, id)
	if err != nil {
		return nil, err
	}

	return takeTop(modifiedBefore(res.files, a.now(), a.opts.StaleDays), a.opts.TopN), nil
}

// FullReport assembles every analysis section for a volume. A failing
// space query is recorded on the report without suppressing the
// scan-backed sections; a failing scan is a hard error.
func (a *Analyzer) FullReport(ctx context.Context, id string) (*Report, error) {
	report := &Report{
		Volume:      id,
		GeneratedAt: a.now(),
	}

	if space, err := a.DriveSpace(id); err != nil {
		a.log.Warn().Str("volume", id).Err(err).Msg("space query failed")
		report.SpaceError = err.Error()
	} else {
		report.Space = &space
	}

	res, err := a.scan(ctx, id)
	if err != nil {
		return nil, err
	}

	now := a.now()

	report.Folders = takeTop(folderSizes(id, res.shallowDirs, res.files), a.opts.TopN)
	report.Extensions = takeTop(extensionDistribution(res.files), a.opts.TopN)
	report.LargestFiles = takeTop(rankBySize(res.files), a.opts.TopN)
	report.RecentFiles = takeTop(modifiedWithin(res.files, now, a.opts.RecentDays), a.opts.TopN)
	report.OldFiles = takeTop(modifiedBefore(res.files, now, a.opts.StaleDays), a.opts.TopN)

	return report, nil
}

// FixedVolumes lists the fixed local volumes eligible for analysis.
func (a *Analyzer) FixedVolumes() ([]string, error) {
	volumes, err := a.provider.FixedVolumes()
	if err != nil {
		return nil, fmt.Errorf("listing volumes: %w", err)
	}

	return volumes, nil
}
