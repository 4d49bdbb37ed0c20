package analyzer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/drivestat/internal/volume"
)

// fakeProvider is a volume.Provider test double.
type fakeProvider struct {
	volumes  []string
	space    volume.Space
	spaceErr error
}

func (f *fakeProvider) FixedVolumes() ([]string, error) {
	return f.volumes, nil
}

func (f *fakeProvider) SpaceOf(string) (volume.Space, error) {
	if f.spaceErr != nil {
		return volume.Space{}, f.spaceErr
	}

	return f.space, nil
}

func newTestAnalyzer(provider volume.Provider, opts Options) *Analyzer {
	return New(provider, opts, WithClock(func() time.Time {
		return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	}))
}

func TestFullReportSections(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "docs", "a.txt"), 100)
	writeFile(t, filepath.Join(root, "docs", "b.txt"), 300)
	writeFile(t, filepath.Join(root, "media", "c.mp4"), 500)

	provider := &fakeProvider{
		space: volume.Space{Total: 1000, Used: 400, Free: 600, FreePercent: 60},
	}

	a := newTestAnalyzer(provider, Options{})

	report, err := a.FullReport(context.Background(), root)
	require.NoError(t, err)

	require.NotNil(t, report.Space)
	assert.Equal(t, int64(600), report.Space.Free)
	assert.Empty(t, report.SpaceError)

	assert.Equal(t, root, report.Volume)
	assert.Len(t, report.LargestFiles, 3)
	assert.Equal(t, "c.mp4", filepath.Base(report.LargestFiles[0].Path))

	// Small fixtures fall below the folder and extension floors.
	assert.Empty(t, report.Folders)
	assert.Empty(t, report.Extensions)
}

func TestFullReportDegradesWhenSpaceQueryFails(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "a.txt"), 100)

	provider := &fakeProvider{spaceErr: errors.New("device not ready")}

	a := newTestAnalyzer(provider, Options{})

	report, err := a.FullReport(context.Background(), root)
	require.NoError(t, err)

	assert.Nil(t, report.Space)
	assert.Contains(t, report.SpaceError, "device not ready")

	// Scan-backed sections are still produced.
	assert.Len(t, report.LargestFiles, 1)
}

func TestDriveSpaceWrapsProviderFailure(t *testing.T) {
	provider := &fakeProvider{spaceErr: errors.New("io error")}

	a := newTestAnalyzer(provider, Options{})

	_, err := a.DriveSpace("/v")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVolumeUnavailable)
}

func TestQueriesRejectMissingVolume(t *testing.T) {
	a := newTestAnalyzer(&fakeProvider{}, Options{})

	_, err := a.LargestFiles(context.Background(), filepath.Join(t.TempDir(), "gone"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidVolume)
}

func TestRepeatQueriesUseCachedScan(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "only.txt"), 100)

	a := newTestAnalyzer(&fakeProvider{}, Options{})

	first, err := a.LargestFiles(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Change the filesystem; the snapshot must not notice.
	writeFile(t, filepath.Join(root, "later.txt"), 200)
	require.NoError(t, os.Remove(filepath.Join(root, "only.txt")))

	second, err := a.LargestFiles(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTopNLimitsResults(t *testing.T) {
	root := t.TempDir()

	for i := range 8 {
		writeFile(t, filepath.Join(root, fmt.Sprintf("f%d.dat", i)), 10+i)
	}

	a := newTestAnalyzer(&fakeProvider{}, Options{TopN: 3})

	files, err := a.LargestFiles(context.Background(), root)
	require.NoError(t, err)

	assert.Len(t, files, 3)
}

func TestRecentAndOldWindowsEndToEnd(t *testing.T) {
	root := t.TempDir()

	recent := filepath.Join(root, "recent.bin")
	stale := filepath.Join(root, "stale.bin")
	writeFile(t, recent, 10)
	writeFile(t, stale, 20)

	now := time.Now()
	require.NoError(t, os.Chtimes(stale, now, now.AddDate(0, 0, -200)))

	a := New(&fakeProvider{}, Options{})

	recentFiles, err := a.RecentLargeFiles(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{"recent.bin"}, names(recentFiles))

	oldFiles, err := a.OldLargeFiles(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{"stale.bin"}, names(oldFiles))
}

func TestFixedVolumesDelegatesToProvider(t *testing.T) {
	provider := &fakeProvider{volumes: []string{"/", "/home"}}

	a := newTestAnalyzer(provider, Options{})

	volumes, err := a.FixedVolumes()
	require.NoError(t, err)
	assert.Equal(t, []string{"/", "/home"}, volumes)
}
