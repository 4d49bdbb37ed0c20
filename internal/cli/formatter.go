package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/drivestat/internal/analyzer"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2

	// timeFormat renders modification and access timestamps.
	timeFormat = "2006-01-02 15:04:05"
)

// gigabytes converts a byte count for display using 2^30 bytes per GB.
func gigabytes(b int64) float64 {
	return float64(b) / float64(analyzer.GBBytes)
}

// megabytes converts a byte count for display using 2^20 bytes per MB.
func megabytes(b int64) float64 {
	return float64(b) / float64(analyzer.MBBytes)
}

// PrintJSON outputs a report in JSON format.
func PrintJSON(report *analyzer.Report, writer io.Writer) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintReport outputs a report in human-readable table format.
func PrintReport(report *analyzer.Report, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "\n=== Storage Distribution Analysis ===")
	fmt.Fprintf(w, "Date:\t%s\n", report.GeneratedAt.Format(timeFormat))
	fmt.Fprintf(w, "Volume:\t%s\n", report.Volume)

	fmt.Fprintln(w, "\n--- Volume Space Overview ---")

	if report.Space != nil {
		fmt.Fprintf(w, "Total Size:\t%.2f GB\n", gigabytes(report.Space.Total))
		fmt.Fprintf(w, "Used Space:\t%.2f GB\n", gigabytes(report.Space.Used))
		fmt.Fprintf(w, "Free Space:\t%.2f GB (%.2f%%)\n",
			gigabytes(report.Space.Free), report.Space.FreePercent)
	} else {
		fmt.Fprintf(w, "Unavailable:\t%s\n", report.SpaceError)
	}

	fmt.Fprintf(w, "\n--- Largest Folders (Top %d) ---\n", len(report.Folders))

	for i, folder := range report.Folders {
		fmt.Fprintf(w, "[%d] %s\n", i+1, folder.Path)
		fmt.Fprintf(w, "  Size:\t%.2f GB\n", gigabytes(folder.Size))
		fmt.Fprintf(w, "  Files:\t%d\n", folder.FileCount)
	}

	fmt.Fprintf(w, "\n--- File Type Distribution (Top %d) ---\n", len(report.Extensions))

	for _, ext := range report.Extensions {
		fmt.Fprintf(w, "[>] %s\n", ext.Extension)
		fmt.Fprintf(w, "  Count:\t%d\n", ext.Count)
		fmt.Fprintf(w, "  Size:\t%.2f GB\n", gigabytes(ext.Size))
	}

	printFileSection(w, "Largest Files", report.LargestFiles)
	printFileSection(w, "Recent Large Files", report.RecentFiles)
	printFileSection(w, "Old Large Files", report.OldFiles)

	return w.Flush()
}

// printFileSection renders one ranked file list.
func printFileSection(w io.Writer, title string, files []analyzer.FileRecord) {
	fmt.Fprintf(w, "\n--- %s ---\n", title)

	for _, file := range files {
		printFileInfo(w, file)
	}
}

// printFileInfo renders a single file record.
func printFileInfo(w io.Writer, file analyzer.FileRecord) {
	fmt.Fprintf(w, "[*] %s\n", file.Path)
	fmt.Fprintf(w, "  Size:\t%.2f MB / %.2f GB (%s)\n",
		megabytes(file.Size), gigabytes(file.Size),
		humanize.IBytes(uint64(file.Size))) //nolint:gosec // Sizes are never negative
	fmt.Fprintf(w, "  Last Modified:\t%s\n", formatTime(file.Modified))

	if !file.Accessed.IsZero() {
		fmt.Fprintf(w, "  Last Accessed:\t%s\n", formatTime(file.Accessed))
	}
}

// formatTime renders a timestamp, or "unknown" for the zero value.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}

	return t.Format(timeFormat)
}
