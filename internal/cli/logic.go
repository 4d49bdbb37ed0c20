package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/drivestat/internal/analyzer"
)

// progressPrinter writes in-place scan progress to stderr when attached
// to a terminal. JSON output suppresses it so stdout stays parseable.
type progressPrinter struct {
	enabled bool
}

func newProgressPrinter(output string) *progressPrinter {
	return &progressPrinter{
		enabled: strings.ToLower(output) != "json" && isatty.IsTerminal(os.Stderr.Fd()),
	}
}

// hook returns the engine progress callback, or nil when disabled.
func (p *progressPrinter) hook() func(files, bytes int64) {
	if !p.enabled {
		return nil
	}

	return func(files, bytes int64) {
		msg := fmt.Sprintf("Scanning… %d files, %s",
			files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
		fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
	}
}

// clear erases the status line before regular output is printed.
func (p *progressPrinter) clear() {
	if p.enabled {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}
}

// analyzeVolumes runs a full report for each named volume, or for every
// fixed local volume when none are given. An interrupt stops the run
// between volumes, never within one; a failing volume is reported and
// skipped so the remaining volumes are still analyzed.
func analyzeVolumes(ctx context.Context, deps *dependencies, volumes []string) error {
	if len(volumes) == 0 {
		var err error

		volumes, err = deps.analyzer.FixedVolumes()
		if err != nil {
			return err
		}

		if len(volumes) == 0 {
			return errors.New("no fixed volumes found")
		}
	}

	var failed int

	for _, vol := range volumes {
		if ctx.Err() != nil {
			deps.log.Warn().Msg("interrupted, stopping before next volume")

			break
		}

		report, err := deps.analyzer.FullReport(ctx, vol)

		deps.progress.clear()

		if err != nil {
			if errors.Is(err, context.Canceled) {
				deps.log.Warn().Str("volume", vol).Msg("interrupted")

				break
			}

			deps.log.Error().Str("volume", vol).Err(err).Msg("analysis failed")

			failed++

			continue
		}

		if err := render(report, deps.cfg.Output); err != nil {
			return err
		}
	}

	if failed == len(volumes) {
		return fmt.Errorf("all %d volume(s) failed to analyze", failed)
	}

	return nil
}

// render writes a report to stdout in the configured format.
func render(report *analyzer.Report, output string) error {
	switch strings.ToLower(output) {
	case "json":
		return PrintJSON(report, os.Stdout)
	case "table":
		return PrintReport(report, os.Stdout)
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
}
