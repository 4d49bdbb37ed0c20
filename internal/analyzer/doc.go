// Package analyzer implements the storage analysis engine.
//
// It walks volume trees using fastwalk for parallel traversal, memoizes
// the scan per volume, and derives space reports from the cached file
// list: per-extension size distribution, per-directory roll-ups, and
// size/age rankings of individual files.
package analyzer
