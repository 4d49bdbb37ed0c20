//go:build linux

package analyzer

import (
	"os"
	"syscall"
	"time"
)

// accessTime extracts the last access time from platform stat data.
// Returns the zero time when the underlying type is unavailable.
func accessTime(info os.FileInfo) time.Time {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}
	}

	return time.Unix(stat.Atim.Sec, stat.Atim.Nsec)
}
