//go:build !linux && !darwin

package analyzer

import (
	"os"
	"time"
)

// accessTime is unavailable on this platform; not all filesystems track
// access times anyway, so callers treat the zero value as unknown.
func accessTime(_ os.FileInfo) time.Time {
	return time.Time{}
}
