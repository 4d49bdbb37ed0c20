//go:build windows

package volume

import (
	"path/filepath"

	"golang.org/x/sys/windows"
)

// osProvider queries volume information through the Win32 API.
type osProvider struct{}

// NewProvider returns the platform volume provider.
func NewProvider() Provider {
	return osProvider{}
}

// FixedVolumes enumerates logical drive roots and keeps fixed drives
// only, skipping removable, network and optical drives.
func (osProvider) FixedVolumes() ([]string, error) {
	const bufLen = 256

	buf := make([]uint16, bufLen)

	n, err := windows.GetLogicalDriveStrings(bufLen, &buf[0])
	if err != nil {
		return nil, err
	}

	var volumes []string

	// The buffer holds NUL-separated root paths with a trailing NUL.
	start := 0

	for i := range int(n) {
		if buf[i] != 0 {
			continue
		}

		if i > start {
			root := windows.UTF16ToString(buf[start:i])

			rootPtr, err := windows.UTF16PtrFromString(root)
			if err == nil && windows.GetDriveType(rootPtr) == windows.DRIVE_FIXED {
				volumes = append(volumes, filepath.ToSlash(root))
			}
		}

		start = i + 1
	}

	return volumes, nil
}

// SpaceOf queries free and total byte counts for the drive root.
func (osProvider) SpaceOf(id string) (Space, error) {
	idPtr, err := windows.UTF16PtrFromString(filepath.FromSlash(id))
	if err != nil {
		return Space{}, err
	}

	var freeAvailable, total, totalFree uint64

	if err := windows.GetDiskFreeSpaceEx(idPtr, &freeAvailable, &total, &totalFree); err != nil {
		return Space{}, err
	}

	return newSpace(int64(total), int64(totalFree)), nil
}
