package analyzer

import "errors"

var (
	// ErrInvalidVolume is returned when the supplied volume identifier
	// does not name an existing, readable directory.
	ErrInvalidVolume = errors.New("invalid volume identifier")

	// ErrVolumeUnavailable is returned when the capacity query for a
	// volume fails.
	ErrVolumeUnavailable = errors.New("volume unavailable")
)
