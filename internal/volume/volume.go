// Package volume abstracts platform volume enumeration and capacity
// queries behind a small capability interface so the analysis engine
// never branches on platform.
package volume

// Space is a point-in-time capacity readout for a volume.
type Space struct {
	// Total is the volume capacity in bytes.
	Total int64 `json:"total"`
	// Used is the number of bytes in use.
	Used int64 `json:"used"`
	// Free is the number of free bytes.
	Free int64 `json:"free"`
	// FreePercent is Free as a percentage of Total.
	FreePercent float64 `json:"free_percent"`
}

// Provider enumerates fixed local volumes and reports their capacity.
type Provider interface {
	// FixedVolumes lists the identifiers of fixed local volumes.
	FixedVolumes() ([]string, error)
	// SpaceOf returns the current capacity readout for a volume.
	SpaceOf(id string) (Space, error)
}

// newSpace derives a Space from raw total and free byte counts.
func newSpace(total, free int64) Space {
	space := Space{
		Total: total,
		Used:  total - free,
		Free:  free,
	}

	if total > 0 {
		space.FreePercent = float64(free) / float64(total) * 100
	}

	return space
}
