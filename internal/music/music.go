package music

import (
	"fmt"
	"time"
)

// Artist identifies an artist within the catalog
type Artist struct {
	ID   string // Catalog identifier
	Name string // Display name as reported by the catalog
}

// Track represents a catalog track
type Track struct {
	Name     string        // Track name/title
	Duration time.Duration // Total track duration
	URL      string        // Preview URL, or the public web URL; empty if neither is known
}

// Album represents a catalog album
type Album struct {
	Name string // Album name
}

// FormatDuration renders d as "Xm Ys".
//
// Minutes and seconds are whole numbers; any sub-second remainder is
// truncated, never rounded. Negative durations render as "0m 0s".
func FormatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	minutes := ms / 60000
	seconds := (ms / 1000) % 60
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}
