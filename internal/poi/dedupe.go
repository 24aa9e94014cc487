package poi

import (
	"math"
	"strconv"
	"strings"
)

// Deduper tracks identity keys already emitted during one pipeline run.
// It is not safe for concurrent use and must not outlive the run.
type Deduper struct {
	seen map[string]struct{}
}

// NewDeduper returns an empty accumulator.
func NewDeduper() *Deduper {
	return &Deduper{seen: make(map[string]struct{})}
}

// Offer reports whether the candidate is the first occurrence of its
// identity key and records the key when it is. Records with a stable
// osm_id dedupe exactly on it; the rest fall back to a fuzzy composite of
// category, coordinates rounded to 5 decimals (~1.1m at the equator), and
// the normalized name. The category is part of the fallback key, so
// same-coordinate records of different categories never merge.
func (d *Deduper) Offer(category Category, lon, lat float64, osmID, name string) bool {
	key := osmID
	if key == "" {
		key = string(category) + ":" + round5(lon) + ":" + round5(lat) + ":" +
			strings.ToLower(strings.TrimSpace(name))
	}
	if _, dup := d.seen[key]; dup {
		return false
	}
	d.seen[key] = struct{}{}
	return true
}

// round5 formats a coordinate rounded to 5 decimal places in its shortest
// round-trip form.
func round5(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e5)/1e5, 'f', -1, 64)
}
