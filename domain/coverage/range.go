// Package coverage decides whether a set of camera operating envelopes
// fully covers a target envelope in distance x light-level space.
package coverage

import (
	"fmt"
	"math"
	"strconv"
)

// Range is a closed interval [Min, Max] along a single axis.
// Touching ranges (a.Max == b.Min) count as overlapping.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Width returns the extent of the range. Zero for degenerate ranges.
func (r Range) Width() float64 {
	return r.Max - r.Min
}

// Contains reports whether v lies within the range, bounds included.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// ContainsRange reports whether other lies entirely within r,
// bounds included.
func (r Range) ContainsRange(other Range) bool {
	return r.Min <= other.Min && r.Max >= other.Max
}

// Overlaps reports whether the two ranges share at least one point.
// Ranges that merely touch at an endpoint overlap.
func (r Range) Overlaps(other Range) bool {
	return r.Min <= other.Max && other.Min <= r.Max
}

// String formats the range as "[min, max]".
func (r Range) String() string {
	return "[" + formatBound(r.Min) + ", " + formatBound(r.Max) + "]"
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// validate reports why the range is malformed, or nil.
func (r Range) validate() error {
	if !isFinite(r.Min) || !isFinite(r.Max) {
		return fmt.Errorf("bounds must be finite, got %s", r)
	}
	if r.Min > r.Max {
		return fmt.Errorf("min %s exceeds max %s", formatBound(r.Min), formatBound(r.Max))
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Rect is an axis-aligned rectangle in distance x light space.
type Rect struct {
	Distance Range `json:"distance"`
	Light    Range `json:"light"`
}

// Area returns the area of the rectangle.
func (r Rect) Area() float64 {
	return r.Distance.Width() * r.Light.Width()
}

// String formats the rectangle as "distance x light".
func (r Rect) String() string {
	return r.Distance.String() + " x " + r.Light.String()
}
