package coverage

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// ErrValidation indicates malformed input: a non-finite or inverted
// range, an empty camera ID, or a duplicate camera ID.
var ErrValidation = errors.New("validation error")

// Validate checks the target and camera list without running the
// sweep. All returned errors wrap ErrValidation.
func Validate(target Target, cameras []Camera) error {
	if err := target.Distance.validate(); err != nil {
		return fmt.Errorf("%w: target distance range: %s", ErrValidation, err)
	}
	if err := target.Light.validate(); err != nil {
		return fmt.Errorf("%w: target light range: %s", ErrValidation, err)
	}

	seen := make(map[string]int, len(cameras))
	var duplicates []string
	for i, c := range cameras {
		if c.ID == "" {
			return fmt.Errorf("%w: camera at index %d has an empty id", ErrValidation, i)
		}
		seen[c.ID]++
		if seen[c.ID] == 2 {
			duplicates = append(duplicates, c.ID)
		}
	}
	if len(duplicates) > 0 {
		slices.Sort(duplicates)
		return fmt.Errorf("%w: duplicate camera ids: %s", ErrValidation, strings.Join(duplicates, ", "))
	}

	for _, c := range cameras {
		if err := c.Distance.validate(); err != nil {
			return fmt.Errorf("%w: camera %q distance range: %s", ErrValidation, c.ID, err)
		}
		if err := c.Light.validate(); err != nil {
			return fmt.Errorf("%w: camera %q light range: %s", ErrValidation, c.ID, err)
		}
	}
	return nil
}

// Check decides whether the union of camera envelopes fully covers the
// target. It is pure and total: malformed input yields an insufficient
// result carrying the validation message, and no error ever escapes.
//
// The decision uses a coordinate-compressed sweep. Every camera
// endpoint inside the target becomes a grid line, so within a cell no
// camera edge can cut it; a cell is covered exactly when some single
// camera contains it whole.
func Check(target Target, cameras []Camera) Result {
	if err := Validate(target, cameras); err != nil {
		return Result{
			Sufficient: false,
			Message:    err.Error(),
			Stats:      Stats{Cameras: len(cameras)},
		}
	}

	distBounds := axisBoundaries(target.Distance, cameras, func(c Camera) Range { return c.Distance })
	lightBounds := axisBoundaries(target.Light, cameras, func(c Camera) Range { return c.Light })

	if len(cameras) == 0 {
		return Result{
			Sufficient: false,
			Message:    "no cameras provided",
			Uncovered:  []Rect{{Distance: target.Distance, Light: target.Light}},
			Stats: Stats{
				Cameras:            0,
				DistanceBoundaries: len(distBounds),
				LightBoundaries:    len(lightBounds),
				CellsExamined:      1,
				UncoveredCells:     1,
				CoveragePercent:    0,
			},
		}
	}

	distCells := cellsBetween(distBounds)
	lightCells := cellsBetween(lightBounds)
	total := len(distCells) * len(lightCells)

	var uncovered []Rect
	for _, dc := range distCells {
		for _, lc := range lightCells {
			if !cellCovered(dc, lc, cameras) {
				uncovered = append(uncovered, Rect{Distance: dc, Light: lc})
			}
		}
	}

	stats := Stats{
		Cameras:            len(cameras),
		DistanceBoundaries: len(distBounds),
		LightBoundaries:    len(lightBounds),
		CellsExamined:      total,
		UncoveredCells:     len(uncovered),
		CoveragePercent:    percentCovered(total, len(uncovered)),
	}

	if len(uncovered) > 0 {
		return Result{
			Sufficient: false,
			Message: fmt.Sprintf("coverage incomplete: %d region(s) uncovered (%d%% covered)",
				len(uncovered), stats.CoveragePercent),
			Uncovered: uncovered,
			Stats:     stats,
		}
	}

	return Result{
		Sufficient: true,
		Message:    "coverage complete",
		Stats:      stats,
	}
}

// axisBoundaries collects the target bounds plus every camera endpoint
// that falls inside the target on that axis, sorted and deduplicated.
// Endpoints outside the target cannot create a boundary inside the
// tested area and are excluded.
func axisBoundaries(target Range, cameras []Camera, axis func(Camera) Range) []float64 {
	values := []float64{target.Min, target.Max}
	for _, c := range cameras {
		r := axis(c)
		if target.Contains(r.Min) {
			values = append(values, r.Min)
		}
		if target.Contains(r.Max) {
			values = append(values, r.Max)
		}
	}
	slices.Sort(values)
	return slices.Compact(values)
}

// cellsBetween turns sorted boundary values into the spans between
// consecutive pairs. A degenerate axis (single boundary) collapses to
// one zero-width cell so the axis still contributes to the grid.
func cellsBetween(bounds []float64) []Range {
	if len(bounds) < 2 {
		return []Range{{Min: bounds[0], Max: bounds[0]}}
	}
	cells := make([]Range, len(bounds)-1)
	for i := range cells {
		cells[i] = Range{Min: bounds[i], Max: bounds[i+1]}
	}
	return cells
}

// cellCovered reports whether any single camera fully contains the
// cell. Partial coverage by several cameras does not count; the
// compression step guarantees this is equivalent to union coverage.
func cellCovered(distance, light Range, cameras []Camera) bool {
	for _, c := range cameras {
		if c.Covers(distance, light) {
			return true
		}
	}
	return false
}

// percentCovered rounds the covered share of cells to the nearest
// whole percent. Defined as 0 when no cells were examined.
func percentCovered(total, uncovered int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(total-uncovered) / float64(total)))
}
