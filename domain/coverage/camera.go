package coverage

// Target is the envelope that must be fully covered.
type Target struct {
	Distance Range `json:"distance"`
	Light    Range `json:"light"`
}

// Camera is a candidate covering envelope. The ID is used only for
// diagnostics and duplicate detection, never for geometry.
type Camera struct {
	ID       string `json:"id"`
	Distance Range  `json:"distance"`
	Light    Range  `json:"light"`
}

// Covers reports whether the camera's envelope fully contains the
// given cell on both axes. Comparisons are inclusive, so a camera
// whose edge touches a cell edge still covers it.
func (c Camera) Covers(distance, light Range) bool {
	return c.Distance.ContainsRange(distance) && c.Light.ContainsRange(light)
}
