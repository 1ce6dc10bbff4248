package coverage

// Stats describes the work done by a coverage check.
type Stats struct {
	Cameras            int `json:"cameras"`
	DistanceBoundaries int `json:"distance_boundaries"`
	LightBoundaries    int `json:"light_boundaries"`
	CellsExamined      int `json:"cells_examined"`
	UncoveredCells     int `json:"uncovered_cells"`
	CoveragePercent    int `json:"coverage_percent"`
}

// Result is the outcome of a coverage check. A validation failure is
// reported as an insufficient result, never as a panic or error.
type Result struct {
	Sufficient bool   `json:"sufficient"`
	Message    string `json:"message"`
	Uncovered  []Rect `json:"uncovered,omitempty"`
	Stats      Stats  `json:"stats"`
}
