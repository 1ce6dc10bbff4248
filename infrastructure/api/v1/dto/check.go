// Package dto defines the JSON request and response shapes of the v1
// API.
package dto

import (
	"time"

	"github.com/sitewise/camcheck/domain/check"
	"github.com/sitewise/camcheck/domain/coverage"
)

// CheckRequest is the body of POST /api/v1/checks.
type CheckRequest struct {
	Target  coverage.Target   `json:"target"`
	Cameras []coverage.Camera `json:"cameras"`
}

// CheckRecord is one stored check in API responses.
type CheckRecord struct {
	ID        int64             `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	Target    coverage.Target   `json:"target"`
	Cameras   []coverage.Camera `json:"cameras"`
	Result    coverage.Result   `json:"result"`
}

// CheckListResponse is the body of GET /api/v1/checks.
type CheckListResponse struct {
	Data  []CheckRecord `json:"data"`
	Total int64         `json:"total"`
}

// FromRecord converts a domain record to its API shape.
func FromRecord(r check.Record) CheckRecord {
	return CheckRecord{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		Target:    r.Target,
		Cameras:   r.Cameras,
		Result:    r.Result,
	}
}

// FromRecords converts a slice of domain records.
func FromRecords(records []check.Record) []CheckRecord {
	out := make([]CheckRecord, len(records))
	for i, r := range records {
		out[i] = FromRecord(r)
	}
	return out
}
