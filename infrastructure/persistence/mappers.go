package persistence

import (
	"encoding/json"

	"github.com/sitewise/camcheck/domain/check"
	"github.com/sitewise/camcheck/domain/coverage"
)

// checkMapper converts between check.Record and CheckModel. The
// domain types are plain value structs, so JSON round-trips cannot
// fail; decode errors on read mean a corrupted row and yield zero
// values rather than an error.
type checkMapper struct{}

func (checkMapper) ToDomain(entity CheckModel) check.Record {
	var target coverage.Target
	_ = json.Unmarshal([]byte(entity.Target), &target)

	var cameras []coverage.Camera
	_ = json.Unmarshal([]byte(entity.Cameras), &cameras)

	var result coverage.Result
	_ = json.Unmarshal([]byte(entity.Result), &result)

	return check.Record{
		ID:        entity.ID,
		CreatedAt: entity.CreatedAt,
		Target:    target,
		Cameras:   cameras,
		Result:    result,
	}
}

func (checkMapper) ToModel(domain check.Record) CheckModel {
	target, _ := json.Marshal(domain.Target)
	cameras, _ := json.Marshal(domain.Cameras)
	result, _ := json.Marshal(domain.Result)

	return CheckModel{
		ID:              domain.ID,
		CreatedAt:       domain.CreatedAt,
		Sufficient:      domain.Result.Sufficient,
		Message:         domain.Result.Message,
		CameraCount:     len(domain.Cameras),
		CoveragePercent: domain.Result.Stats.CoveragePercent,
		Target:          string(target),
		Cameras:         string(cameras),
		Result:          string(result),
	}
}
