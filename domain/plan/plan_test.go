package plan

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sitewise/camcheck/domain/coverage"
)

const validPlan = `
target:
  distance: {min: 1, max: 20}
  light: {min: 0, max: 100}
cameras:
  - id: cam-entrance
    distance: {min: 0, max: 8}
    light: {min: 0, max: 100}
  - id: cam-yard
    distance: {min: 8, max: 30}
    light: {min: 0, max: 100}
`

func TestParse_ValidPlan(t *testing.T) {
	target, cameras, err := Parse(strings.NewReader(validPlan))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if target.Distance != (coverage.Range{Min: 1, Max: 20}) {
		t.Errorf("target distance = %v", target.Distance)
	}
	if len(cameras) != 2 {
		t.Fatalf("expected 2 cameras, got %d", len(cameras))
	}
	if cameras[0].ID != "cam-entrance" {
		t.Errorf("cameras[0].ID = %q", cameras[0].ID)
	}

	result := coverage.Check(target, cameras)
	if !result.Sufficient {
		t.Errorf("plan should cover the target, got %q", result.Message)
	}
}

func TestParse_UnknownFieldRejected(t *testing.T) {
	doc := `
target:
  distance: {min: 1, max: 20}
  light: {min: 0, max: 100}
  brightness: {min: 0, max: 1}
cameras: []
`
	_, _, err := Parse(strings.NewReader(doc))
	if err == nil {
		t.Fatal("expected an error for unknown field")
	}
	if !errors.Is(err, coverage.ErrValidation) {
		t.Errorf("error should wrap ErrValidation: %v", err)
	}
}

func TestParse_InvalidCameraRange(t *testing.T) {
	doc := `
target:
  distance: {min: 1, max: 20}
  light: {min: 0, max: 100}
cameras:
  - id: bad
    distance: {min: 9, max: 3}
    light: {min: 0, max: 100}
`
	_, _, err := Parse(strings.NewReader(doc))
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !strings.Contains(err.Error(), "bad") {
		t.Errorf("error should name the camera: %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(path, []byte(validPlan), 0o600); err != nil {
		t.Fatal(err)
	}

	_, cameras, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cameras) != 2 {
		t.Errorf("expected 2 cameras, got %d", len(cameras))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected an error for missing file")
	}
}
