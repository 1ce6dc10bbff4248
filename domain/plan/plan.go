// Package plan loads site-plan documents: a target envelope plus the
// camera fleet meant to cover it.
package plan

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sitewise/camcheck/domain/coverage"
)

// Document is the YAML shape of a site plan.
//
//	target:
//	  distance: {min: 1, max: 20}
//	  light: {min: 0, max: 100}
//	cameras:
//	  - id: cam-entrance
//	    distance: {min: 0, max: 8}
//	    light: {min: 0, max: 100}
type Document struct {
	Target  TargetSpec   `yaml:"target"`
	Cameras []CameraSpec `yaml:"cameras"`
}

// TargetSpec is the YAML shape of the target envelope.
type TargetSpec struct {
	Distance RangeSpec `yaml:"distance"`
	Light    RangeSpec `yaml:"light"`
}

// CameraSpec is the YAML shape of one camera.
type CameraSpec struct {
	ID       string    `yaml:"id"`
	Distance RangeSpec `yaml:"distance"`
	Light    RangeSpec `yaml:"light"`
}

// RangeSpec is the YAML shape of a closed interval.
type RangeSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Parse decodes a site plan from r. Unknown fields are rejected so a
// typo in a plan file fails loudly instead of silently widening or
// narrowing an envelope.
func Parse(r io.Reader) (coverage.Target, []coverage.Camera, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return coverage.Target{}, nil, fmt.Errorf("%w: parse plan: %s", coverage.ErrValidation, err)
	}

	return doc.toDomain()
}

// Load reads and parses a site plan from a file.
func Load(path string) (coverage.Target, []coverage.Camera, error) {
	f, err := os.Open(path)
	if err != nil {
		return coverage.Target{}, nil, fmt.Errorf("open plan: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

func (d Document) toDomain() (coverage.Target, []coverage.Camera, error) {
	target := coverage.Target{
		Distance: coverage.Range{Min: d.Target.Distance.Min, Max: d.Target.Distance.Max},
		Light:    coverage.Range{Min: d.Target.Light.Min, Max: d.Target.Light.Max},
	}

	cameras := make([]coverage.Camera, len(d.Cameras))
	for i, c := range d.Cameras {
		cameras[i] = coverage.Camera{
			ID:       c.ID,
			Distance: coverage.Range{Min: c.Distance.Min, Max: c.Distance.Max},
			Light:    coverage.Range{Min: c.Light.Min, Max: c.Light.Max},
		}
	}

	if err := coverage.Validate(target, cameras); err != nil {
		return coverage.Target{}, nil, err
	}
	return target, cameras, nil
}
