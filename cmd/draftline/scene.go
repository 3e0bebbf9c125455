package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/draftline/draftline/internal/core/drawing"
	"github.com/draftline/draftline/internal/core/geometry"
)

// Scene is the YAML description of a drawing's entities.
type Scene struct {
	Entities []SceneEntity `yaml:"entities"`
}

// SceneEntity is one entity in a scene file. Kind picks which of the shape
// fields apply.
type SceneEntity struct {
	Kind string `yaml:"kind"`

	// point
	At []float64 `yaml:"at,omitempty"`

	// line
	Start []float64 `yaml:"start,omitempty"`
	End   []float64 `yaml:"end,omitempty"`

	// arc
	Centre     []float64 `yaml:"centre,omitempty"`
	Radius     float64   `yaml:"radius,omitempty"`
	StartAngle float64   `yaml:"start_angle,omitempty"`
	SweepAngle float64   `yaml:"sweep_angle,omitempty"`

	Layer  string  `yaml:"layer,omitempty"`
	Colour string  `yaml:"colour,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
}

// LoadScene reads a scene from YAML.
func LoadScene(r io.Reader) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return &s, nil
}

// LoadSceneFile reads a scene from a YAML file.
func LoadSceneFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer func() { _ = f.Close() }()
	return LoadScene(f)
}

func pointFrom(coords []float64, field string) (geometry.Point, error) {
	if len(coords) != 2 {
		return geometry.Point{}, fmt.Errorf("%s needs exactly [x, y], got %v", field, coords)
	}
	return geometry.Pt(coords[0], coords[1]), nil
}

// Geometry converts the entity description into a shape.
func (e SceneEntity) Geometry() (geometry.Geometry, error) {
	switch e.Kind {
	case "point":
		return pointFrom(e.At, "at")
	case "line":
		start, err := pointFrom(e.Start, "start")
		if err != nil {
			return nil, err
		}
		end, err := pointFrom(e.End, "end")
		if err != nil {
			return nil, err
		}
		return geometry.NewLine(start, end), nil
	case "arc":
		centre, err := pointFrom(e.Centre, "centre")
		if err != nil {
			return nil, err
		}
		if e.Radius <= 0 {
			return nil, fmt.Errorf("arc radius must be positive, got %g", e.Radius)
		}
		return geometry.NewArc(centre, e.Radius, e.StartAngle, e.SweepAngle), nil
	default:
		return nil, fmt.Errorf("unknown entity kind %q", e.Kind)
	}
}

// Populate creates the scene's entities in a store.
func (s *Scene) Populate(store *drawing.Store) error {
	for i, e := range s.Entities {
		g, err := e.Geometry()
		if err != nil {
			return fmt.Errorf("entity %d: %w", i, err)
		}

		id := store.CreateEntity()
		store.SetGeometry(id, g)
		if e.Layer != "" {
			store.SetLayer(id, drawing.Layer{Name: e.Layer})
		}
		if e.Colour != "" || e.Width > 0 {
			store.SetStyle(id, drawing.LineStyle{Colour: e.Colour, Width: e.Width})
		}
	}
	return nil
}
