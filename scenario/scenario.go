// Package scenario loads and generates obstacle fields for the
// visibility demo. A scenario file describes a named scene: the world
// bounds, the fixed target circle, and the obstacle circles, in YAML.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/FinleyDavies/sightline/geometry"
)

// CircleSpec is the on-disk form of a circle.
type CircleSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	R float64 `yaml:"r"`
}

// Circle converts the spec to a geometry.Circle.
func (c CircleSpec) Circle() geometry.Circle {
	return geometry.C(c.X, c.Y, c.R)
}

// Scenario is a loaded scene description.
type Scenario struct {
	Name      string       `yaml:"name"`
	Width     int          `yaml:"width"`
	Height    int          `yaml:"height"`
	Target    CircleSpec   `yaml:"target"`
	Obstacles []CircleSpec `yaml:"obstacles"`
}

// ObstacleCircles returns the obstacle set as geometry circles.
func (s *Scenario) ObstacleCircles() []geometry.Circle {
	circles := make([]geometry.Circle, len(s.Obstacles))
	for i, spec := range s.Obstacles {
		circles[i] = spec.Circle()
	}
	return circles
}

// Load reads and validates a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %w", path, err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", path, err)
	}

	if err := validate(&s); err != nil {
		return nil, fmt.Errorf("invalid scenario in %s: %w", path, err)
	}

	return &s, nil
}

// validate checks that the scenario describes a usable scene.
func validate(s *Scenario) error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("world bounds must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.Target.R < 0 {
		return fmt.Errorf("target radius must be non-negative, got %f", s.Target.R)
	}
	for i, obs := range s.Obstacles {
		if obs.R < 0 {
			return fmt.Errorf("obstacle %d radius must be non-negative, got %f", i, obs.R)
		}
	}
	return nil
}
