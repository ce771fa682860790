package scenario

import (
	"math/rand"

	"github.com/FinleyDavies/sightline/geometry"
)

// GenerateConfig controls random obstacle scattering.
type GenerateConfig struct {
	Count     int
	Width     float64
	Height    float64
	MinRadius float64
	MaxRadius float64

	// KeepOut rejects obstacles whose circle overlaps this region, so
	// the field does not bury the target. A non-positive radius disables
	// the check.
	KeepOut geometry.Circle
}

// DefaultGenerateConfig mirrors the classic demo field: ten obstacles
// with radii between 10 and 100 scattered over an 800x600 world.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		Count:     10,
		Width:     800,
		Height:    600,
		MinRadius: 10,
		MaxRadius: 100,
	}
}

// Generate scatters cfg.Count random obstacle circles over the world
// using the provided random source. Placement near the keep-out region
// is retried; generation gives up on a placement after a bounded number
// of attempts, so the result may hold fewer circles than requested when
// the keep-out dominates the world.
func Generate(rng *rand.Rand, cfg GenerateConfig) []geometry.Circle {
	if cfg.Count <= 0 {
		return nil
	}

	obstacles := make([]geometry.Circle, 0, cfg.Count)
	attempts := 0
	maxAttempts := cfg.Count * 20

	for len(obstacles) < cfg.Count && attempts < maxAttempts {
		attempts++

		r := cfg.MinRadius + rng.Float64()*(cfg.MaxRadius-cfg.MinRadius)
		candidate := geometry.C(
			rng.Float64()*cfg.Width,
			rng.Float64()*cfg.Height,
			r,
		)

		if cfg.KeepOut.Radius > 0 && overlaps(candidate, cfg.KeepOut) {
			continue
		}

		obstacles = append(obstacles, candidate)
	}

	return obstacles
}

func overlaps(a, b geometry.Circle) bool {
	return a.Center.Distance(b.Center) <= a.Radius+b.Radius
}
