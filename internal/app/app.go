// Package app is the interactive visibility demo: a fixed target
// circle, a mouse-tracked source circle, and an obstacle field. Every
// frame it draws the tangent lines between source and target, marks the
// first obstacle hit along each, highlights obstacles overlapping the
// sight corridor, and reports whether the target is visible.
package app

import (
	"fmt"
	"image/color"

	"github.com/FinleyDavies/sightline/geometry"
	"github.com/FinleyDavies/sightline/renderer"
	"github.com/FinleyDavies/sightline/vision"
)

const (
	minSourceRadius = 10
	maxSourceRadius = 200
	radiusStep      = 10

	strokeWidth   = 2
	hitMarkerSize = 5
)

var (
	backgroundColor  = color.RGBA{30, 30, 30, 255}
	targetColor      = color.RGBA{255, 0, 0, 255}
	sourceColor      = color.RGBA{0, 255, 0, 255}
	obstacleColor    = color.RGBA{0, 255, 255, 255}
	corridorObstacle = color.RGBA{255, 0, 255, 255}
	tangentColor     = color.RGBA{255, 255, 255, 255}
	hitColor         = color.RGBA{255, 255, 0, 255}
)

// Config describes the initial demo scene.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	Target       geometry.Circle
	Obstacles    []geometry.Circle
	SourceRadius float64
}

// App runs the demo scene. It implements renderer.Game.
type App struct {
	screenWidth  int
	screenHeight int
	target       geometry.Circle
	obstacles    []geometry.Circle
	source       geometry.Circle

	renderer renderer.Renderer
	input    renderer.InputManager
}

// New creates the demo app for the given scene.
func New(cfg Config, r renderer.Renderer, input renderer.InputManager) *App {
	sourceRadius := cfg.SourceRadius
	if sourceRadius <= 0 {
		sourceRadius = 100
	}
	return &App{
		screenWidth:  cfg.ScreenWidth,
		screenHeight: cfg.ScreenHeight,
		target:       cfg.Target,
		obstacles:    cfg.Obstacles,
		source:       geometry.Circle{Center: geometry.Pt(200, 200), Radius: sourceRadius},
		renderer:     r,
		input:        input,
	}
}

// Update moves the source circle to the cursor and applies wheel input
// to its radius.
func (a *App) Update() error {
	x, y := a.input.CursorPosition()
	a.source.Center = geometry.Pt(float64(x), float64(y))

	_, wheelY := a.input.WheelDelta()
	if wheelY > 0 && a.source.Radius < maxSourceRadius {
		a.source.Radius += radiusStep
	}
	if wheelY < 0 && a.source.Radius > minSourceRadius {
		a.source.Radius -= radiusStep
	}

	return nil
}

// Draw renders the scene.
func (a *App) Draw(screen renderer.Image) {
	screen.Fill(backgroundColor)

	tangents := vision.Tangents(a.source, a.target)
	corridor := vision.Corridor(tangents)

	// Obstacles, highlighted when they overlap the sight corridor.
	for _, obs := range a.obstacles {
		clr := obstacleColor
		if corridor != nil && geometry.CircleOverlapsPolygon(obs, corridor) {
			clr = corridorObstacle
		}
		a.strokeCircle(screen, obs, clr)
	}

	a.strokeCircle(screen, a.target, targetColor)
	a.strokeCircle(screen, a.source, sourceColor)

	// Corridor outline between the external tangents.
	if corridor != nil {
		j := len(corridor) - 1
		for i := 0; i < len(corridor); i++ {
			a.strokeLine(screen, geometry.Seg(corridor[j], corridor[i]), tangentColor)
			j = i
		}
	}

	// Tangents and their first obstacle hits. The marker rays are
	// deliberately unbounded so hits past the target show up too.
	for _, tan := range tangents {
		a.strokeLine(screen, tan, tangentColor)

		hit, err := vision.FirstHit(tan, a.obstacles)
		if err != nil || hit == nil {
			continue
		}
		a.renderer.FillCircle(screen, float32(hit.Point.X), float32(hit.Point.Y), hitMarkerSize, hitColor)
	}

	status := "VISIBLE"
	if !vision.Visible(a.target, a.source, a.obstacles) {
		status = "OCCLUDED"
	}
	a.renderer.DrawText(screen, fmt.Sprintf("target: %s   source radius: %.0f", status, a.source.Radius), 10, 10)
}

// Layout implements renderer.Game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screenWidth, a.screenHeight
}

func (a *App) strokeCircle(screen renderer.Image, c geometry.Circle, clr color.Color) {
	a.renderer.StrokeCircle(screen, float32(c.Center.X), float32(c.Center.Y), float32(c.Radius), strokeWidth, clr)
}

func (a *App) strokeLine(screen renderer.Image, s geometry.Segment, clr color.Color) {
	a.renderer.StrokeLine(screen, float32(s.A.X), float32(s.A.Y), float32(s.B.X), float32(s.B.Y), strokeWidth, clr)
}
