// Package renderer defines the drawing and input interfaces the demo
// runs against, abstracting the underlying graphics engine so game
// logic never imports a backend directly.
package renderer

import "image/color"

// Renderer draws vector primitives onto an image surface.
type Renderer interface {
	// Vector operations (for drawing shapes)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)
	StrokeLine(dst Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int)
}

// Image represents a renderable surface.
type Image interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// Fill fills the entire surface with the given color.
	Fill(clr color.Color)
}

// InputManager handles pointer input from the user.
type InputManager interface {
	// CursorPosition returns the cursor position in logical screen coordinates.
	CursorPosition() (x, y int)

	// WheelDelta returns the scroll wheel movement since the last tick.
	WheelDelta() (xoff, yoff float64)
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns
	// the logical screen size used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
