// Package renderer draws the simulation into a raylib window.
package renderer

import (
	"image/color"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/bloom/config"
)

const statusBarHeight = 24

// Window is a raylib window implementing game.Host.
type Window struct {
	statusBounds rl.Rectangle
}

// Open creates the window and sets the frame rate target.
func Open(cfg *config.Config) *Window {
	w, h := int32(cfg.Screen.Width), int32(cfg.Screen.Height)
	rl.InitWindow(w, h, cfg.Screen.Title)
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	return &Window{
		statusBounds: rl.Rectangle{
			X:      0,
			Y:      float32(h - statusBarHeight),
			Width:  float32(w),
			Height: statusBarHeight,
		},
	}
}

// Close closes the window.
func (w *Window) Close() {
	rl.CloseWindow()
}

func (w *Window) BeginFrame() {
	rl.BeginDrawing()
}

func (w *Window) EndFrame() {
	rl.EndDrawing()
}

func (w *Window) Clear(c color.RGBA) {
	rl.ClearBackground(toRL(c))
}

func (w *Window) DrawCircle(x, y int32, radius float32, c color.RGBA) {
	rl.DrawCircle(x, y, radius, toRL(c))
}

func (w *Window) DrawText(text string, x, y, size int32, c color.RGBA) {
	rl.DrawText(text, x, y, size, toRL(c))
}

func (w *Window) DrawFPS(x, y int32) {
	rl.DrawFPS(x, y)
}

func (w *Window) DrawStatusBar(text string) {
	gui.StatusBar(w.statusBounds, text)
}

// FPS returns raylib's averaged frame rate.
func (w *Window) FPS() int32 {
	return rl.GetFPS()
}

func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
