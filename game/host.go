package game

import "image/color"

// Host is the window the simulation draws into.
// The raylib implementation lives in the renderer package; HeadlessHost
// draws nothing.
type Host interface {
	BeginFrame()
	EndFrame()
	Clear(c color.RGBA)
	DrawCircle(x, y int32, radius float32, c color.RGBA)
	DrawText(text string, x, y, size int32, c color.RGBA)
	DrawFPS(x, y int32)
	DrawStatusBar(text string)

	// FPS returns the currently measured frame rate.
	FPS() int32
	ShouldClose() bool
}

// HeadlessHost runs the simulation without a window.
// The reported frame rate comes from Measure when set, otherwise from FixedFPS.
type HeadlessHost struct {
	FixedFPS int32
	Measure  func() int32
}

func (h *HeadlessHost) BeginFrame() {}

func (h *HeadlessHost) EndFrame() {}

func (h *HeadlessHost) Clear(color.RGBA) {}

func (h *HeadlessHost) DrawCircle(int32, int32, float32, color.RGBA) {}

func (h *HeadlessHost) DrawText(string, int32, int32, int32, color.RGBA) {}

func (h *HeadlessHost) DrawFPS(int32, int32) {}

func (h *HeadlessHost) DrawStatusBar(string) {}

func (h *HeadlessHost) ShouldClose() bool {
	return false
}

// FPS implements Host.
func (h *HeadlessHost) FPS() int32 {
	if h.Measure != nil {
		return h.Measure()
	}
	return h.FixedFPS
}
