package game

import "fmt"

// drawHUD renders the frame counter, the node total and, if enabled, the
// status bar.
func (g *Game) drawHUD() {
	hud := g.cfg.HUD

	g.host.DrawFPS(hud.FPSX, hud.FPSY)
	g.host.DrawText(fmt.Sprintf("Total tree levels: %d", g.census.Nodes()),
		hud.TextX, hud.TextY, hud.TextSize, hud.TextColor.ToRGBA())

	if hud.StatusBar {
		g.host.DrawStatusBar(g.statusText())
	}
}

// statusText summarizes the tree for the status bar.
func (g *Game) statusText() string {
	nodes := int(g.census.Nodes())
	return fmt.Sprintf("Leaves: %d  Branches: %d  Deepest generation: %d/%d  Tick: %d",
		nodes-g.branches, g.branches, g.maxGeneration, g.cfg.Population.GenerationMax, g.tick)
}
