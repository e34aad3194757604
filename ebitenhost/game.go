package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/bounce"
)

// Game adapts a bounce.Driver to ebiten.Game.
type Game struct {
	driver   *bounce.Driver
	input    *Input
	renderer *Renderer
}

// NewGame wires the driver to the Ebitengine loop.
func NewGame(driver *bounce.Driver, input *Input, renderer *Renderer) *Game {
	return &Game{driver: driver, input: input, renderer: renderer}
}

// Update steps the driver once. A successful quit ends the loop with
// ebiten.Termination; a collaborator failure ends it with the error.
func (g *Game) Update() error {
	g.input.collect()
	if err := g.driver.Step(); err != nil {
		return err
	}
	if g.driver.State() == bounce.StateSucceeded {
		return ebiten.Termination
	}
	return nil
}

// Draw shows the last presented frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
}

// Layout keeps one screen pixel per window pixel and reports size changes
// to the driver as resize events.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.input.layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
