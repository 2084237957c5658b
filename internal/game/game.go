package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the stage and overlay to ebiten's loop. Run it with
// ebiten.SetTPS(ebiten.SyncWithFPS) so Update fires once per display refresh.
type Game struct {
	stage   *Stage
	overlay *Overlay
	last    time.Time
}

func NewGame(stage *Stage, overlay *Overlay) *Game {
	return &Game{stage: stage, overlay: overlay}
}

// Update handles this frame's input first, then advances the animation, so
// a search submitted this frame is visible in the same frame's update.
func (g *Game) Update() error {
	now := time.Now()
	dt := float32(1.0 / 60.0)
	if !g.last.IsZero() {
		dt = float32(now.Sub(g.last).Seconds())
	}
	g.last = now

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !g.overlay.Escape() {
		return ebiten.Termination
	}
	g.overlay.Update(dt)
	g.stage.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.stage.Draw(screen)
	g.overlay.Draw(screen)
}

// Layout doubles as the viewport change notification.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.stage.Resize(outsideWidth, outsideHeight)
	g.overlay.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
