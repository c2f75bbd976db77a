// Package ebitenwindow presents frames in an ebiten window.
package ebitenwindow

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"cubeview/internal/engine"
	"cubeview/internal/host"
	"cubeview/internal/raster"
)

var keys = map[ebiten.Key]engine.Key{
	ebiten.KeyW:          engine.KeyW,
	ebiten.KeyS:          engine.KeyS,
	ebiten.KeyQ:          engine.KeyQ,
	ebiten.KeyE:          engine.KeyE,
	ebiten.KeyA:          engine.KeyA,
	ebiten.KeyD:          engine.KeyD,
	ebiten.KeyZ:          engine.KeyZ,
	ebiten.KeyC:          engine.KeyC,
	ebiten.KeyR:          engine.KeyR,
	ebiten.KeySpace:      engine.KeySpace,
	ebiten.KeyArrowUp:    engine.KeyArrowUp,
	ebiten.KeyArrowDown:  engine.KeyArrowDown,
	ebiten.KeyArrowLeft:  engine.KeyArrowLeft,
	ebiten.KeyArrowRight: engine.KeyArrowRight,
}

// Run opens the window and blocks until it closes or Escape is pressed.
func Run(e *engine.Engine, cfg host.WindowConfig, logger *log.Logger) error {
	g := &game{
		e:      e,
		canvas: raster.NewCanvas(0, 0, e.Config().Background),
		log:    logger,
	}
	ebiten.SetWindowTitle(cfg.TitleOrDefault())
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}

type game struct {
	e      *engine.Engine
	canvas *raster.Canvas
	log    *log.Logger
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for ek, k := range keys {
		if host.RepeatTick(inpututil.KeyPressDuration(ek)) {
			g.e.HandleKey(k)
		}
	}
	// unbound keys go through the engine only so they get logged
	for _, ek := range inpututil.AppendJustPressedKeys(nil) {
		if _, ok := keys[ek]; !ok && ek != ebiten.KeyEscape {
			g.e.HandleKey(engine.Key(ek.String()))
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if err := g.e.Frame(g.canvas); err != nil {
		if host.Reportable(err) {
			g.log.Printf("frame: %v", err)
		}
		return
	}
	screen.WritePixels(g.canvas.Image().Pix)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.canvas.Resize(outsideWidth, outsideHeight)
	g.e.Resize(outsideWidth, outsideHeight)
	return max(outsideWidth, 1), max(outsideHeight, 1)
}
