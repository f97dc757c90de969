package pagedots

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ClearColor fills the screen before the control is drawn.
	ClearColor Color
	// ShowFPS overlays frame and tick rates in the top-left corner.
	ShowFPS bool
	// Debug logs gestures to stderr.
	Debug bool
	// Draw, if set, renders the host's content under the control.
	Draw func(screen *ebiten.Image)
}

// Run opens a window and drives ctrl until the window is closed. If the
// control has no Bounds yet, it is given a strip along the bottom of the
// window.
func Run(ctrl *Control, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("run: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if ctrl.Bounds.Width == 0 && ctrl.Bounds.Height == 0 {
		h := ctrl.Config().MaxDiameter * 3
		ctrl.Bounds = Rect{X: 0, Y: float64(cfg.Height) - h, Width: float64(cfg.Width), Height: h}
	}
	ctrl.SetDebugMode(cfg.Debug)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if err := ebiten.RunGame(&game{ctrl: ctrl, cfg: cfg}); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

type game struct {
	ctrl *Control
	cfg  RunConfig
}

func (g *game) Update() error {
	g.ctrl.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor != ColorTransparent {
		screen.Fill(g.cfg.ClearColor.ToRGBA())
	}
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen)
	}
	g.ctrl.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(w, h int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
