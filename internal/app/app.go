//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"golife/internal/core"
	"golife/internal/render"
	"golife/internal/session"
	"golife/internal/ui"
)

// Game adapts the simulation controller to the ebiten.Game interface.
type Game struct {
	ctrl    *session.Controller
	layout  session.Layout
	painter *render.GridPainter
	overlay *ui.Overlay

	winW, winH int

	cellColor color.Color
	backColor color.Color
	lineColor color.Color
}

// New constructs a Game for the provided controller and configuration.
func New(ctrl *session.Controller, cfg core.Config) *Game {
	layout := session.NewLayout(cfg)
	return &Game{
		ctrl:      ctrl,
		layout:    layout,
		painter:   render.NewGridPainter(cfg.Cols, cfg.Rows, layout.CellW, layout.CellH),
		overlay:   ui.NewOverlay(layout),
		winW:      cfg.WindowW,
		winH:      cfg.WindowH,
		cellColor: color.Black,
		backColor: color.White,
		lineColor: color.RGBA{R: 128, G: 128, B: 128, A: 255},
	}
}

// Update drains this frame's input into commands and runs one controller
// frame.
func (g *Game) Update() error {
	g.ctrl.Frame(g.collectCommands())
	if g.ctrl.ShouldQuit() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) collectCommands() []session.Command {
	var cmds []session.Command
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		cmds = append(cmds, session.Command{Kind: session.Quit})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		cmds = append(cmds, session.Command{Kind: session.Proceed})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		cmds = append(cmds, session.Command{Kind: session.TogglePause})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		cmds = append(cmds, session.Command{Kind: session.Advance})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		cmds = append(cmds, session.Command{Kind: session.Save})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		cmds = append(cmds, session.Command{Kind: session.Load})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if cmd, ok := g.layout.Translate(ebiten.CursorPosition()); ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// Draw renders the instructions screen or the current board.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.backColor)
	if g.ctrl.ShowingInstructions() {
		g.overlay.DrawInstructions(screen, g.winW, g.winH)
		return
	}
	g.painter.Blit(screen, g.ctrl.Grid().Cells(), g.cellColor, g.backColor)
	g.painter.DrawGridLines(screen, g.lineColor)
	g.overlay.DrawButton(screen)
	g.overlay.DrawStatus(screen, g.ctrl.Generation(), g.ctrl.Paused(), g.ctrl.Status())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.winW, g.winH
}
