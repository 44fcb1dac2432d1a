//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"golife/internal/session"
)

const lineHeight = 24

var instructions = []string{
	"Welcome to the Game of Life",
	"",
	"Click the Next Generation button to advance one generation.",
	"Press space to pause or resume the simulation.",
	"Press 's' to save the game state, 'l' to load it.",
	"Click a cell to toggle it. Press 'q' or escape to quit.",
	"",
	"Press enter to begin.",
}

// Overlay draws the instructions screen, the Next Generation button and the
// status line on top of the board.
type Overlay struct {
	layout session.Layout
	face   font.Face
}

// NewOverlay constructs an overlay for the given window layout.
func NewOverlay(layout session.Layout) *Overlay {
	return &Overlay{layout: layout, face: basicfont.Face7x13}
}

// DrawInstructions renders the startup instructions centered in the window.
func (o *Overlay) DrawInstructions(dst *ebiten.Image, winW, winH int) {
	top := winH/2 - len(instructions)*lineHeight/2
	for i, line := range instructions {
		w := font.MeasureString(o.face, line).Ceil()
		text.Draw(dst, line, o.face, (winW-w)/2, top+i*lineHeight, color.Black)
	}
}

// DrawButton renders the Next Generation button in its layout rectangle.
func (o *Overlay) DrawButton(dst *ebiten.Image) {
	r := o.layout.Button
	vector.DrawFilledRect(dst,
		float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()),
		color.RGBA{G: 255, A: 255}, false)

	label := "Next Generation"
	w := font.MeasureString(o.face, label).Ceil()
	x := r.Min.X + (r.Dx()-w)/2
	y := r.Min.Y + r.Dy()/2 + o.face.Metrics().Ascent.Ceil()/2
	text.Draw(dst, label, o.face, x, y, color.Black)
}

// DrawStatus renders the generation counter, pause marker and the most
// recent status message in the top-left corner.
func (o *Overlay) DrawStatus(dst *ebiten.Image, generation int, paused bool, status string) {
	line := fmt.Sprintf("generation %d", generation)
	if paused {
		line += "  [paused]"
	}
	text.Draw(dst, line, o.face, 4, 14, color.Black)
	if status != "" {
		text.Draw(dst, status, o.face, 4, 14+lineHeight/2+4, color.Black)
	}
}
