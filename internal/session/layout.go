package session

import (
	"image"

	"golife/internal/core"
)

// Next Generation button dimensions, bottom-centered in the window.
const (
	buttonW      = 200
	buttonH      = 50
	buttonMargin = 10
)

// Layout maps window pixels to grid cells and owns the button geometry.
type Layout struct {
	Cols, Rows   int
	CellW, CellH int
	Button       image.Rectangle
}

// NewLayout derives the pixel geometry from the configuration.
func NewLayout(cfg core.Config) Layout {
	cw, ch := cfg.CellSize()
	bx := (cfg.WindowW - buttonW) / 2
	by := cfg.WindowH - buttonH - buttonMargin
	return Layout{
		Cols:   cfg.Cols,
		Rows:   cfg.Rows,
		CellW:  cw,
		CellH:  ch,
		Button: image.Rect(bx, by, bx+buttonW, by+buttonH),
	}
}

// CellAt converts a pixel position into a cell coordinate. ok is false when
// the position falls outside the cell area, which keeps out-of-bounds
// coordinates from ever reaching the grid.
func (l Layout) CellAt(px, py int) (x, y int, ok bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/l.CellW, py/l.CellH
	if x >= l.Cols || y >= l.Rows {
		return 0, 0, false
	}
	return x, y, true
}

// Translate maps a pointer press to a command. The button wins over the cell
// underneath it; presses on neither are dropped.
func (l Layout) Translate(px, py int) (Command, bool) {
	if image.Pt(px, py).In(l.Button) {
		return Command{Kind: Advance}, true
	}
	if x, y, ok := l.CellAt(px, py); ok {
		return Command{Kind: ToggleCell, X: x, Y: y}, true
	}
	return Command{}, false
}
