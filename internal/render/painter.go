//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter updates a single RGBA image based on binary cell data and
// draws it scaled so each cell covers cellW x cellH pixels.
type GridPainter struct {
	cols, rows   int
	cellW, cellH int
	img          *ebiten.Image
	buf          []byte
}

// NewGridPainter allocates a painter for a cols x rows board.
func NewGridPainter(cols, rows, cellW, cellH int) *GridPainter {
	gp := &GridPainter{
		cols:  cols,
		rows:  rows,
		cellW: cellW,
		cellH: cellH,
		buf:   make([]byte, 4*cols*rows),
	}
	gp.img = ebiten.NewImage(cols, rows)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color) {
	if len(cells) != gp.cols*gp.rows {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(gp.cellW), float64(gp.cellH))
	dst.DrawImage(gp.img, op)
}

// DrawGridLines strokes the cell borders over the board area.
func (gp *GridPainter) DrawGridLines(dst *ebiten.Image, clr color.Color) {
	w := float32(gp.cols * gp.cellW)
	h := float32(gp.rows * gp.cellH)
	for x := 0; x <= gp.cols; x++ {
		fx := float32(x * gp.cellW)
		vector.StrokeLine(dst, fx, 0, fx, h, 1, clr, false)
	}
	for y := 0; y <= gp.rows; y++ {
		fy := float32(y * gp.cellH)
		vector.StrokeLine(dst, 0, fy, w, fy, 1, clr, false)
	}
}
