package session

import (
	"testing"

	"golife/internal/core"
)

func testLayout() Layout {
	return NewLayout(core.DefaultConfig()) // 900x600 window, 40x30 grid
}

func TestCellAtFloorsPixelCoordinates(t *testing.T) {
	l := testLayout()

	cases := []struct {
		px, py int
		x, y   int
	}{
		{0, 0, 0, 0},
		{21, 19, 0, 0},
		{22, 20, 1, 1},
		{43, 39, 1, 1},
		{44, 40, 2, 2},
	}
	for _, c := range cases {
		x, y, ok := l.CellAt(c.px, c.py)
		if !ok {
			t.Fatalf("CellAt(%d,%d) unexpectedly out of bounds", c.px, c.py)
		}
		if x != c.x || y != c.y {
			t.Fatalf("CellAt(%d,%d) = (%d,%d), expected (%d,%d)", c.px, c.py, x, y, c.x, c.y)
		}
	}
}

func TestCellAtRejectsOutOfRangePixels(t *testing.T) {
	l := testLayout()
	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {l.Cols * l.CellW, 0}, {0, l.Rows * l.CellH}} {
		if _, _, ok := l.CellAt(pt[0], pt[1]); ok {
			t.Fatalf("CellAt(%d,%d) should be out of bounds", pt[0], pt[1])
		}
	}
}

func TestTranslateButtonPress(t *testing.T) {
	l := testLayout()
	center := l.Button.Min.Add(l.Button.Size().Div(2))

	cmd, ok := l.Translate(center.X, center.Y)
	if !ok || cmd.Kind != Advance {
		t.Fatalf("press inside the button = (%+v, %v), expected Advance", cmd, ok)
	}
}

func TestTranslateCellPress(t *testing.T) {
	l := testLayout()

	cmd, ok := l.Translate(50, 50)
	if !ok || cmd.Kind != ToggleCell {
		t.Fatalf("press on the board = (%+v, %v), expected ToggleCell", cmd, ok)
	}
	if cmd.X != 50/l.CellW || cmd.Y != 50/l.CellH {
		t.Fatalf("ToggleCell coordinates (%d,%d) do not match pixel division", cmd.X, cmd.Y)
	}
}

func TestTranslateDropsPressOutsideBoardAndButton(t *testing.T) {
	l := testLayout()
	// Just right of the last full cell column, outside the button.
	if cmd, ok := l.Translate(l.Cols*l.CellW, 0); ok {
		t.Fatalf("press outside the board should be dropped, got %+v", cmd)
	}
}
