package render

import (
	"image/color"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{1, 0, 0, 1}
	buf := make([]byte, 4*len(cells))

	fillBinaryRGBA(buf, cells, color.Black, color.White)

	for i, c := range cells {
		base := i * 4
		want := byte(255)
		if c != 0 {
			want = 0
		}
		for ch := 0; ch < 3; ch++ {
			if buf[base+ch] != want {
				t.Fatalf("cell %d channel %d = %d, expected %d", i, ch, buf[base+ch], want)
			}
		}
		if buf[base+3] != 255 {
			t.Fatalf("cell %d alpha = %d, expected 255", i, buf[base+3])
		}
	}
}
