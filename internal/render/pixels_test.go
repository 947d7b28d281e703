package render

import (
	"image/color"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{0, 1}
	buf := make([]byte, 8)
	FillBinaryRGBA(buf, cells, color.White, color.Black)
	want := []byte{0, 0, 0, 255, 255, 255, 255, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, expected %d", i, buf[i], want[i])
		}
	}
}

func TestImageScales(t *testing.T) {
	cells := []uint8{
		1, 0,
		0, 1,
	}
	img := Image(cells, 2, 2, 3, color.Black, color.White)
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("bounds %v, expected 6x6", b)
	}
	cases := []struct {
		x, y int
		on   bool
	}{
		{0, 0, true}, {2, 2, true}, {3, 0, false}, {0, 3, false}, {5, 5, true}, {3, 3, true}, {5, 0, false},
	}
	for _, tc := range cases {
		r, _, _, _ := img.At(tc.x, tc.y).RGBA()
		if on := r == 0; on != tc.on {
			t.Fatalf("pixel (%d,%d) on=%v, expected %v", tc.x, tc.y, on, tc.on)
		}
	}
}
