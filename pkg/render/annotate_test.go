package render

import(
	"image/color"
	"testing"
)

func TestCaptionLeavesCornersAlone(t *testing.T) {
	black := color.RGBA{0, 0, 0, 255}
	src := solidRGBA(200, black)

	out := Caption(src, "GOES-18  2024-06-15 18:00 UTC")
	if out.Bounds() != src.Bounds() {
		t.Fatalf("bounds = %v, want %v", out.Bounds(), src.Bounds())
	}

	// Text sits bottom-left; the other corners stay untouched.
	for _, p := range []struct{ x, y int }{{0, 0}, {199, 0}, {199, 199}} {
		if got := out.RGBAAt(p.x, p.y); got != black {
			t.Errorf("corner (%d,%d) = %v, want black", p.x, p.y, got)
		}
	}

	// And it actually drew something.
	touched := false
	for y:=150; y<200 && !touched; y++ {
		for x:=0; x<200; x++ {
			if out.RGBAAt(x, y) != black {
				touched = true
				break
			}
		}
	}
	if !touched {
		t.Errorf("caption drew no pixels")
	}
}
