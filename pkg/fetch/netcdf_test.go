package fetch

import(
	"math"
	"testing"

	"github.com/wxsat/fulldisk/pkg/render"
)

func TestDecodeScaledAppliesScaleAndOffset(t *testing.T) {
	// CMIPF packs reflectance as int16 with scale/offset.
	vals := [][]int16{
		{0, 1000},
		{2000, -1}, // -1 is the fill value
	}

	rb, err := decodeScaled(vals, 0.0005, 0.0, -1, true, render.BandRed)
	if err != nil {
		t.Fatalf("decodeScaled: %v", err)
	}

	if rb.Band != render.BandRed {
		t.Errorf("band = %d, want %d", rb.Band, render.BandRed)
	}
	if got := rb.Data.Get(1, 0); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("sample (1,0) = %v, want 0.5", got)
	}
	if got := rb.Data.Get(0, 1); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("sample (0,1) = %v, want 1.0", got)
	}
	if rb.Valid[3] {
		t.Errorf("fill sample marked valid")
	}
	if rb.Data.Get(1, 1) != rb.FillValue {
		t.Errorf("fill sample = %v, want sentinel %v", rb.Data.Get(1, 1), rb.FillValue)
	}
}

func TestDecodeFloatMasksNaN(t *testing.T) {
	nan := float32(math.NaN())
	vals := [][]float32{
		{0.25, nan},
		{0.75, 1.0},
	}

	rb, err := decodeFloat(vals, render.BandBlue)
	if err != nil {
		t.Fatalf("decodeFloat: %v", err)
	}
	if rb.Valid[1] {
		t.Errorf("NaN sample marked valid")
	}
	if got := rb.Data.Get(0, 1); got != 0.75 {
		t.Errorf("sample (0,1) = %v, want 0.75", got)
	}
}

func TestDecodeRejectsRaggedAndEmptyGrids(t *testing.T) {
	if _, err := decodeScaled([][]int16{}, 1, 0, -1, true, 2); err == nil {
		t.Error("empty grid: want error")
	}
	if _, err := decodeScaled([][]int16{{1, 2}, {3}}, 1, 0, -1, true, 2); err == nil {
		t.Error("ragged grid: want error")
	}
	if _, err := decodeFloat([][]float32{{}}, 1); err == nil {
		t.Error("zero-width grid: want error")
	}
}

// Normalizing a decoded band end-to-end: fill becomes 0, scaled
// samples survive.
func TestDecodeThenNormalize(t *testing.T) {
	vals := [][]int16{
		{1000, -1},
		{-1, 2000},
	}
	rb, err := decodeScaled(vals, 0.0005, 0.0, -1, true, render.BandVeggie)
	if err != nil {
		t.Fatal(err)
	}

	g, err := render.Normalize(rb)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if g.Get(0, 0) != 0.5 || g.Get(1, 1) != 1.0 {
		t.Errorf("valid samples = %v, %v, want 0.5, 1.0", g.Get(0, 0), g.Get(1, 1))
	}
	if g.Get(1, 0) != 0.0 || g.Get(0, 1) != 0.0 {
		t.Errorf("fill samples = %v, %v, want 0.0", g.Get(1, 0), g.Get(0, 1))
	}
}
