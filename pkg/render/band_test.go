package render

import(
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestNormalizeIdempotent(t *testing.T) {
	// A band already in [0,1] with no fill present comes through
	// unchanged.
	g := NewGrid(3, 3)
	vals := []float64{0.0, 0.1, 0.25, 0.5, 0.75, 0.9, 1.0, 0.33, 0.66}
	for i, v := range vals {
		g.Set(i%3, i/3, v)
	}

	out, err := Normalize(RawBand{Band: BandRed, Data: g, FillValue: -1})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	for i, want := range vals {
		if got := out.Get(i%3, i/3); math.Abs(got-want) > 1e-12 {
			t.Errorf("sample %d = %v, want %v", i, got, want)
		}
	}
}

func TestNormalizeFillBecomesZero(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, 0.8)
	g.Set(1, 0, -1) // fill
	g.Set(0, 1, -1) // fill
	g.Set(1, 1, 0.2)

	out, err := Normalize(RawBand{Band: BandBlue, Data: g, FillValue: -1})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if out.Get(1, 0) != 0.0 || out.Get(0, 1) != 0.0 {
		t.Errorf("fill samples = %v, %v, want exactly 0.0", out.Get(1, 0), out.Get(0, 1))
	}
	if out.Get(0, 0) != 0.8 || out.Get(1, 1) != 0.2 {
		t.Errorf("valid samples disturbed: %v, %v", out.Get(0, 0), out.Get(1, 1))
	}
}

func TestNormalizeMaskBeatsValue(t *testing.T) {
	// A sample can be in-range but still masked invalid.
	g := NewGrid(2, 1)
	g.Set(0, 0, 0.5)
	g.Set(1, 0, 0.5)

	out, err := Normalize(RawBand{
		Band:      BandVeggie,
		Data:      g,
		FillValue: -1,
		Valid:     []bool{true, false},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if out.Get(0, 0) != 0.5 {
		t.Errorf("valid sample = %v, want 0.5", out.Get(0, 0))
	}
	if out.Get(1, 0) != 0.0 {
		t.Errorf("masked sample = %v, want 0.0", out.Get(1, 0))
	}
}

func TestNormalizeClampsArtifacts(t *testing.T) {
	g := NewGrid(2, 1)
	g.Set(0, 0, 1.4)   // specular glint
	g.Set(1, 0, -0.02) // terminator noise

	out, err := Normalize(RawBand{Band: BandRed, Data: g, FillValue: -999})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if out.Get(0, 0) != 1.0 {
		t.Errorf("over-range sample = %v, want 1.0", out.Get(0, 0))
	}
	if out.Get(1, 0) != 0.0 {
		t.Errorf("under-range sample = %v, want 0.0", out.Get(1, 0))
	}
}

func TestNormalizeRejectsEmptyBand(t *testing.T) {
	_, err := Normalize(RawBand{Band: BandRed})
	if !errors.Is(err, ErrInvalidBandData) {
		t.Errorf("err = %v, want ErrInvalidBandData", err)
	}
}
