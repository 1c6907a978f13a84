package render

import(
	"time"

	"github.com/pkg/errors"
)

// ABI band numbers used for true color. There is no green band on
// the instrument; band 3 (near-IR "veggie") stands in for it via the
// CIMSS blend in composite.go.
const (
	BandBlue   = 1 // 0.47um, 1km native
	BandRed    = 2 // 0.64um, 0.5km native
	BandVeggie = 3 // 0.86um, 1km native
)

// A RawBand is one decoded channel at native sensor resolution, as
// handed over by the fetch/decode layer. Samples are reflectance
// factors, nominally [0,1] but not trusted to be. Fill marks
// off-disc / missing samples, either by sentinel value or by mask.
type RawBand struct {
	Band       int
	Data       Grid
	FillValue  float64
	Valid      []bool // row-major, len Dx*Dy; nil means all samples valid
}

func (b RawBand)valid(x, y int) bool {
	if b.Valid == nil {
		return true
	}
	return b.Valid[y*b.Data.Dx() + x]
}

// A BandSet is the three channels of one full-disk acquisition.
type BandSet struct {
	Blue   RawBand
	Red    RawBand
	Veggie RawBand
	Time   time.Time // acquisition start, from the object key
}

// Normalize maps a raw band to clean [0,1] reflectance. Fill and
// masked samples come out as exactly 0.0 - space renders black.
// Real CMIP data does stray outside [0,1] (specular glint above,
// terminator noise below), so both ends get clamped.
func Normalize(b RawBand) (Grid, error) {
	w, h := b.Data.Dx(), b.Data.Dy()
	if b.Data.Empty() {
		return Grid{}, errors.Wrapf(ErrInvalidBandData, "band %d: empty %dx%d grid", b.Band, w, h)
	}

	out := NewGrid(w, h)
	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			v := b.Data.Get(x, y)
			if v == b.FillValue || !b.valid(x, y) {
				continue // stays 0.0
			}
			if v < 0.0 { v = 0.0 }
			if v > 1.0 { v = 1.0 }
			out.Set(x, y, v)
		}
	}

	return out, nil
}

// fillMask is the band's no-data coverage as a grid: 1.0 where the
// sample is fill or masked invalid, 0.0 where it carries real data.
// Kept separate from the normalized reflectance so it can be resized
// to the output grid and unioned across bands.
func fillMask(b RawBand) Grid {
	w, h := b.Data.Dx(), b.Data.Dy()
	m := NewGrid(w, h)
	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			if v := b.Data.Get(x, y); v == b.FillValue || !b.valid(x, y) {
				m.Set(x, y, 1.0)
			}
		}
	}
	return m
}
