package render

import(
	"image"
	"image/color"
	"math"
)

// CIMSS "true green" blend. The ABI has no green band, so green is
// synthesized from the channels either side of it; the small veggie
// term keeps vegetation from going grey.
//   G = 0.45*Red + 0.10*Veggie + 0.45*Blue
const(
	greenFromRed    = 0.45
	greenFromVeggie = 0.10
	greenFromBlue   = 0.45
)

// Composite turns the reconciled bands into an 8-bit RGB image.
// Per pixel: synthesize green, clamp, gamma-expand every channel with
// output = input^(1/gamma), quantize. Linear reflectance looks far
// too dark on a display, which is what the gamma is for.
func Composite(bands ReconciledBandSet, gamma float64) *image.RGBA {
	w, h := bands.Red.Dx(), bands.Red.Dy()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	invGamma := 1.0 / gamma

	for y:=0; y<h; y++ {
		for x:=0; x<w; x++ {
			r := bands.Red.Get(x, y)
			v := bands.Veggie.Get(x, y)
			b := bands.Blue.Get(x, y)

			g := greenFromRed*r + greenFromVeggie*v + greenFromBlue*b
			if g > 1.0 { g = 1.0 }

			img.SetRGBA(x, y, color.RGBA{
				R: quantize(math.Pow(r, invGamma)),
				G: quantize(math.Pow(g, invGamma)),
				B: quantize(math.Pow(b, invGamma)),
				A: 0xFF,
			})
		}
	}

	return img
}

func quantize(v float64) uint8 {
	q := math.Round(v * 255.0)
	if q < 0   { q = 0 }
	if q > 255 { q = 255 }
	return uint8(q)
}
