package render

import(
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// False-color ramp for single-band debug dumps: deep blue through
// green to white as reflectance rises. Blending happens in Lab so
// the midpoints don't go muddy.
var dumpRamp = []struct {
	v float64
	c colorful.Color
}{
	{0.00, colorful.Color{R: 0.00, G: 0.00, B: 0.15}},
	{0.25, colorful.Color{R: 0.05, G: 0.25, B: 0.60}},
	{0.50, colorful.Color{R: 0.10, G: 0.60, B: 0.25}},
	{0.75, colorful.Color{R: 0.85, G: 0.80, B: 0.30}},
	{1.00, colorful.Color{R: 1.00, G: 1.00, B: 1.00}},
}

func rampColor(v float64) colorful.Color {
	if v <= dumpRamp[0].v {
		return dumpRamp[0].c
	}
	for i:=0; i<len(dumpRamp)-1; i++ {
		lo, hi := dumpRamp[i], dumpRamp[i+1]
		if v <= hi.v {
			return lo.c.BlendLab(hi.c, (v-lo.v)/(hi.v-lo.v)).Clamped()
		}
	}
	return dumpRamp[len(dumpRamp)-1].c
}

// DumpBands writes each normalized, reconciled band as a false-color
// PNG next to the real output, for eyeballing what each channel
// contributes. Debug aid only; the render proper never calls this.
func DumpBands(bs BandSet, cfg Config, prefix string) error {
	if err := cfg.Finalize(); err != nil {
		return err
	}

	blue, err := Normalize(bs.Blue)
	if err != nil {
		return errors.Wrap(err, "normalize blue")
	}
	red, err := Normalize(bs.Red)
	if err != nil {
		return errors.Wrap(err, "normalize red")
	}
	veggie, err := Normalize(bs.Veggie)
	if err != nil {
		return errors.Wrap(err, "normalize veggie")
	}

	rec, err := Reconcile(blue, red, veggie, cfg.EarthSize)
	if err != nil {
		return errors.Wrap(err, "reconcile")
	}

	for _, band := range []struct {
		name string
		g    Grid
	}{
		{"blue", rec.Blue},
		{"red", rec.Red},
		{"veggie", rec.Veggie},
	} {
		img := falseColor(band.g)
		filename := fmt.Sprintf("%s-band-%s.png", prefix, band.name)
		if err := WritePNG(img, filename); err != nil {
			return errors.Wrapf(err, "dump %s", band.name)
		}
	}

	return nil
}

func falseColor(g Grid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Dx(), g.Dy()))
	for y:=0; y<g.Dy(); y++ {
		for x:=0; x<g.Dx(); x++ {
			r, gr, b := rampColor(g.Get(x, y)).RGB255()
			i := img.PixOffset(x, y)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, gr, b, 0xFF
		}
	}
	return img
}
