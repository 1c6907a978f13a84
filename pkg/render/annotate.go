package render

import(
	"image"
	"image/draw"

	"github.com/fogleman/gg"
)

// Caption draws a small white label in the bottom-left corner of the
// canvas - typically the satellite name and acquisition time. Done
// after padding so the text sits in the black border, not on the
// disc.
func Caption(img *image.RGBA, text string) *image.RGBA {
	dc := gg.NewContextForImage(img)
	dc.SetRGB(1, 1, 1)
	dc.DrawString(text, 12, float64(img.Bounds().Dy())-12)

	if out, ok := dc.Image().(*image.RGBA); ok {
		return out
	}

	// gg backs its contexts with RGBA, so this shouldn't happen
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), dc.Image(), image.Point{}, draw.Src)
	return out
}
