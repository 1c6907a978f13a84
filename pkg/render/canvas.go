package render

import(
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Pad blits the Earth disc, centered, onto a black canvas
// paddingRatio times its size. A ratio of exactly 1.0 still runs the
// same copy - the no-op case is not special-cased, so every render
// goes through identical code.
func Pad(img *image.RGBA, paddingRatio float64) *image.RGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	earth := w
	if h > earth { earth = h }
	padded := int(math.Round(float64(earth) * paddingRatio))

	canvas := image.NewRGBA(image.Rect(0, 0, padded, padded))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.RGBA{A: 0xFF}), image.Point{}, draw.Src)

	offX := (padded - w) / 2
	offY := (padded - h) / 2
	draw.Draw(canvas, image.Rect(offX, offY, offX+w, offY+h), img, img.Bounds().Min, draw.Src)

	return canvas
}
