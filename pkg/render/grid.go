package render

import(
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// A Grid holds one band's reflectance samples as a flat float64
// array. All the pipeline stages up to quantization work on these.
type Grid struct {
	stride int
	values []float64
}

func NewGrid(w, h int) Grid {
	return Grid{
		stride: w,
		values: make([]float64, w*h),
	}
}

func (g *Grid)Set(x, y int, v float64) { g.values[g.stride*y + x] = v }
func (g *Grid)Get(x, y int) float64    { return g.values[g.stride*y + x] }
func (g *Grid)Dx() int                 { return g.stride }
func (g *Grid)Empty() bool             { return g.stride <= 0 || len(g.values) == 0 }

func (g *Grid)Dy() int {
	if g.stride <= 0 {
		return 0
	}
	return len(g.values) / g.stride
}

// Resize resamples the grid to w x h. Downsampling averages the
// source area each output pixel covers, which is the radiometrically
// honest thing to do with reflectance data; upsampling is bilinear.
// Resampling to the native size returns a plain copy.
func (g *Grid)Resize(w, h int) Grid {
	if w == g.Dx() && h == g.Dy() {
		g2 := Grid{stride: g.stride, values: make([]float64, len(g.values))}
		copy(g2.values, g.values)
		return g2
	}
	if w < g.Dx() || h < g.Dy() {
		return g.resizeArea(w, h)
	}
	return g.resizeBilinear(w, h)
}

// resizeArea: for every output pixel, integrate the source rectangle
// it maps onto, weighting partial edge pixels by their overlap.
func (g *Grid)resizeArea(w, h int) Grid {
	g2 := NewGrid(w, h)
	xRatio := float64(g.Dx()) / float64(w)
	yRatio := float64(g.Dy()) / float64(h)

	for ty:=0; ty<h; ty++ {
		y0 := float64(ty) * yRatio
		y1 := y0 + yRatio
		for tx:=0; tx<w; tx++ {
			x0 := float64(tx) * xRatio
			x1 := x0 + xRatio

			// x1/y1 can drift an ulp past the grid edge when the
			// ratio isn't exactly representable, so the loop bounds
			// get clamped to the source extent.
			yEnd := int(math.Ceil(y1))
			if yEnd > g.Dy() { yEnd = g.Dy() }
			xEnd := int(math.Ceil(x1))
			if xEnd > g.Dx() { xEnd = g.Dx() }

			sum, area := 0.0, 0.0
			for y:=int(y0); y<yEnd; y++ {
				wy := math.Min(y1, float64(y+1)) - math.Max(y0, float64(y))
				for x:=int(x0); x<xEnd; x++ {
					wx := math.Min(x1, float64(x+1)) - math.Max(x0, float64(x))
					sum += g.Get(x, y) * wx * wy
					area += wx * wy
				}
			}
			if area > 0 {
				g2.Set(tx, ty, sum/area)
			}
		}
	}

	return g2
}

func (g *Grid)resizeBilinear(w, h int) Grid {
	g2 := NewGrid(w, h)
	xRatio := float64(g.Dx()) / float64(w)
	yRatio := float64(g.Dy()) / float64(h)

	for ty:=0; ty<h; ty++ {
		sy := (float64(ty)+0.5)*yRatio - 0.5
		y0 := int(math.Floor(sy))
		fy := sy - float64(y0)
		y0, y1 := clampIndex(y0, g.Dy()), clampIndex(y0+1, g.Dy())

		for tx:=0; tx<w; tx++ {
			sx := (float64(tx)+0.5)*xRatio - 0.5
			x0 := int(math.Floor(sx))
			fx := sx - float64(x0)
			x0, x1 := clampIndex(x0, g.Dx()), clampIndex(x0+1, g.Dx())

			top := g.Get(x0, y0)*(1-fx) + g.Get(x1, y0)*fx
			bot := g.Get(x0, y1)*(1-fx) + g.Get(x1, y1)*fx
			g2.Set(tx, ty, top*(1-fy) + bot*fy)
		}
	}

	return g2
}

func clampIndex(i, n int) int {
	if i < 0   { return 0 }
	if i >= n  { return n-1 }
	return i
}

// Stats summarizes the grid for verbose logging.
func (g *Grid)Stats() string {
	min, max := math.MaxFloat64, -math.MaxFloat64
	for _, v := range g.values {
		if v > max { max = v }
		if v < min { min = v }
	}
	mean, sd := stat.MeanStdDev(g.values, nil)
	return fmt.Sprintf("grid[%dx%d, range{%.4f,%.4f}, mean %.4f, sd %.4f]",
		g.Dx(), g.Dy(), min, max, mean, sd)
}
