package fetch

import(
	"fmt"
	"os"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/pkg/errors"

	"github.com/wxsat/fulldisk/pkg/render"
)

// The variable holding the imagery in an ABI-L2-CMIPF file. Stored
// as scaled int16 with _FillValue marking off-disc samples; some
// reprocessed files carry it as float32 directly.
const cmiVariable = "CMI"

// Where invalid samples end up in the decoded grid. The normalizer
// treats this as "space".
const fillSentinel = -1.0

// DecodeCMI unpacks a downloaded CMIPF file into a RawBand: raw
// int16 counts scaled by scale_factor/add_offset into reflectance
// factors, with a validity mask derived from _FillValue. The NetCDF
// reader wants a file on disk, so the bytes take a detour through a
// temp file - same lifetime as this call.
func DecodeCMI(data []byte, band int) (render.RawBand, error) {
	tmp, err := os.CreateTemp("", "cmipf-*.nc")
	if err != nil {
		return render.RawBand{}, errors.Wrap(err, "temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return render.RawBand{}, errors.Wrap(err, "temp write")
	}
	tmp.Close()

	nc, err := netcdf.Open(tmp.Name())
	if err != nil {
		return render.RawBand{}, errors.Wrap(err, "netcdf open")
	}
	defer nc.Close()

	vr, err := nc.GetVariable(cmiVariable)
	if err != nil {
		return render.RawBand{}, errors.Wrapf(err, "variable %s", cmiVariable)
	}

	switch vals := vr.Values.(type) {

	case [][]int16:
		scale, ok := attrFloat(vr.Attributes, "scale_factor")
		if !ok {
			return render.RawBand{}, fmt.Errorf("%s: no scale_factor", cmiVariable)
		}
		offset, _ := attrFloat(vr.Attributes, "add_offset")
		fill, hasFill := attrInt16(vr.Attributes, "_FillValue")
		return decodeScaled(vals, scale, offset, fill, hasFill, band)

	case [][]float32:
		return decodeFloat(vals, band)

	default:
		return render.RawBand{}, fmt.Errorf("%s: unexpected type %T", cmiVariable, vr.Values)
	}
}

func decodeScaled(vals [][]int16, scale, offset float64, fill int16, hasFill bool, band int) (render.RawBand, error) {
	h := len(vals)
	if h == 0 || len(vals[0]) == 0 {
		return render.RawBand{}, fmt.Errorf("band %d: empty CMI grid", band)
	}
	w := len(vals[0])

	grid := render.NewGrid(w, h)
	valid := make([]bool, w*h)
	for y, row := range vals {
		if len(row) != w {
			return render.RawBand{}, fmt.Errorf("band %d: ragged CMI grid at row %d", band, y)
		}
		for x, raw := range row {
			if hasFill && raw == fill {
				grid.Set(x, y, fillSentinel)
				continue
			}
			grid.Set(x, y, float64(raw)*scale+offset)
			valid[y*w+x] = true
		}
	}

	return render.RawBand{
		Band:      band,
		Data:      grid,
		FillValue: fillSentinel,
		Valid:     valid,
	}, nil
}

func decodeFloat(vals [][]float32, band int) (render.RawBand, error) {
	h := len(vals)
	if h == 0 || len(vals[0]) == 0 {
		return render.RawBand{}, fmt.Errorf("band %d: empty CMI grid", band)
	}
	w := len(vals[0])

	grid := render.NewGrid(w, h)
	valid := make([]bool, w*h)
	for y, row := range vals {
		if len(row) != w {
			return render.RawBand{}, fmt.Errorf("band %d: ragged CMI grid at row %d", band, y)
		}
		for x, raw := range row {
			// float CMI marks space as NaN
			if raw != raw {
				grid.Set(x, y, fillSentinel)
				continue
			}
			grid.Set(x, y, float64(raw))
			valid[y*w+x] = true
		}
	}

	return render.RawBand{
		Band:      band,
		Data:      grid,
		FillValue: fillSentinel,
		Valid:     valid,
	}, nil
}

// NetCDF attributes come back as assorted widths, and sometimes as
// one-element slices. Flatten the cases we meet in CMIPF files.
func attrFloat(attrs interface{ Get(string) (interface{}, bool) }, name string) (float64, bool) {
	v, ok := attrs.Get(name)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case float32:
		return float64(t), true
	case float64:
		return t, true
	case []float32:
		if len(t) > 0 {
			return float64(t[0]), true
		}
	case []float64:
		if len(t) > 0 {
			return t[0], true
		}
	}
	return 0, false
}

func attrInt16(attrs interface{ Get(string) (interface{}, bool) }, name string) (int16, bool) {
	v, ok := attrs.Get(name)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case int16:
		return t, true
	case []int16:
		if len(t) > 0 {
			return t[0], true
		}
	}
	return 0, false
}
