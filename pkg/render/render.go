package render

import(
	"image"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Render runs the whole pipeline: validate config, normalize each
// band, reconcile resolutions, composite to RGB, pad to the final
// canvas. The stages run in exactly that order - each one depends on
// the invariant the previous one established. The first failure wins
// and nothing partial is returned.
func Render(bs BandSet, cfg Config) (*image.RGBA, error) {
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}

	blue, err := Normalize(bs.Blue)
	if err != nil {
		return nil, errors.Wrap(err, "normalize blue")
	}
	red, err := Normalize(bs.Red)
	if err != nil {
		return nil, errors.Wrap(err, "normalize red")
	}
	veggie, err := Normalize(bs.Veggie)
	if err != nil {
		return nil, errors.Wrap(err, "normalize veggie")
	}

	log.Debug().Msgf("blue   %s", blue.Stats())
	log.Debug().Msgf("red    %s", red.Stats())
	log.Debug().Msgf("veggie %s", veggie.Stats())

	rec, err := Reconcile(blue, red, veggie, cfg.EarthSize)
	if err != nil {
		return nil, errors.Wrap(err, "reconcile")
	}

	maskSpace(&rec, []Grid{fillMask(bs.Blue), fillMask(bs.Red), fillMask(bs.Veggie)}, cfg.EarthSize)

	rgb := Composite(rec, cfg.Gamma)

	return Pad(rgb, cfg.PaddingRatio), nil
}

// Space is the union across bands: a pixel with no data in any band
// renders black in all three channels, so a band-specific outage
// (bad scan lines, a whole missing band) can't tint the disc. Each
// native-resolution mask is resized to the output grid; a pixel
// counts as space where the resampled fill coverage exceeds half.
func maskSpace(rec *ReconciledBandSet, masks []Grid, targetSize int) {
	for _, m := range masks {
		rm := m.Resize(targetSize, targetSize)
		for y:=0; y<targetSize; y++ {
			for x:=0; x<targetSize; x++ {
				if rm.Get(x, y) > 0.5 {
					rec.Blue.Set(x, y, 0.0)
					rec.Red.Set(x, y, 0.0)
					rec.Veggie.Set(x, y, 0.0)
				}
			}
		}
	}
}
