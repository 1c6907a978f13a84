package render

import(
	"github.com/pkg/errors"
)

// A ReconciledBandSet has all three channels on one common grid.
// Nothing downstream of Reconcile resizes anything.
type ReconciledBandSet struct {
	Blue   Grid
	Red    Grid
	Veggie Grid
}

// Reconcile puts the three normalized bands onto a shared
// targetSize x targetSize grid. The instrument samples red at twice
// the linear resolution of blue and veggie; anything else means the
// fetch layer handed us bands from different products or acquisitions,
// so that relationship is checked before any resampling happens.
// Each band is resized straight from native to the target, never via
// an intermediate grid, so nothing gets resampled twice.
func Reconcile(blue, red, veggie Grid, targetSize int) (ReconciledBandSet, error) {
	if blue.Dx() != veggie.Dx() || blue.Dy() != veggie.Dy() {
		return ReconciledBandSet{}, errors.Wrapf(ErrResolutionMismatch,
			"blue %dx%d vs veggie %dx%d, want identical",
			blue.Dx(), blue.Dy(), veggie.Dx(), veggie.Dy())
	}
	if red.Dx() != 2*blue.Dx() || red.Dy() != 2*blue.Dy() {
		return ReconciledBandSet{}, errors.Wrapf(ErrResolutionMismatch,
			"red %dx%d vs blue %dx%d, want exactly 2x on each axis",
			red.Dx(), red.Dy(), blue.Dx(), blue.Dy())
	}

	return ReconciledBandSet{
		Blue:   blue.Resize(targetSize, targetSize),
		Red:    red.Resize(targetSize, targetSize),
		Veggie: veggie.Resize(targetSize, targetSize),
	}, nil
}
