package render

import(
	"testing"

	"github.com/pkg/errors"
)

func TestReconcileCommonGrid(t *testing.T) {
	blue := uniformGrid(50, 0.3)
	red := uniformGrid(100, 0.6)
	veggie := uniformGrid(50, 0.1)

	for _, target := range []int{25, 50, 100, 128} {
		rec, err := Reconcile(blue, red, veggie, target)
		if err != nil {
			t.Fatalf("Reconcile(target=%d): %v", target, err)
		}
		for name, g := range map[string]Grid{"blue": rec.Blue, "red": rec.Red, "veggie": rec.Veggie} {
			if g.Dx() != target || g.Dy() != target {
				t.Errorf("target=%d: %s grid is %dx%d", target, name, g.Dx(), g.Dy())
			}
		}
	}
}

func TestReconcileRejectsBadRatio(t *testing.T) {
	tests := []struct {
		name              string
		blue, red, veggie int
	}{
		{"red equal to blue", 50, 50, 50},
		{"red 3x blue", 50, 150, 50},
		{"red just off 2x", 50, 99, 50},
		{"blue and veggie differ", 50, 100, 60},
	}

	for _, tc := range tests {
		_, err := Reconcile(uniformGrid(tc.blue, 0.5), uniformGrid(tc.red, 0.5), uniformGrid(tc.veggie, 0.5), 100)
		if !errors.Is(err, ErrResolutionMismatch) {
			t.Errorf("%s: err = %v, want ErrResolutionMismatch", tc.name, err)
		}
	}
}
