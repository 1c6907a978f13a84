package main

import(
	"testing"

	"github.com/pkg/errors"

	"github.com/wxsat/fulldisk/pkg/render"
)

func TestExplicitBadFlagValueReachesValidation(t *testing.T) {
	// -size -5 on the command line must fail Finalize, not silently
	// fall back to the default.
	old := fEarthSize
	defer func() { fEarthSize = old }()
	fEarthSize = -5

	cfg := render.NewConfig()
	applyFlagOverrides(&cfg, map[string]bool{"size": true})

	if cfg.EarthSize != -5 {
		t.Fatalf("EarthSize = %d, want the explicit -5", cfg.EarthSize)
	}
	if err := cfg.Finalize(); !errors.Is(err, render.ErrBadConfig) {
		t.Errorf("Finalize err = %v, want ErrBadConfig", err)
	}
}

func TestUntouchedFlagsLeaveConfigFileValues(t *testing.T) {
	// Flag variables hold their defaults, but since the user didn't
	// type them they mustn't clobber the config file.
	oldSize, oldPad, oldGamma := fEarthSize, fPaddingRatio, fGamma
	defer func() { fEarthSize, fPaddingRatio, fGamma = oldSize, oldPad, oldGamma }()
	fEarthSize = render.DefaultEarthSize
	fPaddingRatio = render.DefaultPaddingRatio
	fGamma = render.DefaultGamma

	cfg := render.Config{EarthSize: 4096, PaddingRatio: 1.5, Gamma: 1.8}
	applyFlagOverrides(&cfg, map[string]bool{})

	if cfg.EarthSize != 4096 || cfg.PaddingRatio != 1.5 || cfg.Gamma != 1.8 {
		t.Errorf("config file values clobbered: %+v", cfg)
	}
}

func TestTypedFlagsOverrideConfigFileValues(t *testing.T) {
	oldPad := fPaddingRatio
	defer func() { fPaddingRatio = oldPad }()
	fPaddingRatio = 3.0

	cfg := render.Config{EarthSize: 4096, PaddingRatio: 1.5, Gamma: 1.8}
	applyFlagOverrides(&cfg, map[string]bool{"padding": true})

	if cfg.PaddingRatio != 3.0 {
		t.Errorf("PaddingRatio = %v, want the typed 3.0", cfg.PaddingRatio)
	}
	if cfg.EarthSize != 4096 || cfg.Gamma != 1.8 {
		t.Errorf("untyped fields clobbered: %+v", cfg)
	}
}
