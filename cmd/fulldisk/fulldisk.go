// fulldisk renders a true-color image of the Earth from GOES
// satellite data: three visible/near-IR bands pulled from the public
// NOAA archive, composited with a synthetic green channel, gamma
// corrected, and centered in a black frame.
//
//   fulldisk -o earth.png
//   fulldisk -sat goes-east -t -12h -o earth.png
//   fulldisk -t "2024-06-15 18:00" -size 4096 -padding 2.5 -o earth.png
package main

import(
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wxsat/fulldisk/pkg/fetch"
	"github.com/wxsat/fulldisk/pkg/goes"
	"github.com/wxsat/fulldisk/pkg/render"
)

var(
	fOutputFilename string
	fConfigFilename string
	fSatellite      string
	fTime           string
	fEarthSize      int
	fPaddingRatio   float64
	fGamma          float64
	fCaption        bool
	fDumpBands      bool
	fVerbose        bool
	fQuiet          bool
)

func init() {
	flag.StringVar(&fOutputFilename, "o", "", "name of output image file (.png or .tif), required")
	flag.StringVar(&fConfigFilename, "config", "", "optional YAML config file; flags override it")
	flag.StringVar(&fSatellite, "sat", goes.DefaultSatellite, "which satellite (goes-west, goes-east, goes-16..19)")
	flag.StringVar(&fTime, "t", "now", "image time: 'now', '-12h', '-30m', or 'YYYY-MM-DD HH:MM'")
	flag.IntVar(&fEarthSize, "size", render.DefaultEarthSize, "Earth diameter in pixels")
	flag.Float64Var(&fPaddingRatio, "padding", render.DefaultPaddingRatio, "final size = earth size * padding")
	flag.Float64Var(&fGamma, "gamma", render.DefaultGamma, "gamma correction")
	flag.BoolVar(&fCaption, "caption", false, "draw satellite name and image time on the canvas")
	flag.BoolVar(&fDumpBands, "dumpbands", false, "also write each band as a false-color PNG")
	flag.BoolVar(&fVerbose, "v", false, "print progress messages")
	flag.BoolVar(&fQuiet, "q", false, "suppress all output except errors")
}

// applyFlagOverrides copies the numeric flags the user actually
// typed into the config. Only explicitly-set flags override the
// config file, and an explicit bad value (-size -5) reaches Finalize
// and fails there instead of being mistaken for "unset".
func applyFlagOverrides(cfg *render.Config, set map[string]bool) {
	if set["size"]    { cfg.EarthSize = fEarthSize }
	if set["padding"] { cfg.PaddingRatio = fPaddingRatio }
	if set["gamma"]   { cfg.Gamma = fGamma }
}

func main() {
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	switch {
	case fQuiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case fVerbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if fOutputFilename == "" {
		fmt.Fprintf(os.Stderr, "no output file; use -o\n")
		flag.Usage()
		os.Exit(1)
	}

	target, err := goes.ParseTime(fTime, time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("bad -t value")
	}

	sat, err := goes.Resolve(fSatellite)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -sat value")
	}

	cfg := render.NewConfig()
	if fConfigFilename != "" {
		if cfg, err = render.LoadConfig(fConfigFilename); err != nil {
			log.Fatal().Err(err).Msg("config file")
		}
	}

	// Command line args override the config file, if given
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	applyFlagOverrides(&cfg, set)

	if err := cfg.Finalize(); err != nil {
		log.Fatal().Err(err).Msg("configuration")
	}

	log.Debug().
		Str("satellite", sat.Name).
		Time("target", target).
		Int("earthsize", cfg.EarthSize).
		Float64("padding", cfg.PaddingRatio).
		Float64("gamma", cfg.Gamma).
		Msg("starting")

	client, err := fetch.NewClient()
	if err != nil {
		log.Fatal().Err(err).Msg("s3 client")
	}

	bs, err := client.FetchBandSet(sat, target)
	if err != nil {
		log.Fatal().Err(err).Msg("fetch bands")
	}

	if fDumpBands {
		prefix := strings.TrimSuffix(fOutputFilename, filepath.Ext(fOutputFilename))
		if err := render.DumpBands(bs, cfg, prefix); err != nil {
			log.Fatal().Err(err).Msg("dump bands")
		}
	}

	log.Debug().Msg("rendering image")
	img, err := render.Render(bs, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("render")
	}

	if fCaption {
		img = render.Caption(img, fmt.Sprintf("%s  %s", sat.Name, bs.Time.Format("2006-01-02 15:04 UTC")))
	}

	if dir := filepath.Dir(fOutputFilename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatal().Err(err).Msg("output dir")
		}
	}
	if err := render.WriteImage(img, fOutputFilename); err != nil {
		log.Fatal().Err(err).Msg("write image")
	}

	bounds := img.Bounds()
	log.Info().Msgf("Saved: %s (%dx%d)", fOutputFilename, bounds.Dx(), bounds.Dy())
	log.Info().Msgf("Image time: %s", bs.Time.Format("2006-01-02 15:04:05 UTC"))
}
