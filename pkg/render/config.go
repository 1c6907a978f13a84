package render

import(
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

/* Example config file ...

earthsize: 4096
padding: 2.5
gamma: 2.2

*/

// Defaults that give a pleasant wallpaper-ish image: the disc fills
// just under half the frame, and the gamma lifts the otherwise very
// dark linear reflectance.
const(
	DefaultEarthSize    = 2048
	DefaultPaddingRatio = 2.1
	DefaultGamma        = 2.2
)

// Config is everything the pipeline needs to know. It is validated
// once, by Finalize, before any stage runs; the stages themselves
// trust it.
type Config struct {
	EarthSize    int     `yaml:"earthsize"` // Earth disc diameter, pixels
	PaddingRatio float64 `yaml:"padding"`   // final size = earthsize * padding
	Gamma        float64 `yaml:"gamma"`     // output = input^(1/gamma)
}

func NewConfig() Config {
	return Config{
		EarthSize:    DefaultEarthSize,
		PaddingRatio: DefaultPaddingRatio,
		Gamma:        DefaultGamma,
	}
}

func LoadConfig(filename string) (Config, error) {
	c := NewConfig()

	contents, err := os.ReadFile(filename)
	if err != nil {
		return c, errors.Wrapf(err, "config read '%s'", filename)
	}
	if err := yaml.Unmarshal(contents, &c); err != nil {
		return c, errors.Wrapf(err, "config parse '%s'", filename)
	}

	return c, nil
}

// Finalize does the sanity checks.
func (c Config)Finalize() error {
	if c.EarthSize <= 0 {
		return errors.Wrapf(ErrBadConfig, "earth size %d, must be > 0", c.EarthSize)
	}
	if c.PaddingRatio < 1.0 {
		return errors.Wrapf(ErrBadConfig, "padding ratio %.3f, must be >= 1.0", c.PaddingRatio)
	}
	if c.Gamma <= 0.0 {
		return errors.Wrapf(ErrBadConfig, "gamma %.3f, must be > 0", c.Gamma)
	}
	return nil
}
