package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/smartcontractkit/weierstrass/curve"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding configuration keys, e.g. WEIERSTRASS_CURVE.
const EnvPrefix = "WEIERSTRASS"

const (
	KeyCurve     = "curve"
	KeyLogLevel  = "log.level"
	KeyLogJSON   = "log.json"
	KeySamples   = "selfcheck.samples"
	KeySeed      = "selfcheck.seed"
	DefaultCurve = "P256"
)

var (
	ErrNoCurveSelected        = errors.New("no curve selected")
	ErrMultipleCurvesSelected = errors.New("more than one curve selected")
	ErrUnknownCurve           = errors.New("unknown curve")
)

// Config is the process-wide configuration. It is read once at startup and not modified afterwards.
type Config struct {
	Curve string `mapstructure:"curve"`
	Log   struct {
		Level string `mapstructure:"level"`
		JSON  bool   `mapstructure:"json"`
	} `mapstructure:"log"`
	SelfCheck struct {
		Samples int    `mapstructure:"samples"`
		Seed    string `mapstructure:"seed"`
	} `mapstructure:"selfcheck"`
}

// NewViper returns a viper instance with defaults and environment overrides set up.
// An environment variable that is set but empty counts as set, so WEIERSTRASS_CURVE= deselects the default curve.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyCurve, DefaultCurve)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogJSON, false)
	v.SetDefault(KeySamples, 16)
	v.SetDefault(KeySeed, "weierstrass")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file at path (YAML, JSON or TOML, by extension) into v and returns the resulting
// configuration. The curve selection is validated eagerly.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}

	conf := &Config{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, errors.Wrap(err, "decoding configuration")
	}
	if conf.SelfCheck.Samples < 0 {
		return nil, errors.Errorf("%s must not be negative, got %d", KeySamples, conf.SelfCheck.Samples)
	}
	if _, err := conf.SelectCurve(); err != nil {
		return nil, err
	}
	return conf, nil
}

// SelectCurve resolves the configured curve. Exactly one curve must be named; a comma separated list of several
// names, or no name at all, is a configuration error.
func (c *Config) SelectCurve() (*curve.Params, error) {
	var names []string
	for _, name := range strings.Split(c.Curve, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	switch len(names) {
	case 0:
		return nil, errors.Wrapf(ErrNoCurveSelected, "set %q or %s_CURVE to one of %v",
			KeyCurve, EnvPrefix, curve.CurveNames())
	case 1:
	default:
		return nil, errors.Wrapf(ErrMultipleCurvesSelected, "%v", names)
	}

	selected, err := curve.CurveByName(names[0])
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownCurve, "%q is not one of %v", names[0], curve.CurveNames())
	}
	return selected, nil
}
