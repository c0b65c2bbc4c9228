package ephemeris

import (
	"os"
	"sync"

	"github.com/spf13/viper"
)

// Config carries the tunable constants of the engine. Values come from an
// optional conf.toml in the directory named by the EPHEMERIS_CONFIG
// environment variable; every field has a working default so no file is
// required.
type Config struct {
	// MoonSecularAcceleration realigns the lunar theory with a reference
	// ephemeris fitted to a different tidal acceleration, arcsec/cy².
	MoonSecularAcceleration float64
	// LightTimeIterations caps the light-time convergence loop.
	LightTimeIterations int
	// PolarX, PolarY are the pole offsets used by the polar-motion
	// correction, arcseconds.
	PolarX, PolarY float64
	// PreferOuterFit tries the restricted-range outer-planet fit before the
	// full planetary series.
	PreferOuterFit bool
	// Truncation is the amplitude floor applied to the planetary series;
	// zero evaluates the full theory.
	Truncation float64
}

var (
	cfgOnce sync.Once
	cfg     Config
)

func defaultConfig() Config {
	return Config{
		MoonSecularAcceleration: MoonSecularAcceleration,
		LightTimeIterations:     50,
	}
}

// LoadConfig reads the engine configuration once per process. Subsequent
// calls return the same value; configuration is immutable after first use.
func LoadConfig() Config {
	cfgOnce.Do(func() {
		cfg = defaultConfig()
		confPath := os.Getenv("EPHEMERIS_CONFIG")
		if confPath == "" {
			return
		}
		v := viper.New()
		v.SetConfigName("conf")
		v.AddConfigPath(confPath)
		v.SetDefault("moon.secular_acceleration", cfg.MoonSecularAcceleration)
		v.SetDefault("pipeline.light_time_iterations", cfg.LightTimeIterations)
		v.SetDefault("pipeline.prefer_outer_fit", cfg.PreferOuterFit)
		v.SetDefault("pipeline.truncation", cfg.Truncation)
		v.SetDefault("earth.polar_x", cfg.PolarX)
		v.SetDefault("earth.polar_y", cfg.PolarY)
		if err := v.ReadInConfig(); err != nil {
			return // missing or unreadable file keeps the defaults
		}
		cfg.MoonSecularAcceleration = v.GetFloat64("moon.secular_acceleration")
		cfg.LightTimeIterations = v.GetInt("pipeline.light_time_iterations")
		cfg.PreferOuterFit = v.GetBool("pipeline.prefer_outer_fit")
		cfg.Truncation = v.GetFloat64("pipeline.truncation")
		cfg.PolarX = v.GetFloat64("earth.polar_x")
		cfg.PolarY = v.GetFloat64("earth.polar_y")
	})
	return cfg
}
