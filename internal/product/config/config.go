package config

import (
	"strings"

	"github.com/abgdnv/coffeeshop/pkg/config"
	"github.com/abgdnv/coffeeshop/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

// DefaultPort is the webshop's HTTP port when neither config.yaml nor the environment sets one.
const DefaultPort = 5000

type Config struct {
	HTTPServer config.HTTPConfig      `koanf:"server"`
	Log        config.LogConfig       `koanf:"log"`
	PProf      config.PProfConfig     `koanf:"pprof"`
	Shutdown   config.ShutdownConfig  `koanf:"shutdown"`
	Metrics    config.MetricsConfig   `koanf:"metrics"`
	Telemetry  config.TelemetryConfig `koanf:"telemetry"`
}

// Defaults returns the settings used when nothing else overrides them.
func Defaults() map[string]any {
	return config.Defaults(DefaultPort)
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.HTTPServer.String())
	b.WriteString(c.Log.String())
	b.WriteString(c.PProf.String())
	b.WriteString(c.Metrics.String())
	b.WriteString(c.Telemetry.String())
	b.WriteString(c.Shutdown.String())
	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if err := c.HTTPServer.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.PProf.Validate(); err != nil {
		return err
	}
	if err := c.Shutdown.Validate(); err != nil {
		return err
	}
	if err := c.Metrics.Validate(); err != nil {
		return err
	}
	return c.Telemetry.Validate()
}
