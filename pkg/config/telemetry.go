package config

import (
	"fmt"
	"strings"
	"time"
)

// TelemetryConfig switches trace export on and describes the OTLP/HTTP collector.
type TelemetryConfig struct {
	Enabled bool         `koanf:"enabled"`
	Traces  TracesConfig `koanf:"traces"`
}

type TracesConfig struct {
	// SampleRatio is the share of new traces that are recorded, from 0 to 1.
	// Incoming sampled traces are always continued.
	SampleRatio float64        `koanf:"sampleratio"`
	OtlpHttp    OtlpHttpConfig `koanf:"otlphttp"`
}

type OtlpHttpConfig struct {
	Endpoint string        `koanf:"endpoint"`
	Insecure bool          `koanf:"insecure"`
	Timeout  time.Duration `koanf:"timeout"`
}

func (c *TelemetryConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Telemetry ---\n")
	fmt.Fprintf(&b, "  telemetry.enabled: %t\n", c.Enabled)
	if !c.Enabled {
		return b.String()
	}
	fmt.Fprintf(&b, "  telemetry.traces.sampleratio: %g\n", c.Traces.SampleRatio)
	fmt.Fprintf(&b, "  telemetry.traces.otlphttp.endpoint: %s\n", c.Traces.OtlpHttp.Endpoint)
	fmt.Fprintf(&b, "  telemetry.traces.otlphttp.insecure: %t\n", c.Traces.OtlpHttp.Insecure)
	fmt.Fprintf(&b, "  telemetry.traces.otlphttp.timeout: %s\n", c.Traces.OtlpHttp.Timeout)
	return b.String()
}

// Validate ignores the exporter settings while tracing is off.
func (c *TelemetryConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Traces.SampleRatio < 0 || c.Traces.SampleRatio > 1 {
		return fmt.Errorf("trace sample ratio must be within [0, 1], got %g", c.Traces.SampleRatio)
	}
	if c.Traces.OtlpHttp.Endpoint == "" {
		return fmt.Errorf("telemetry is enabled but the OTLP endpoint is not configured")
	}
	if c.Traces.OtlpHttp.Timeout <= 0 {
		return fmt.Errorf("OTLP export timeout must be positive, got %s", c.Traces.OtlpHttp.Timeout)
	}
	return nil
}
