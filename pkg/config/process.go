package config

import (
	"fmt"
	"net"
	"strings"
	"time"
)

// PProfConfig controls the profiling server. It never shares the public port.
type PProfConfig struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

// ShutdownConfig bounds how long servers and exporters get to drain on exit.
type ShutdownConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

func (c *PProfConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- PProf ---\n")
	fmt.Fprintf(&b, "  pprof.enabled: %t\n", c.Enabled)
	fmt.Fprintf(&b, "  pprof.addr: %s\n", c.Addr)
	return b.String()
}

// Validate requires a host:port address, but only when profiling is on.
func (c *PProfConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("invalid pprof address %q: %w", c.Addr, err)
	}
	return nil
}

func (c *ShutdownConfig) String() string {
	return fmt.Sprintf("\n--- Shutdown ---\n  shutdown.timeout: %s\n", c.Timeout)
}

func (c *ShutdownConfig) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
