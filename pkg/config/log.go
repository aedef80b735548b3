package config

import (
	"fmt"
	"strings"
)

var logLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

type LogConfig struct {
	Level string `koanf:"level"`
}

// String returns a string representation of the log configuration.
func (c *LogConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Log ---\n")
	b.WriteString(fmt.Sprintf("  level: %s\n", c.Level))
	return b.String()
}

func (c *LogConfig) Validate() error {
	if c.Level == "" {
		return nil
	}
	if _, ok := logLevels[strings.ToLower(c.Level)]; !ok {
		return fmt.Errorf("unknown log level: %s", c.Level)
	}
	return nil
}
