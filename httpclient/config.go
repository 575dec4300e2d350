package httpclient

import (
	"fmt"
	"time"
)

const defaultName = "httpclient"

// Config configures the default net/http Transport.
type Config struct {
	// Name identifies the adapter in logs and errors.
	Name string `yaml:"name" mapstructure:"name"`

	// Timeout bounds a whole exchange including reading the body.
	// Zero means no timeout; the request context still applies.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are transport-level defaults. Request headers override them.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = defaultName
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("httpclient: timeout must not be negative")
	}
	return nil
}
