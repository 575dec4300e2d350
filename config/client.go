package config

import (
	"time"

	"github.com/kbukum/openaikit/httpclient"
	"github.com/kbukum/openaikit/logger"
	"github.com/kbukum/openaikit/observability"
	"github.com/kbukum/openaikit/openai"
	"github.com/kbukum/openaikit/validation"
)

// AppName names the config and .env files searched by Load.
const AppName = "openai"

// TransportConfig configures the default HTTP transport.
type TransportConfig struct {
	// Timeout bounds each exchange. Zero falls back to openai.base_options.timeout.
	Timeout time.Duration     `yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`
}

// ClientConfig is the full set of settings used by the openai CLI.
//
//	openai:
//	  api_key: sk-...
//	  organization: org-...
//	  base_path: https://api.openai.com/v1
//	logger:
//	  level: debug
//	transport:
//	  timeout: 60s
//	tracing:
//	  enabled: true
//	  endpoint: localhost:4318
//	  insecure: true
//	  sample_rate: 1
type ClientConfig struct {
	OpenAI    openai.Parameters          `yaml:"openai" mapstructure:"openai"`
	Logger    logger.Config              `yaml:"logger" mapstructure:"logger"`
	Transport TransportConfig            `yaml:"transport" mapstructure:"transport"`
	Tracing   observability.TracerConfig `yaml:"tracing" mapstructure:"tracing"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *ClientConfig) ApplyDefaults() {
	c.Logger.ApplyDefaults()
	if c.Transport.Timeout == 0 {
		c.Transport.Timeout = c.OpenAI.BaseOptions.Timeout
	}
	if c.Tracing.Enabled {
		c.Tracing.ApplyDefaults(AppName)
	}
}

// Validate checks struct tags and the logger settings.
// Credentials are not required here; the API reports a missing key itself.
func (c *ClientConfig) Validate() error {
	v := validation.New().Merge(validation.Validate(c))
	if err := c.Logger.Validate(); err != nil {
		v.AddError("logger", err.Error())
	}
	return v.Validate()
}

// HTTPConfig returns the transport configuration for httpclient.New.
func (c *ClientConfig) HTTPConfig() httpclient.Config {
	return httpclient.Config{
		Name:    AppName,
		Timeout: c.Transport.Timeout,
		Headers: c.Transport.Headers,
	}
}

// DefaultEnvAliases binds the variable names the openai tooling commonly uses.
func DefaultEnvAliases() []LoaderOption {
	return []LoaderOption{
		WithEnvAlias("openai.base_options.timeout", "OPENAI_TIMEOUT"),
		WithEnvAlias("openai.api_key", "OPENAIKIT_API_KEY"),
		WithEnvAlias("logger.level", "OPENAI_LOG_LEVEL"),
		WithEnvAlias("tracing.endpoint", "OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
}

// Load reads a ClientConfig, applies defaults and validates it.
func Load(opts ...LoaderOption) (*ClientConfig, error) {
	var cfg ClientConfig
	all := append(DefaultEnvAliases(), opts...)
	if err := LoadConfig(AppName, &cfg, all...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
