// Package app implements the openai command-line interface.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/openaikit/config"
	"github.com/kbukum/openaikit/errors"
	"github.com/kbukum/openaikit/httpclient"
	"github.com/kbukum/openaikit/logger"
	"github.com/kbukum/openaikit/observability"
	"github.com/kbukum/openaikit/openai"
	"github.com/kbukum/openaikit/version"
)

const (
	cliName        = "openai"
	cliDescription = "openai - send requests to the OpenAI API"

	shutdownTimeout = 5 * time.Second
)

// GlobalOptions holds options that are common to all commands
type GlobalOptions struct {
	ConfigFile   string
	EnvFile      string
	APIKey       string
	APIKeyFile   string
	Organization string
	BasePath     string
	LogLevel     string
}

// NewOpenAICommand creates the root openai command with all subcommands.
func NewOpenAICommand() *cobra.Command {
	opts := &GlobalOptions{}

	cmd := &cobra.Command{
		Use:   cliName,
		Short: cliDescription,
		Long: `openai sends a single request to the OpenAI API and writes the raw
response body to stdout.

Settings are read from config.yml, a .env file and the environment
(OPENAI_API_KEY, OPENAI_ORGANIZATION, OPENAI_BASE_PATH). Flags win over all of them.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigFile, "config", "", "config file (default: search ./config.yml and the user config dir)")
	flags.StringVar(&opts.EnvFile, "env-file", "", ".env file to load")
	flags.StringVar(&opts.APIKey, "api-key", "", "API key (default: $OPENAI_API_KEY)")
	flags.StringVar(&opts.APIKeyFile, "api-key-file", "", "read the API key from this file")
	flags.StringVar(&opts.Organization, "organization", "", "organization id")
	flags.StringVar(&opts.BasePath, "base-path", "", "API base path (default: "+openai.DefaultBasePath+")")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	cmd.AddCommand(
		NewCompletionCommand(opts),
		NewChatCommand(opts),
		NewImageCommand(opts),
		NewEmbeddingCommand(opts),
		NewModerationCommand(opts),
		NewVersionCommand(),
	)

	return cmd
}

// loadSettings reads the config and applies flag overrides.
func loadSettings(opts *GlobalOptions) (*config.ClientConfig, error) {
	var loaderOpts []config.LoaderOption
	if opts.ConfigFile != "" {
		loaderOpts = append(loaderOpts, config.WithConfigFile(opts.ConfigFile))
	}
	if opts.EnvFile != "" {
		loaderOpts = append(loaderOpts, config.WithEnvFile(opts.EnvFile))
	}

	cfg, err := config.Load(loaderOpts...)
	if err != nil {
		return nil, err
	}

	if opts.APIKey != "" {
		cfg.OpenAI.APIKey = opts.APIKey
	}
	if opts.Organization != "" {
		cfg.OpenAI.Organization = opts.Organization
	}
	if opts.BasePath != "" {
		cfg.OpenAI.BasePath = opts.BasePath
	}
	if opts.LogLevel != "" {
		cfg.Logger.Level = strings.ToLower(opts.LogLevel)
		if err := cfg.Logger.Validate(); err != nil {
			return nil, errors.InvalidInput("log-level", err.Error())
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fileCredential reads the API key from path when resolved.
func fileCredential(path string) openai.Credential {
	return openai.ResolverCredential(func(_ context.Context, _ string) (string, error) {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	})
}

// client is what a subcommand needs to send one request.
type client struct {
	api      *openai.API
	log      *logger.Logger
	shutdown func(context.Context) error
}

// newClient builds the dispatcher and the CLI logger from settings and flags,
// and installs the trace exporter when tracing is enabled.
func newClient(ctx context.Context, cmd *cobra.Command, opts *GlobalOptions) (*client, error) {
	cfg, err := loadSettings(opts)
	if err != nil {
		return nil, err
	}

	log := logger.NewWithWriter(&cfg.Logger, cliName, cmd.ErrOrStderr())

	var configuration *openai.Configuration
	switch {
	case opts.APIKeyFile != "":
		configuration, err = openai.ResolveConfiguration(ctx, fileCredential(opts.APIKeyFile), cfg.OpenAI)
		if err != nil {
			return nil, err
		}
	case cfg.OpenAI.APIKey == "" && cfg.OpenAI.AccessToken == "" && cfg.OpenAI.Username == "":
		return nil, errors.MissingField("api_key")
	default:
		configuration = openai.NewConfiguration(cfg.OpenAI)
	}

	httpCfg := cfg.HTTPConfig()
	httpCfg.Headers = httpclient.MergeHeaders(map[string]string{"User-Agent": version.UserAgent()}, httpCfg.Headers)
	transport, err := httpclient.New(httpCfg)
	if err != nil {
		return nil, err
	}

	c := &client{
		api: openai.New(configuration,
			openai.WithTransport(transport),
			openai.WithLogger(log),
		),
		log: log.WithComponent("cli"),
	}

	if cfg.Tracing.Enabled {
		tracing := cfg.Tracing
		if tracing.ServiceVersion == "" {
			tracing.ServiceVersion = version.Get().Short()
		}
		tp, err := observability.InitTracer(ctx, tracing)
		if err != nil {
			return nil, errors.Internal(err)
		}
		c.shutdown = tp.Shutdown
		c.log.Debug("tracer initialized", logger.Fields("endpoint", tracing.Endpoint, "sample_rate", tracing.SampleRate))
	}
	return c, nil
}

// close flushes pending spans. It runs even when the command failed.
func (c *client) close(ctx context.Context) {
	if c.shutdown == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := c.shutdown(ctx); err != nil {
		c.log.Warn("trace export failed", logger.ErrorFields("shutdown", err))
	}
}

// writeResponse copies the body to the command output. A non-2xx status
// still prints the body and then fails the command.
func (c *client) writeResponse(cmd *cobra.Command, resp *httpclient.Response) error {
	defer func() { _ = resp.Close() }()

	out := cmd.OutOrStdout()
	n, err := io.Copy(out, resp.Body)
	if err != nil {
		return errors.Internal(err)
	}
	if n > 0 {
		_, _ = fmt.Fprintln(out)
	}

	if !resp.IsSuccess() {
		appErr := errors.ExternalServiceError("openai", resp.StatusCode, httpclient.ClassifyStatusCode(resp.StatusCode, nil))
		c.log.Warn("request rejected", logger.Fields(logger.FieldStatus, resp.StatusCode))
		return appErr
	}
	c.log.Debug("response written", logger.Fields("bytes", n))
	return nil
}
