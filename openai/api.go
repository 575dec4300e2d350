package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/kbukum/openaikit/errors"
	"github.com/kbukum/openaikit/httpclient"
	"github.com/kbukum/openaikit/logger"
	"github.com/kbukum/openaikit/observability"
	"go.opentelemetry.io/otel/trace"
)

// ErrConfigurationMissing is returned, before any request is made, by every
// operation of an API built without a Configuration. Match it with errors.Is.
var ErrConfigurationMissing = errors.ConfigurationMissing(component)

const component = "openai.API"

// BaseAPI holds what every operation needs to build and send a request.
type BaseAPI struct {
	configuration *Configuration
	basePath      string
	transport     httpclient.Transport
}

// Configuration returns the configuration, or nil if none was supplied.
func (b *BaseAPI) Configuration() *Configuration { return b.configuration }

// BasePath returns the resolved base path without a trailing slash.
func (b *BaseAPI) BasePath() string { return b.basePath }

// API dispatches OpenAI operations. It is safe for concurrent use.
type API struct {
	BaseAPI
	log *logger.Logger
}

// Option configures an API.
type Option func(*apiOptions)

type apiOptions struct {
	transport httpclient.Transport
	basePath  string
	log       *logger.Logger
}

// WithTransport replaces the default net/http transport.
func WithTransport(t httpclient.Transport) Option {
	return func(o *apiOptions) { o.transport = t }
}

// WithBasePath sets the base path used when the Configuration has none.
func WithBasePath(path string) Option {
	return func(o *apiOptions) { o.basePath = path }
}

// WithLogger sets the logger for per-request debug lines.
func WithLogger(l *logger.Logger) Option {
	return func(o *apiOptions) { o.log = l }
}

// New creates an API. A nil cfg is allowed; every operation then fails
// with ErrConfigurationMissing.
func New(cfg *Configuration, opts ...Option) *API {
	var o apiOptions
	for _, opt := range opts {
		opt(&o)
	}

	basePath := o.basePath
	if cfg != nil && cfg.BasePath() != "" {
		basePath = cfg.BasePath()
	}

	transport := o.transport
	if transport == nil {
		transport = defaultTransport(cfg)
	}

	log := o.log
	if log == nil {
		log = logger.Nop()
	}

	return &API{
		BaseAPI: BaseAPI{
			configuration: cfg,
			basePath:      NormalizeBasePath(basePath),
			transport:     transport,
		},
		log: log.WithComponent("openai"),
	}
}

func defaultTransport(cfg *Configuration) httpclient.Transport {
	var timeout time.Duration
	if cfg != nil {
		timeout = max(cfg.baseOptions.Timeout, 0)
	}
	adapter, err := httpclient.New(httpclient.Config{Name: "openai", Timeout: timeout})
	if err != nil {
		return httpclient.NewDefault()
	}
	return adapter
}

// RequestOption overrides request settings for a single call.
type RequestOption func(*requestOptions)

type requestOptions struct {
	headers map[string]string
}

// WithHeader sets a header for one call. It overrides configuration
// headers but not the Content-Type chosen by the operation.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
	}
}

// WithHeaders sets several headers for one call.
func WithHeaders(h map[string]string) RequestOption {
	return func(o *requestOptions) {
		for k, v := range h {
			WithHeader(k, v)(o)
		}
	}
}

func collect(opts []RequestOption) requestOptions {
	var o requestOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (a *API) url(path string) string {
	return a.basePath + "/" + strings.TrimLeft(path, "/")
}

// postJSON serializes body and POSTs it to path.
func (a *API) postJSON(ctx context.Context, op, path string, body any, opts []RequestOption) (*httpclient.Response, error) {
	if a.configuration == nil {
		return nil, errors.ConfigurationMissing(component)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.InvalidInput("body", err.Error()).WithCause(err)
	}

	ro := collect(opts)
	return a.dispatch(ctx, op, &httpclient.Request{
		Method: http.MethodPost,
		URL:    a.url(path),
		Headers: httpclient.MergeHeaders(
			a.configuration.Headers(),
			ro.headers,
			map[string]string{"Content-Type": "application/json"},
		),
		Body: payload,
	})
}

// dispatch sends req inside an "openai.<op>" client span and returns the
// transport's result unchanged.
func (a *API) dispatch(ctx context.Context, op string, req *httpclient.Request) (*httpclient.Response, error) {
	ctx, span := observability.StartSpan(ctx, "openai."+op, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrOperationName, op)
	observability.SetSpanAttribute(ctx, observability.AttrHTTPMethod, req.Method)
	observability.SetSpanAttribute(ctx, observability.AttrURL, req.URL)

	start := time.Now()
	resp, err := a.transport.Do(ctx, req)

	fields := logger.DurationFields(op, time.Since(start))
	fields[logger.FieldURL] = req.URL
	if err != nil {
		observability.SetSpanError(ctx, err)
		a.log.WithError(err).Debug("request failed", fields)
		return nil, err
	}
	observability.SetSpanAttribute(ctx, observability.AttrStatusCode, resp.StatusCode)
	fields[logger.FieldStatus] = resp.StatusCode
	a.log.Debug("request sent", fields)
	return resp, nil
}
