package openai

import (
	"maps"
	"strings"
	"time"

	"github.com/kbukum/openaikit/httpclient"
)

// DefaultBasePath is used when neither the Configuration nor the API
// options name a base path.
const DefaultBasePath = "https://api.openai.com/v1"

// OrganizationHeader carries the organization id.
const OrganizationHeader = "OpenAI-Organization"

// BaseOptions are defaults applied to every request.
type BaseOptions struct {
	// Headers are sent with every request. Computed auth headers win on conflict.
	Headers map[string]string `json:"headers,omitempty" yaml:"headers" mapstructure:"headers"`
	// Timeout bounds each exchange on the default transport. Zero means none.
	Timeout time.Duration `json:"timeout,omitempty" yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`
}

// Parameters are the recognized Configuration options.
type Parameters struct {
	APIKey       string      `json:"api_key,omitempty" yaml:"api_key" mapstructure:"api_key"`
	Organization string      `json:"organization,omitempty" yaml:"organization" mapstructure:"organization"`
	Username     string      `json:"username,omitempty" yaml:"username" mapstructure:"username"`
	Password     string      `json:"password,omitempty" yaml:"password" mapstructure:"password"`
	AccessToken  string      `json:"access_token,omitempty" yaml:"access_token" mapstructure:"access_token"`
	BasePath     string      `json:"base_path,omitempty" yaml:"base_path" mapstructure:"base_path" validate:"omitempty,http_url"`
	BaseOptions  BaseOptions `json:"base_options" yaml:"base_options" mapstructure:"base_options"`

	// FormDataCtor overrides how multipart bodies are created.
	FormDataCtor func() *httpclient.FormData `json:"-" yaml:"-" mapstructure:"-"`
}

// Configuration holds credentials and the request headers derived from
// them. It is immutable once built and safe for concurrent use.
type Configuration struct {
	apiKey       string
	organization string
	username     string
	password     string
	accessToken  string
	basePath     string
	baseOptions  BaseOptions
	formDataCtor func() *httpclient.FormData
}

// NewConfiguration builds a Configuration. Headers are computed once here:
// caller headers are kept, Authorization is set from the first of APIKey,
// AccessToken or Username/Password that is present, and OpenAI-Organization
// is added when an organization id is given.
func NewConfiguration(p Parameters) *Configuration {
	c := &Configuration{
		apiKey:       p.APIKey,
		organization: p.Organization,
		username:     p.Username,
		password:     p.Password,
		accessToken:  p.AccessToken,
		basePath:     p.BasePath,
		formDataCtor: p.FormDataCtor,
		baseOptions: BaseOptions{
			Timeout: p.BaseOptions.Timeout,
		},
	}

	headers := maps.Clone(p.BaseOptions.Headers)
	if headers == nil {
		headers = make(map[string]string)
	}
	headers = c.auth().Apply(headers)
	if c.organization != "" {
		headers = httpclient.MergeHeaders(headers, map[string]string{OrganizationHeader: c.organization})
	}
	c.baseOptions.Headers = headers

	return c
}

func (c *Configuration) auth() *httpclient.AuthConfig {
	switch {
	case c.apiKey != "":
		return httpclient.BearerAuth(c.apiKey)
	case c.accessToken != "":
		return httpclient.BearerAuth(c.accessToken)
	case c.username != "":
		return httpclient.BasicAuth(c.username, c.password)
	default:
		return nil
	}
}

// APIKey returns the API key.
func (c *Configuration) APIKey() string { return c.apiKey }

// Organization returns the organization id.
func (c *Configuration) Organization() string { return c.organization }

// Username returns the basic auth username.
func (c *Configuration) Username() string { return c.username }

// Password returns the basic auth password.
func (c *Configuration) Password() string { return c.password }

// AccessToken returns the OAuth2 access token.
func (c *Configuration) AccessToken() string { return c.accessToken }

// BasePath returns the base path exactly as supplied, possibly empty.
func (c *Configuration) BasePath() string { return c.basePath }

// BaseOptions returns a copy of the base options.
func (c *Configuration) BaseOptions() BaseOptions {
	return BaseOptions{Headers: c.Headers(), Timeout: c.baseOptions.Timeout}
}

// Headers returns a copy of the headers sent with every request.
func (c *Configuration) Headers() map[string]string {
	return maps.Clone(c.baseOptions.Headers)
}

// NewFormData returns a fresh multipart form.
func (c *Configuration) NewFormData() *httpclient.FormData {
	if c.formDataCtor != nil {
		return c.formDataCtor()
	}
	return httpclient.NewFormData()
}

// IsJSONMime reports whether mime denotes a JSON payload.
func (c *Configuration) IsJSONMime(mime string) bool {
	return IsJSONMime(mime)
}

// NormalizeBasePath trims surrounding space and trailing slashes. An empty
// result yields DefaultBasePath.
func NormalizeBasePath(s string) string {
	s = strings.TrimRight(strings.TrimSpace(s), "/")
	if s == "" {
		return DefaultBasePath
	}
	return s
}
