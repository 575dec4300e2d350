package httpclient

import (
	"context"
	"io"
	"mime"
	"net/http"
)

// Transport performs a single HTTP exchange.
// Implementations must not treat non-2xx statuses as errors.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// TransportFunc adapts a plain function to the Transport interface.
type TransportFunc func(ctx context.Context, req *Request) (*Response, error)

// Do calls f(ctx, req).
func (f TransportFunc) Do(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// Request describes an outbound HTTP request.
type Request struct {
	// Method is the HTTP method.
	Method string
	// URL is the absolute request URL.
	URL string
	// Headers are request headers. They override transport defaults.
	Headers map[string]string
	// Body is the encoded request body. Nil sends no body.
	Body []byte
}

// Header returns the value of the named header, matched case-insensitively.
func (r *Request) Header(name string) string {
	for k, v := range r.Headers {
		if http.CanonicalHeaderKey(k) == http.CanonicalHeaderKey(name) {
			return v
		}
	}
	return ""
}

// Response is the raw result of an HTTP exchange.
// The caller owns Body and must close it.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Header holds the response headers.
	Header http.Header
	// Body is the unread response body.
	Body io.ReadCloser
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// ContentType returns the media type of the response without parameters.
func (r *Response) ContentType() string {
	if r.Header == nil {
		return ""
	}
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ct
	}
	return mediaType
}

// Bytes reads the remaining body and closes it.
func (r *Response) Bytes() ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	defer func() { _ = r.Body.Close() }()
	return io.ReadAll(r.Body)
}

// Close releases the response body.
func (r *Response) Close() error {
	if r.Body == nil {
		return nil
	}
	return r.Body.Close()
}

// StatusError classifies a non-2xx response into a typed *Error.
// It consumes and closes the body when the status is not 2xx, and
// returns nil without touching the body otherwise.
func (r *Response) StatusError() error {
	if r.IsSuccess() {
		return nil
	}
	body, _ := r.Bytes()
	if e := ClassifyStatusCode(r.StatusCode, body); e != nil {
		return e
	}
	return nil
}
