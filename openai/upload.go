package openai

import (
	"context"
	"net/http"

	"github.com/kbukum/openaikit/errors"
	"github.com/kbukum/openaikit/httpclient"
)

// Upload POSTs form as multipart/form-data to path, relative to the base path.
// The form's own content-type header, with its boundary, always wins.
func (a *API) Upload(ctx context.Context, path string, form *httpclient.FormData, opts ...RequestOption) (*httpclient.Response, error) {
	if a.configuration == nil {
		return nil, errors.ConfigurationMissing(component)
	}
	if form == nil {
		return nil, errors.MissingField("form")
	}

	body, err := form.Encode()
	if err != nil {
		return nil, errors.InvalidInput("form", err.Error()).WithCause(err)
	}

	ro := collect(opts)
	return a.dispatch(ctx, "upload", &httpclient.Request{
		Method:  http.MethodPost,
		URL:     a.url(path),
		Headers: httpclient.MergeHeaders(a.configuration.Headers(), ro.headers, form.Headers()),
		Body:    body,
	})
}
