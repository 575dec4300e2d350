package openai

import (
	"encoding/json"

	"github.com/kbukum/openaikit/errors"
	"github.com/kbukum/openaikit/httpclient"
)

// DecodeResponse closes resp and decodes its JSON body into T.
// A non-2xx status yields the *httpclient.Error from resp.StatusError.
// A body whose Content-Type is set but not JSON yields INVALID_FORMAT.
func DecodeResponse[T any](resp *httpclient.Response) (T, error) {
	var out T
	if resp == nil {
		return out, errors.MissingField("response")
	}
	defer func() { _ = resp.Close() }()

	if err := resp.StatusError(); err != nil {
		return out, err
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" && !IsJSONMime(ct) {
		return out, errors.InvalidFormat("content-type", "application/json")
	}
	if resp.Body == nil {
		return out, errors.MissingField("body")
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, errors.InvalidInput("body", err.Error()).WithCause(err)
	}
	return out, nil
}
