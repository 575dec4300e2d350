package openai

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/kbukum/openaikit/httpclient"
)

// recordingTransport records every request and answers with a fixed response.
type recordingTransport struct {
	mu       sync.Mutex
	requests []*httpclient.Request
	status   int
	body     string
	header   http.Header
	err      error
}

func (r *recordingTransport) Do(_ context.Context, req *httpclient.Request) (*httpclient.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	if r.err != nil {
		return nil, r.err
	}
	status := r.status
	if status == 0 {
		status = http.StatusOK
	}
	header := r.header
	if header == nil {
		header = http.Header{"Content-Type": []string{"application/json"}}
	}
	return &httpclient.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(r.body)),
	}, nil
}

func (r *recordingTransport) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

func (r *recordingTransport) last() *httpclient.Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.requests) == 0 {
		return nil
	}
	return r.requests[len(r.requests)-1]
}
