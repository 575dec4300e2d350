package openai

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/kbukum/openaikit/errors"
	"github.com/kbukum/openaikit/httpclient"
	"github.com/kbukum/openaikit/logger"
)

func newTestAPI(spy *recordingTransport, params Parameters, opts ...Option) *API {
	return New(NewConfiguration(params), append([]Option{WithTransport(spy)}, opts...)...)
}

func TestAPI_NoConfiguration(t *testing.T) {
	spy := &recordingTransport{}
	api := New(nil, WithTransport(spy))
	ctx := context.Background()

	calls := map[string]func() (*httpclient.Response, error){
		"completion": func() (*httpclient.Response, error) {
			return api.CreateCompletion(ctx, CreateCompletionRequest{Model: "x"})
		},
		"chat": func() (*httpclient.Response, error) {
			return api.CreateChatCompletion(ctx, CreateChatCompletionRequest{Model: "x"})
		},
		"image": func() (*httpclient.Response, error) {
			return api.CreateImage(ctx, CreateImageRequest{Prompt: "x"})
		},
		"embedding": func() (*httpclient.Response, error) {
			return api.CreateEmbedding(ctx, CreateEmbeddingRequest{Model: "x", Input: "y"})
		},
		"moderation": func() (*httpclient.Response, error) {
			return api.CreateModeration(ctx, CreateModerationRequest{Input: "y"})
		},
		"upload": func() (*httpclient.Response, error) {
			return api.Upload(ctx, "/files", httpclient.NewFormData())
		},
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			resp, err := call()
			if resp != nil {
				t.Error("expected nil response")
			}
			if !stderrors.Is(err, ErrConfigurationMissing) {
				t.Fatalf("expected ErrConfigurationMissing, got %v", err)
			}
		})
	}
	if spy.calls() != 0 {
		t.Errorf("transport called %d times, want 0", spy.calls())
	}
}

func TestAPI_CreateCompletion_Request(t *testing.T) {
	spy := &recordingTransport{body: `{"id":"cmpl-1"}`}
	api := newTestAPI(spy, Parameters{APIKey: "sk-test"})

	resp, err := api.CreateCompletion(context.Background(), CreateCompletionRequest{Model: "x", Prompt: "y"})
	if err != nil {
		t.Fatalf("CreateCompletion() error: %v", err)
	}
	defer func() { _ = resp.Close() }()

	if spy.calls() != 1 {
		t.Fatalf("transport called %d times, want 1", spy.calls())
	}
	req := spy.last()
	if req.Method != http.MethodPost {
		t.Errorf("method = %q, want POST", req.Method)
	}
	if !strings.HasSuffix(req.URL, "/v1/completions") {
		t.Errorf("url = %q, want suffix /v1/completions", req.URL)
	}
	if req.URL != "https://api.openai.com/v1/completions" {
		t.Errorf("url = %q", req.URL)
	}
	if got := req.Header("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := req.Header("Authorization"); got != "Bearer sk-test" {
		t.Errorf("Authorization = %q", got)
	}

	var body map[string]any
	if err := json.Unmarshal(req.Body, &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if len(body) != 2 || body["model"] != "x" || body["prompt"] != "y" {
		t.Errorf("body = %v, want {model:x prompt:y}", body)
	}
}

func TestAPI_Operations_Paths(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		path string
		call func(*API) (*httpclient.Response, error)
	}{
		{"completion", "/completions", func(a *API) (*httpclient.Response, error) {
			return a.CreateCompletion(ctx, CreateCompletionRequest{Model: "m"})
		}},
		{"chat", "/chat/completions", func(a *API) (*httpclient.Response, error) {
			return a.CreateChatCompletion(ctx, CreateChatCompletionRequest{
				Model:    "gpt-3.5-turbo",
				Messages: []ChatCompletionMessage{{Role: RoleUser, Content: "hi"}},
			})
		}},
		{"image", "/images/generations", func(a *API) (*httpclient.Response, error) {
			return a.CreateImage(ctx, CreateImageRequest{Prompt: "cat", Size: ImageSize256, ResponseFormat: ImageFormatB64JSON})
		}},
		{"embedding", "/embeddings", func(a *API) (*httpclient.Response, error) {
			return a.CreateEmbedding(ctx, CreateEmbeddingRequest{Model: "m", Input: []string{"a", "b"}})
		}},
		{"moderation", "/moderations", func(a *API) (*httpclient.Response, error) {
			return a.CreateModeration(ctx, CreateModerationRequest{Input: "text"})
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spy := &recordingTransport{}
			api := newTestAPI(spy, Parameters{APIKey: "sk", BasePath: "http://localhost:9999/v1/"})
			resp, err := tc.call(api)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			_ = resp.Close()

			req := spy.last()
			if want := "http://localhost:9999/v1" + tc.path; req.URL != want {
				t.Errorf("url = %q, want %q", req.URL, want)
			}
			if req.Method != http.MethodPost {
				t.Errorf("method = %q", req.Method)
			}
		})
	}
}

func TestAPI_RequestBodies(t *testing.T) {
	spy := &recordingTransport{}
	api := newTestAPI(spy, Parameters{APIKey: "sk"})
	ctx := context.Background()

	_, _ = api.CreateChatCompletion(ctx, CreateChatCompletionRequest{
		Model:       "gpt-3.5-turbo",
		Messages:    []ChatCompletionMessage{{Role: RoleSystem, Content: "be brief"}, {Role: RoleUser, Content: "hi", Name: "bob"}},
		Temperature: Ptr(0.0),
		Stream:      Ptr(true),
		LogitBias:   map[string]int{"50256": -100},
	})
	want := `{"model":"gpt-3.5-turbo","messages":[{"role":"system","content":"be brief"},{"role":"user","content":"hi","name":"bob"}],"temperature":0,"stream":true,"logit_bias":{"50256":-100}}`
	if got := string(spy.last().Body); got != want {
		t.Errorf("chat body:\n got %s\nwant %s", got, want)
	}

	_, _ = api.CreateImage(ctx, CreateImageRequest{Prompt: "cat", N: Ptr(2), Size: ImageSize1024})
	want = `{"prompt":"cat","n":2,"size":"1024x1024"}`
	if got := string(spy.last().Body); got != want {
		t.Errorf("image body:\n got %s\nwant %s", got, want)
	}

	_, _ = api.CreateModeration(ctx, CreateModerationRequest{Input: []string{"a", "b"}})
	want = `{"input":["a","b"]}`
	if got := string(spy.last().Body); got != want {
		t.Errorf("moderation body:\n got %s\nwant %s", got, want)
	}
}

func TestAPI_HeaderPrecedence(t *testing.T) {
	spy := &recordingTransport{}
	api := newTestAPI(spy, Parameters{
		APIKey:       "sk",
		Organization: "org-1",
		BaseOptions:  BaseOptions{Headers: map[string]string{"X-Custom": "1", "X-Override": "config"}},
	})

	_, err := api.CreateCompletion(context.Background(), CreateCompletionRequest{Model: "m"},
		WithHeader("x-override", "call"),
		WithHeaders(map[string]string{"content-type": "text/plain", "X-Trace": "t"}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := spy.last()
	checks := map[string]string{
		"Authorization":       "Bearer sk",
		"OpenAI-Organization": "org-1",
		"X-Custom":            "1",
		"X-Override":          "call",
		"X-Trace":             "t",
		"Content-Type":        "application/json",
	}
	for k, v := range checks {
		if got := req.Header(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
	if len(req.Headers) != len(checks) {
		t.Errorf("headers = %v, want %d entries", req.Headers, len(checks))
	}
}

func TestAPI_BasePathPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		cfgPath   string
		optPath   string
		wantPrefx string
	}{
		{"default", "", "", DefaultBasePath},
		{"option", "", "http://opt/v1/", "http://opt/v1"},
		{"configuration wins", "http://cfg/v1", "http://opt/v1", "http://cfg/v1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			api := New(NewConfiguration(Parameters{BasePath: tc.cfgPath}), WithBasePath(tc.optPath))
			if api.BasePath() != tc.wantPrefx {
				t.Errorf("BasePath() = %q, want %q", api.BasePath(), tc.wantPrefx)
			}
		})
	}
}

func TestAPI_TransportErrorPropagates(t *testing.T) {
	boom := httpclient.NewConnectionError(stderrors.New("refused"))
	spy := &recordingTransport{err: boom}
	api := newTestAPI(spy, Parameters{APIKey: "sk"})

	resp, err := api.CreateImage(context.Background(), CreateImageRequest{Prompt: "x"})
	if resp != nil {
		t.Error("expected nil response")
	}
	if err != boom {
		t.Errorf("error should propagate unchanged, got %v", err)
	}
}

func TestAPI_NonSuccessReturned(t *testing.T) {
	spy := &recordingTransport{status: http.StatusTooManyRequests, body: `{"error":{"message":"slow down"}}`}
	api := newTestAPI(spy, Parameters{APIKey: "sk"})

	resp, err := api.CreateCompletion(context.Background(), CreateCompletionRequest{Model: "m"})
	if err != nil {
		t.Fatalf("non-2xx must not be an error, got %v", err)
	}
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Errorf("status = %d", resp.StatusCode)
	}
	b, _ := resp.Bytes()
	if string(b) != `{"error":{"message":"slow down"}}` {
		t.Errorf("body = %q", b)
	}
}

func TestAPI_UnencodableBody(t *testing.T) {
	spy := &recordingTransport{}
	api := newTestAPI(spy, Parameters{APIKey: "sk"})

	_, err := api.CreateCompletion(context.Background(), CreateCompletionRequest{Model: "m", Prompt: make(chan int)})
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeInvalidInput {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}
	if spy.calls() != 0 {
		t.Error("transport must not be called")
	}
}

func TestAPI_DebugLog(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "test", &buf)
	spy := &recordingTransport{status: http.StatusCreated}
	api := newTestAPI(spy, Parameters{APIKey: "sk"}, WithLogger(log))

	_, _ = api.CreateEmbedding(context.Background(), CreateEmbeddingRequest{Model: "m", Input: "x"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON %q: %v", buf.String(), err)
	}
	if entry[logger.FieldOperation] != "createEmbedding" {
		t.Errorf("operation = %v", entry[logger.FieldOperation])
	}
	if entry[logger.FieldStatus] != float64(http.StatusCreated) {
		t.Errorf("status = %v", entry[logger.FieldStatus])
	}
	if entry[logger.FieldComponent] != "openai" {
		t.Errorf("component = %v", entry[logger.FieldComponent])
	}
	if entry[logger.FieldURL] != DefaultBasePath+"/embeddings" {
		t.Errorf("url = %v", entry[logger.FieldURL])
	}
}

func TestAPI_Upload(t *testing.T) {
	spy := &recordingTransport{}
	api := newTestAPI(spy, Parameters{APIKey: "sk"})

	form := api.Configuration().NewFormData()
	form.Append("purpose", "fine-tune")
	form.AppendFile(httpclient.FileField{FieldName: "file", FileName: "train.jsonl", Data: []byte(`{"prompt":"a"}`)})

	_, err := api.Upload(context.Background(), "files", form, WithHeader("Content-Type", "application/json"))
	if err != nil {
		t.Fatalf("Upload() error: %v", err)
	}

	req := spy.last()
	if req.URL != DefaultBasePath+"/files" {
		t.Errorf("url = %q", req.URL)
	}
	ct := req.Header("Content-Type")
	mediaType, params, err := mime.ParseMediaType(ct)
	if err != nil || mediaType != "multipart/form-data" {
		t.Fatalf("content-type = %q", ct)
	}
	if params["boundary"] != form.Boundary() {
		t.Errorf("boundary = %q, want %q", params["boundary"], form.Boundary())
	}
	if req.Header("Authorization") != "Bearer sk" {
		t.Errorf("Authorization = %q", req.Header("Authorization"))
	}

	mr := multipart.NewReader(bytes.NewReader(req.Body), params["boundary"])
	part, err := mr.NextPart()
	if err != nil {
		t.Fatalf("NextPart error: %v", err)
	}
	if part.FormName() != "purpose" {
		t.Errorf("first part = %q", part.FormName())
	}
}

func TestAPI_UploadNilForm(t *testing.T) {
	spy := &recordingTransport{}
	api := newTestAPI(spy, Parameters{APIKey: "sk"})
	_, err := api.Upload(context.Background(), "/files", nil)
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeMissingField {
		t.Fatalf("expected MISSING_FIELD, got %v", err)
	}
}

func TestAPI_DefaultTransport_EndToEnd(t *testing.T) {
	var gotAuth, gotPath, gotStream string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if v, ok := body["stream"].(bool); ok && v {
			gotStream = "true"
		}
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = io.WriteString(w, "data: {\"choices\":[]}\n\ndata: [DONE]\n\n")
	}))
	defer srv.Close()

	api := New(NewConfiguration(Parameters{APIKey: "sk-e2e", BasePath: srv.URL + "/v1"}))
	resp, err := api.CreateCompletion(context.Background(), CreateCompletionRequest{Model: "m", Prompt: "p", Stream: Ptr(true)})
	if err != nil {
		t.Fatalf("CreateCompletion() error: %v", err)
	}
	b, err := resp.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error: %v", err)
	}

	if gotAuth != "Bearer sk-e2e" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotPath != "/v1/completions" {
		t.Errorf("path = %q", gotPath)
	}
	if gotStream != "true" {
		t.Error("stream flag should be sent as-is")
	}
	if !strings.Contains(string(b), "[DONE]") {
		t.Errorf("stream body should be returned unmodified, got %q", b)
	}
	if resp.ContentType() != "text/event-stream" {
		t.Errorf("content type = %q", resp.ContentType())
	}
}

func TestAPI_ConcurrentDispatch(t *testing.T) {
	const workers = 50
	spy := &recordingTransport{}
	api := newTestAPI(spy, Parameters{APIKey: "sk", Organization: "org-1"})

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := api.CreateCompletion(context.Background(), CreateCompletionRequest{
				Model:  "m",
				Prompt: fmt.Sprintf("prompt-%d", i),
			}, WithHeader("X-Worker", fmt.Sprint(i)))
			if err != nil {
				errs <- err
				return
			}
			_ = resp.Close()
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("unexpected error: %v", err)
	}

	if spy.calls() != workers {
		t.Fatalf("expected %d transport calls, got %d", workers, spy.calls())
	}
	seen := make(map[string]bool, workers)
	for _, req := range spy.requests {
		var body map[string]any
		if err := json.Unmarshal(req.Body, &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		prompt, _ := body["prompt"].(string)
		if want := "prompt-" + req.Header("X-Worker"); prompt != want {
			t.Errorf("prompt %q sent with header of worker %q", prompt, req.Header("X-Worker"))
		}
		seen[prompt] = true
		if req.Header("Authorization") != "Bearer sk" || req.Header("OpenAI-Organization") != "org-1" {
			t.Errorf("headers = %v", req.Headers)
		}
	}
	if len(seen) != workers {
		t.Errorf("expected %d distinct prompts, got %d", workers, len(seen))
	}
	if h := api.Configuration().Headers(); len(h) != 2 {
		t.Errorf("configuration headers changed: %v", h)
	}
}
