// Package httpclient is the transport boundary used by the openai dispatcher.
//
// A Transport performs one HTTP exchange and hands back the raw Response.
// Non-2xx statuses are not errors at this layer; callers that want typed
// status errors opt in with Response.StatusError.
//
// # Basic Usage
//
//	adapter, err := httpclient.New(httpclient.Config{
//	    Name:    "openai",
//	    Timeout: 60 * time.Second,
//	})
//
//	resp, err := adapter.Do(ctx, &httpclient.Request{
//	    Method:  http.MethodPost,
//	    URL:     "https://api.openai.com/v1/completions",
//	    Headers: map[string]string{"Content-Type": "application/json"},
//	    Body:    payload,
//	})
//	defer resp.Close()
//
// # Multipart Bodies
//
//	form := httpclient.NewFormData()
//	form.Append("purpose", "fine-tune")
//	form.AppendFile(httpclient.FileField{FieldName: "file", FileName: "data.jsonl", Data: b})
//	body, err := form.Encode()
//	headers := form.Headers()
package httpclient
