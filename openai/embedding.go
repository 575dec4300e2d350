package openai

import (
	"context"

	"github.com/kbukum/openaikit/httpclient"
)

// CreateEmbeddingRequest is the body of POST /embeddings.
// Input accepts a string, []string, []int or [][]int.
type CreateEmbeddingRequest struct {
	Model string `json:"model"`
	Input any    `json:"input"`
	User  string `json:"user,omitempty"`
}

// Embedding is the vector for one input.
type Embedding struct {
	Index     int       `json:"index"`
	Object    string    `json:"object"`
	Embedding []float64 `json:"embedding"`
}

// EmbeddingUsage reports token consumption for an embedding call.
type EmbeddingUsage struct {
	PromptTokens int `json:"prompt_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// CreateEmbeddingResponse is the body returned by POST /embeddings.
type CreateEmbeddingResponse struct {
	Object string         `json:"object"`
	Model  string         `json:"model"`
	Data   []Embedding    `json:"data"`
	Usage  EmbeddingUsage `json:"usage"`
}

// CreateEmbedding creates an embedding vector for the input.
func (a *API) CreateEmbedding(ctx context.Context, req CreateEmbeddingRequest, opts ...RequestOption) (*httpclient.Response, error) {
	return a.postJSON(ctx, "createEmbedding", "/embeddings", req, opts)
}
