package openai

import (
	"context"

	"github.com/kbukum/openaikit/httpclient"
)

// ChatCompletionRole is the author of a chat message.
type ChatCompletionRole string

// Chat roles.
const (
	RoleSystem    ChatCompletionRole = "system"
	RoleUser      ChatCompletionRole = "user"
	RoleAssistant ChatCompletionRole = "assistant"
)

// ChatCompletionMessage is a single message in a conversation.
type ChatCompletionMessage struct {
	Role    ChatCompletionRole `json:"role"`
	Content string             `json:"content"`
	Name    string             `json:"name,omitempty"`
}

// CreateChatCompletionRequest is the body of POST /chat/completions.
type CreateChatCompletionRequest struct {
	Model            string                  `json:"model"`
	Messages         []ChatCompletionMessage `json:"messages"`
	Temperature      *float64                `json:"temperature,omitempty"`
	TopP             *float64                `json:"top_p,omitempty"`
	N                *int                    `json:"n,omitempty"`
	Stream           *bool                   `json:"stream,omitempty"`
	Stop             any                     `json:"stop,omitempty"`
	MaxTokens        *int                    `json:"max_tokens,omitempty"`
	PresencePenalty  *float64                `json:"presence_penalty,omitempty"`
	FrequencyPenalty *float64                `json:"frequency_penalty,omitempty"`
	LogitBias        map[string]int          `json:"logit_bias,omitempty"`
	User             string                  `json:"user,omitempty"`
}

// ChatCompletionChoice is one generated reply.
type ChatCompletionChoice struct {
	Index        int                    `json:"index"`
	Message      *ChatCompletionMessage `json:"message,omitempty"`
	FinishReason string                 `json:"finish_reason"`
}

// CreateChatCompletionResponse is the body returned by POST /chat/completions.
type CreateChatCompletionResponse struct {
	ID      string                 `json:"id"`
	Object  string                 `json:"object"`
	Created int64                  `json:"created"`
	Model   string                 `json:"model"`
	Choices []ChatCompletionChoice `json:"choices"`
	Usage   *Usage                 `json:"usage,omitempty"`
}

// CreateChatCompletion creates a model response for the given conversation.
func (a *API) CreateChatCompletion(ctx context.Context, req CreateChatCompletionRequest, opts ...RequestOption) (*httpclient.Response, error) {
	return a.postJSON(ctx, "createChatCompletion", "/chat/completions", req, opts)
}
