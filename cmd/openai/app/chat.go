package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/openaikit/errors"
	"github.com/kbukum/openaikit/openai"
)

// ChatOptions holds the flags of the chat command.
type ChatOptions struct {
	*GlobalOptions

	Model       string
	Messages    []string
	MaxTokens   int
	Temperature float64
	Stream      bool
}

// NewChatCommand creates the chat command.
func NewChatCommand(globalOpts *GlobalOptions) *cobra.Command {
	opts := &ChatOptions{GlobalOptions: globalOpts}

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Create a chat completion for a conversation",
		Example: `  openai chat -m "system:You are terse." -m "user:Hello!"
  openai chat --model gpt-3.5-turbo -m "user:Tell me a joke" --stream`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Model, "model", "gpt-3.5-turbo", "model id")
	cmd.Flags().StringArrayVarP(&opts.Messages, "message", "m", nil, "message as role:content, repeatable")
	cmd.Flags().IntVar(&opts.MaxTokens, "max-tokens", 0, "maximum tokens to generate")
	cmd.Flags().Float64Var(&opts.Temperature, "temperature", 1, "sampling temperature")
	cmd.Flags().BoolVar(&opts.Stream, "stream", false, "stream partial progress as server-sent events")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

// parseMessage splits "role:content". The role is not checked against
// the known roles; the API decides.
func parseMessage(s string) (openai.ChatCompletionMessage, error) {
	role, content, ok := strings.Cut(s, ":")
	role = strings.TrimSpace(role)
	if !ok || role == "" {
		return openai.ChatCompletionMessage{}, errors.InvalidInput("message", fmt.Sprintf("%q is not role:content", s))
	}
	return openai.ChatCompletionMessage{Role: openai.ChatCompletionRole(role), Content: content}, nil
}

func runChat(cmd *cobra.Command, opts *ChatOptions) error {
	messages := make([]openai.ChatCompletionMessage, 0, len(opts.Messages))
	for _, m := range opts.Messages {
		msg, err := parseMessage(m)
		if err != nil {
			return err
		}
		messages = append(messages, msg)
	}

	c, err := newClient(cmd.Context(), cmd, opts.GlobalOptions)
	if err != nil {
		return err
	}
	defer c.close(cmd.Context())

	req := openai.CreateChatCompletionRequest{Model: opts.Model, Messages: messages}
	flags := cmd.Flags()
	if flags.Changed("max-tokens") {
		req.MaxTokens = openai.Ptr(opts.MaxTokens)
	}
	if flags.Changed("temperature") {
		req.Temperature = openai.Ptr(opts.Temperature)
	}
	if flags.Changed("stream") {
		req.Stream = openai.Ptr(opts.Stream)
	}

	resp, err := c.api.CreateChatCompletion(cmd.Context(), req)
	if err != nil {
		return err
	}
	return c.writeResponse(cmd, resp)
}
