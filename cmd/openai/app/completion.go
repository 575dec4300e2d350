package app

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/openaikit/openai"
)

// CompletionOptions holds the flags of the completion command.
type CompletionOptions struct {
	*GlobalOptions

	Model       string
	Prompt      string
	Suffix      string
	MaxTokens   int
	Temperature float64
	Stream      bool
	Stop        []string
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand(globalOpts *GlobalOptions) *cobra.Command {
	opts := &CompletionOptions{GlobalOptions: globalOpts}

	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Create a completion for a prompt",
		Example: `  openai completion --model text-davinci-003 --prompt "Say this is a test"
  openai completion --prompt "Once upon a time" --max-tokens 64 --stream`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompletion(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Model, "model", "text-davinci-003", "model id")
	cmd.Flags().StringVarP(&opts.Prompt, "prompt", "p", "", "prompt text")
	cmd.Flags().StringVar(&opts.Suffix, "suffix", "", "text that comes after the completion")
	cmd.Flags().IntVar(&opts.MaxTokens, "max-tokens", 0, "maximum tokens to generate")
	cmd.Flags().Float64Var(&opts.Temperature, "temperature", 1, "sampling temperature")
	cmd.Flags().BoolVar(&opts.Stream, "stream", false, "stream partial progress as server-sent events")
	cmd.Flags().StringSliceVar(&opts.Stop, "stop", nil, "stop sequences")
	_ = cmd.MarkFlagRequired("prompt")

	return cmd
}

func runCompletion(cmd *cobra.Command, opts *CompletionOptions) error {
	c, err := newClient(cmd.Context(), cmd, opts.GlobalOptions)
	if err != nil {
		return err
	}
	defer c.close(cmd.Context())

	req := openai.CreateCompletionRequest{
		Model:  opts.Model,
		Prompt: opts.Prompt,
		Suffix: opts.Suffix,
	}
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
	if len(opts.Stop) > 0 {
		req.Stop = opts.Stop
	}

	resp, err := c.api.CreateCompletion(cmd.Context(), req)
	if err != nil {
		return err
	}
	return c.writeResponse(cmd, resp)
}
