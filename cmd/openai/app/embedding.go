package app

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/openaikit/openai"
)

// NewEmbeddingCommand creates the embedding command.
func NewEmbeddingCommand(globalOpts *GlobalOptions) *cobra.Command {
	var model string
	var inputs []string

	cmd := &cobra.Command{
		Use:     "embedding",
		Short:   "Create embedding vectors for input text",
		Example: `  openai embedding --model text-embedding-ada-002 -i "first" -i "second"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd.Context(), cmd, globalOpts)
			if err != nil {
				return err
			}
			defer c.close(cmd.Context())
			resp, err := c.api.CreateEmbedding(cmd.Context(), openai.CreateEmbeddingRequest{
				Model: model,
				Input: oneOrMany(inputs),
			})
			if err != nil {
				return err
			}
			return c.writeResponse(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&model, "model", "text-embedding-ada-002", "model id")
	cmd.Flags().StringArrayVarP(&inputs, "input", "i", nil, "input text, repeatable")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// oneOrMany sends a single input as a string and several as an array.
func oneOrMany(inputs []string) any {
	if len(inputs) == 1 {
		return inputs[0]
	}
	return inputs
}
