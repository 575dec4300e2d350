package app

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/openaikit/openai"
)

// NewModerationCommand creates the moderation command.
func NewModerationCommand(globalOpts *GlobalOptions) *cobra.Command {
	var model string
	var inputs []string

	cmd := &cobra.Command{
		Use:     "moderation",
		Short:   "Classify text against the content policy",
		Example: `  openai moderation -i "I want to hurt them."`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd.Context(), cmd, globalOpts)
			if err != nil {
				return err
			}
			defer c.close(cmd.Context())
			resp, err := c.api.CreateModeration(cmd.Context(), openai.CreateModerationRequest{
				Input: oneOrMany(inputs),
				Model: model,
			})
			if err != nil {
				return err
			}
			return c.writeResponse(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "text-moderation-stable or text-moderation-latest")
	cmd.Flags().StringArrayVarP(&inputs, "input", "i", nil, "input text, repeatable")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
