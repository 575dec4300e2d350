package app

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/openaikit/openai"
)

// ImageOptions holds the flags of the image command.
type ImageOptions struct {
	*GlobalOptions

	Prompt         string
	N              int
	Size           string
	ResponseFormat string
}

// NewImageCommand creates the image command.
func NewImageCommand(globalOpts *GlobalOptions) *cobra.Command {
	opts := &ImageOptions{GlobalOptions: globalOpts}

	cmd := &cobra.Command{
		Use:     "image",
		Short:   "Create images from a prompt",
		Example: `  openai image --prompt "a white siamese cat" --size 512x512 --response-format b64_json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd.Context(), cmd, opts.GlobalOptions)
			if err != nil {
				return err
			}
			defer c.close(cmd.Context())

			req := openai.CreateImageRequest{
				Prompt:         opts.Prompt,
				Size:           openai.ImageSize(opts.Size),
				ResponseFormat: openai.ImageResponseFormat(opts.ResponseFormat),
			}
			if cmd.Flags().Changed("n") {
				req.N = openai.Ptr(opts.N)
			}

			resp, err := c.api.CreateImage(cmd.Context(), req)
			if err != nil {
				return err
			}
			return c.writeResponse(cmd, resp)
		},
	}

	cmd.Flags().StringVarP(&opts.Prompt, "prompt", "p", "", "description of the desired image")
	cmd.Flags().IntVar(&opts.N, "n", 1, "number of images")
	cmd.Flags().StringVar(&opts.Size, "size", "", "256x256, 512x512 or 1024x1024")
	cmd.Flags().StringVar(&opts.ResponseFormat, "response-format", "", "url or b64_json")
	_ = cmd.MarkFlagRequired("prompt")

	return cmd
}
