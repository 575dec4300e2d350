// Command openai sends completion, chat, image, embedding and moderation
// requests to the OpenAI API and prints the raw response.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/openaikit/cmd/openai/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := app.NewOpenAICommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
