// Package openai is a client for the OpenAI completion, chat, image,
// embedding and moderation endpoints.
//
// A Configuration carries credentials and the headers derived from them. An
// API dispatches one POST per operation through an httpclient.Transport and
// returns the raw response; decoding is left to the caller, optionally via
// DecodeResponse.
//
//	cfg := openai.NewConfiguration(openai.Parameters{APIKey: os.Getenv("OPENAI_API_KEY")})
//	api := openai.New(cfg)
//
//	resp, err := api.CreateCompletion(ctx, openai.CreateCompletionRequest{
//	    Model:  "text-davinci-003",
//	    Prompt: "Say this is a test",
//	})
//	if err != nil {
//	    return err
//	}
//	out, err := openai.DecodeResponse[openai.CreateCompletionResponse](resp)
//
// Deferred credentials are resolved once, up front:
//
//	cfg, err := openai.ResolveConfiguration(ctx, openai.ResolverCredential(vault.Lookup), params)
package openai
