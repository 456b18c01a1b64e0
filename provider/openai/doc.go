// Package openai provides an OpenAI-backed weft.CompletionProvider.
//
// This package wraps the official OpenAI Go SDK. Structured output uses the
// json_schema response format with strict mode, so the model is constrained
// to the output shape declared by the agent.
//
// # Basic Usage
//
//	client := openai.New(os.Getenv("OPENAI_API_KEY"))
//
//	a, err := agent.New[weft.ChatInput, weft.ChatOutput](agent.Config{
//	    Client: client,
//	    Model:  "gpt-4o-mini",
//	})
//
// # Azure OpenAI
//
// Azure deployments use the same client with Azure request options. The model
// sent with each request is the deployment name:
//
//	client := openai.NewAzure(
//	    os.Getenv("AZURE_OPENAI_ENDPOINT"),
//	    "2023-05-15",
//	    os.Getenv("AZURE_API_KEY"),
//	)
//
// # Compatible Endpoints
//
// Local inference servers and proxies that speak the OpenAI API are reached
// with WithBaseURL:
//
//	client := openai.New(apiKey, openai.WithBaseURL("http://localhost:11434/v1"))
//
// # Errors
//
// API failures are categorized: 429 and 5xx become transient errors (with
// Retry-After extracted when present), 401/403 permanent, 400/404/422
// user-input. Inspect them with weft.IsTransient and friends.
package openai
