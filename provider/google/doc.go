// Package google provides a Gemini-backed weft.CompletionProvider.
//
// This package wraps the official Google GenAI Go SDK. Structured output
// uses the native response schema support: the declared shape is converted
// to a genai.Schema and the response MIME type is pinned to
// application/json.
//
// # Basic Usage
//
//	client, err := google.New(ctx, os.Getenv("GEMINI_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	a, err := agent.New[weft.ChatInput, weft.ChatOutput](agent.Config{
//	    Client: client,
//	    Model:  "gemini-2.5-flash",
//	})
//
// # Roles
//
// Gemini models only know the user and model roles. System prompts are sent
// as user content at their position in the message sequence.
//
// # Errors
//
// API failures are categorized the same way as the other providers: 429 and
// 5xx transient, 401/403 permanent, 400/404/422 user-input. The GenAI SDK
// does not surface Retry-After headers.
package google
