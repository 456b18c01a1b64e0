// Package anthropic provides a Claude-backed weft.CompletionProvider.
//
// This package wraps the official Anthropic Go SDK. Claude has no native
// JSON-schema response format, so structured output is enforced with a
// synthetic tool: the declared response schema becomes the tool's input
// schema, the request forces that tool, and the tool-use input block is
// returned as the response payload.
//
// # Basic Usage
//
//	client := anthropic.New(os.Getenv("ANTHROPIC_API_KEY"))
//
//	a, err := agent.New[weft.ChatInput, weft.ChatOutput](agent.Config{
//	    Client: client,
//	    Model:  "claude-sonnet-4-5",
//	})
//
// # Token Limits
//
// The Anthropic API requires max_tokens on every request. When the agent
// sets no limit, the client sends 4096.
//
// # Errors
//
// API failures are categorized the same way as the other providers: 429 and
// 5xx transient, 401/403 permanent, 400/404/422 user-input.
package anthropic
