// Package weft provides a thin, schema-first agent abstraction over
// chat-completion language models.
//
// An agent in weft is deliberately small: it keeps an ordered conversational
// memory, renders a system prompt from pluggable context providers, and asks
// a completion backend for a response that conforms to a declared JSON
// schema. There is no tool loop, no streaming, and no retry policy in the
// core — those belong to the surrounding layers.
//
// # Core pieces
//
//   - [Message]: one turn-tagged entry in a conversation (role + JSON payload)
//   - [ResponseSchema]: the declared shape of a request or response payload
//   - [CompletionProvider]: the external capability that turns a message
//     history plus a target schema into conforming JSON
//   - [github.com/loomlight/weft/memory]: the append-only turn log
//   - [github.com/loomlight/weft/prompt]: system prompt composition
//   - [github.com/loomlight/weft/agent]: the turn orchestrator
//
// # Basic usage
//
// Build a provider, construct an agent, run a turn:
//
//	client := openai.New(os.Getenv("OPENAI_API_KEY"))
//
//	a, err := agent.New[weft.ChatInput, weft.ChatOutput](agent.Config{
//	    Client: client,
//	    Model:  "gpt-4o-mini",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := a.Run(ctx, &weft.ChatInput{ChatMessage: "Hello!"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out.ChatMessage)
//
// # Custom shapes
//
// Any struct with json tags is a shape. Use desc tags for field
// descriptions and required tags to mark mandatory fields:
//
//	type RecipeOutput struct {
//	    Title string   `json:"title" desc:"Name of the dish" required:"true"`
//	    Steps []string `json:"steps" desc:"Preparation steps in order" required:"true"`
//	}
//
//	a, err := agent.New[RecipeInput, RecipeOutput](agent.Config{
//	    Client: client,
//	    Model:  "gpt-4o-mini",
//	})
//
// The schema is derived by reflection once at construction time, sent with
// every completion request, and every response is validated against it
// before it reaches the caller or the memory log.
//
// # Context providers
//
// Context providers inject dynamic text into the rendered system prompt:
//
//	a.RegisterContextProvider("current_date", datectx)
//
//	// Later, between sessions:
//	a.ResetMemory()
//
// Providers render in registration order, so prompts are deterministic for
// a fixed set of providers and fragment outputs.
package weft
