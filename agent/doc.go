// Package agent provides the turn orchestrator at the center of weft.
//
// An [Agent] ties together a conversation [github.com/loomlight/weft/memory.Memory],
// a [github.com/loomlight/weft/prompt.Generator], and a
// [github.com/loomlight/weft.CompletionProvider]. Each Run call executes one
// conversational turn: record the typed input, render the system prompt,
// submit the full message sequence with the declared output shape, validate
// the response, record it, return it.
//
// # Basic usage
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
//
// # Custom shapes and prompts
//
//	type QueryInput struct {
//	    Instruction string `json:"instruction" desc:"What to search for" required:"true"`
//	    NumQueries  int    `json:"num_queries" desc:"How many queries to produce" required:"true"`
//	}
//
//	type QueryOutput struct {
//	    Queries []string `json:"queries" desc:"The generated search queries" required:"true"`
//	}
//
//	a, err := agent.New[QueryInput, QueryOutput](agent.Config{
//	    Client: client,
//	    Model:  "gpt-4o-mini",
//	    Prompt: prompt.New(
//	        prompt.WithBackground("You are an expert search query generator."),
//	        prompt.WithSteps("Analyze the instruction.", "Produce diverse queries."),
//	    ),
//	})
//
// # Continuing a turn
//
// Passing a nil input skips the turn-open step and asks the model for
// another assistant message against the existing history:
//
//	out, err := a.Run(ctx, nil)
//
// # Sessions
//
// ResetMemory discards conversational state between independent sessions,
// restoring the memory captured at construction time (including any
// few-shot examples seeded into it before the agent was built).
package agent
