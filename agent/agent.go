package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/loomlight/weft"
	"github.com/loomlight/weft/memory"
	"github.com/loomlight/weft/prompt"
)

// Config holds the immutable configuration bundle for an Agent.
type Config struct {
	// Client is the completion capability the agent submits requests to.
	// Required.
	Client weft.CompletionProvider

	// Model is the model identifier sent with every request. For Azure
	// OpenAI backends this is the deployment name.
	Model string

	// Memory is the conversation log. If nil, a fresh Memory is constructed
	// with the agent's input and output schemas declared for the user and
	// assistant roles.
	Memory *memory.Memory

	// Prompt is the system prompt generator. If nil, a default generator
	// is constructed.
	Prompt *prompt.Generator

	// InputSchema overrides the schema derived from the input type.
	InputSchema *weft.ResponseSchema

	// OutputSchema overrides the schema derived from the output type.
	OutputSchema *weft.ResponseSchema

	// RequestOptions are applied to every completion request, before the
	// agent's own model and response schema options.
	RequestOptions []weft.Option
}

// Agent orchestrates turn-based conversations with structured input and
// output shapes. I is the input payload type, O the output payload type;
// both schemas are derived by reflection at construction time unless
// overridden in the Config.
//
// An Agent issues at most one outstanding completion request per Run call
// and blocks the caller until it returns or fails. Memory is owned
// exclusively by the agent; for concurrent use, give each goroutine its
// own Agent and Memory.
type Agent[I, O any] struct {
	client       weft.CompletionProvider
	model        string
	mem          *memory.Memory
	gen          *prompt.Generator
	inputSchema  weft.ResponseSchema
	outputSchema weft.ResponseSchema
	requestOpts  []weft.Option

	initial      *memory.Memory
	currentInput *I
}

// ChatAgent is an Agent with the default free-text chat shapes.
type ChatAgent = Agent[weft.ChatInput, weft.ChatOutput]

// New creates an Agent from the given configuration. It captures a deep
// copy of the memory's construction-time state, which ResetMemory restores.
func New[I, O any](cfg Config) (*Agent[I, O], error) {
	if cfg.Client == nil {
		return nil, weft.ErrNilClient
	}

	inputSchema, err := resolveSchema[I](cfg.InputSchema)
	if err != nil {
		return nil, fmt.Errorf("agent: input schema: %w", err)
	}
	outputSchema, err := resolveSchema[O](cfg.OutputSchema)
	if err != nil {
		return nil, fmt.Errorf("agent: output schema: %w", err)
	}

	mem := cfg.Memory
	if mem == nil {
		mem = memory.New(
			memory.WithSchema(weft.RoleUser, inputSchema),
			memory.WithSchema(weft.RoleAssistant, outputSchema),
		)
	}

	gen := cfg.Prompt
	if gen == nil {
		gen = prompt.New()
	}

	return &Agent[I, O]{
		client:       cfg.Client,
		model:        cfg.Model,
		mem:          mem,
		gen:          gen,
		inputSchema:  inputSchema,
		outputSchema: outputSchema,
		requestOpts:  cfg.RequestOptions,
		initial:      mem.Copy(),
	}, nil
}

func resolveSchema[T any](override *weft.ResponseSchema) (weft.ResponseSchema, error) {
	if override != nil {
		return *override, nil
	}
	return weft.SchemaFor[T]()
}

// Run executes one conversational turn.
//
// If input is non-nil, a new turn is opened, the input is validated against
// the input schema and recorded under the user role. If input is nil this
// step is skipped entirely and the request continues the turn already open;
// this is the documented way to ask for another assistant message without
// adding a user message.
//
// The request sent to the completion provider is the rendered system prompt
// followed by the full message history, with the configured model and the
// output schema as the target shape. The response is validated against the
// output schema before anything else happens: on validation failure the
// error is returned and no assistant message is recorded. On success the
// output is recorded under the assistant role and returned.
//
// Completion-capability failures propagate unchanged; the agent defines no
// retry or fallback policy.
func (a *Agent[I, O]) Run(ctx context.Context, input *I) (O, error) {
	var zero O

	if input != nil {
		raw, err := json.Marshal(input)
		if err != nil {
			return zero, fmt.Errorf("agent: encode input: %w", err)
		}
		if err := weft.Validate(a.inputSchema, raw); err != nil {
			return zero, err
		}
		a.mem.NewTurn()
		a.currentInput = input
		if _, err := a.mem.Add(weft.RoleUser, raw); err != nil {
			return zero, err
		}
	}

	history := a.mem.History()
	messages := make([]weft.Message, 0, len(history)+1)
	messages = append(messages, weft.NewSystemMessage(a.gen.Generate()))
	messages = append(messages, history...)

	opts := make([]weft.Option, 0, len(a.requestOpts)+2)
	opts = append(opts, a.requestOpts...)
	opts = append(opts, weft.WithModel(a.model), weft.WithResponseSchema(a.outputSchema))

	raw, err := a.client.Complete(ctx, messages, opts...)
	if err != nil {
		return zero, err
	}

	if err := weft.Validate(a.outputSchema, raw); err != nil {
		return zero, err
	}

	var out O
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, &weft.ValidationError{
			Schema:  a.outputSchema.Name,
			Message: fmt.Sprintf("response does not decode into output type: %v", err),
		}
	}

	if _, err := a.mem.Add(weft.RoleAssistant, raw); err != nil {
		return zero, err
	}
	return out, nil
}

// ResetMemory restores the memory to the state captured at construction
// time, discarding all conversational state recorded since.
func (a *Agent[I, O]) ResetMemory() {
	a.mem.Reset(a.initial)
}

// Memory returns the agent's conversation log.
func (a *Agent[I, O]) Memory() *memory.Memory {
	return a.mem
}

// Model returns the configured model identifier.
func (a *Agent[I, O]) Model() string {
	return a.model
}

// CurrentInput returns the input supplied to the most recent Run call that
// opened a turn, or nil before the first such call.
func (a *Agent[I, O]) CurrentInput() *I {
	return a.currentInput
}

// SystemPrompt renders the current system prompt.
func (a *Agent[I, O]) SystemPrompt() string {
	return a.gen.Generate()
}

// ContextProvider retrieves a context provider from the prompt generator's
// registry. It surfaces the registry's not-found error unchanged.
func (a *Agent[I, O]) ContextProvider(name string) (prompt.ContextProvider, error) {
	return a.gen.Get(name)
}

// RegisterContextProvider registers a context provider with the prompt
// generator, overwriting any provider already registered under the name.
func (a *Agent[I, O]) RegisterContextProvider(name string, provider prompt.ContextProvider) {
	a.gen.Register(name, provider)
}

// UnregisterContextProvider removes a context provider from the prompt
// generator. It surfaces the registry's not-found error unchanged.
func (a *Agent[I, O]) UnregisterContextProvider(name string) error {
	return a.gen.Unregister(name)
}
