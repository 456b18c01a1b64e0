package agent

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/loomlight/weft"
	"github.com/loomlight/weft/memory"
	"github.com/loomlight/weft/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProvider implements weft.CompletionProvider for testing.
type mockProvider struct {
	responses []mockResponse
	requests  [][]weft.Message
	options   []*weft.Options
}

type mockResponse struct {
	content string
	err     error
}

func (m *mockProvider) Complete(ctx context.Context, messages []weft.Message, opts ...weft.Option) (json.RawMessage, error) {
	m.requests = append(m.requests, messages)
	m.options = append(m.options, weft.ApplyOptions(opts...))

	if len(m.responses) == 0 {
		return json.RawMessage(`{"chat_message":"no more responses"}`), nil
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	if resp.err != nil {
		return nil, resp.err
	}
	return json.RawMessage(resp.content), nil
}

func chatResponse(text string) mockResponse {
	raw, _ := json.Marshal(weft.ChatOutput{ChatMessage: text})
	return mockResponse{content: string(raw)}
}

func TestNew(t *testing.T) {
	t.Run("requires a completion provider", func(t *testing.T) {
		_, err := New[weft.ChatInput, weft.ChatOutput](Config{Model: "gpt-4o-mini"})
		assert.ErrorIs(t, err, weft.ErrNilClient)
	})

	t.Run("constructs defaults for memory and prompt", func(t *testing.T) {
		a, err := New[weft.ChatInput, weft.ChatOutput](Config{Client: &mockProvider{}, Model: "gpt-4o-mini"})
		require.NoError(t, err)
		assert.NotNil(t, a.Memory())
		assert.Equal(t, 0, a.Memory().Turn())
		assert.Contains(t, a.SystemPrompt(), "IDENTITY and PURPOSE")
		assert.Equal(t, "gpt-4o-mini", a.Model())
	})

	t.Run("rejects non-struct shapes", func(t *testing.T) {
		_, err := New[string, weft.ChatOutput](Config{Client: &mockProvider{}})
		assert.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	t.Run("one turn records user and assistant messages", func(t *testing.T) {
		provider := &mockProvider{responses: []mockResponse{chatResponse("hi there")}}
		a, err := New[weft.ChatInput, weft.ChatOutput](Config{Client: provider, Model: "gpt-4o-mini"})
		require.NoError(t, err)

		out, err := a.Run(context.Background(), &weft.ChatInput{ChatMessage: "hello"})
		require.NoError(t, err)
		assert.Equal(t, "hi there", out.ChatMessage)

		assert.Equal(t, 1, a.Memory().Turn())
		history := a.Memory().History()
		require.Len(t, history, 2)
		assert.Equal(t, weft.RoleUser, history[0].Role)
		assert.JSONEq(t, `{"chat_message":"hello"}`, string(history[0].Content))
		assert.Equal(t, weft.RoleAssistant, history[1].Role)
		assert.JSONEq(t, `{"chat_message":"hi there"}`, string(history[1].Content))
	})

	t.Run("nil input continues the turn without a user message", func(t *testing.T) {
		provider := &mockProvider{responses: []mockResponse{
			chatResponse("first"),
			chatResponse("second"),
		}}
		a, err := New[weft.ChatInput, weft.ChatOutput](Config{Client: provider, Model: "gpt-4o-mini"})
		require.NoError(t, err)

		_, err = a.Run(context.Background(), &weft.ChatInput{ChatMessage: "hello"})
		require.NoError(t, err)
		require.Equal(t, 2, a.Memory().Len())

		out, err := a.Run(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, "second", out.ChatMessage)

		assert.Equal(t, 1, a.Memory().Turn(), "no new turn opened")
		history := a.Memory().History()
		require.Len(t, history, 3)
		assert.Equal(t, weft.RoleAssistant, history[2].Role)
	})

	t.Run("turn counter increments exactly once per input-bearing run", func(t *testing.T) {
		provider := &mockProvider{}
		a, err := New[weft.ChatInput, weft.ChatOutput](Config{Client: provider, Model: "gpt-4o-mini"})
		require.NoError(t, err)

		for i := 1; i <= 3; i++ {
			_, err := a.Run(context.Background(), &weft.ChatInput{ChatMessage: "q"})
			require.NoError(t, err)
			assert.Equal(t, i, a.Memory().Turn())
		}
		_, err = a.Run(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, 3, a.Memory().Turn())
	})

	t.Run("request starts with the rendered system prompt", func(t *testing.T) {
		provider := &mockProvider{responses: []mockResponse{chatResponse("ok")}}
		gen := prompt.New(prompt.WithBackground("You answer tersely."))
		a, err := New[weft.ChatInput, weft.ChatOutput](Config{Client: provider, Model: "gpt-4o-mini", Prompt: gen})
		require.NoError(t, err)

		_, err = a.Run(context.Background(), &weft.ChatInput{ChatMessage: "hello"})
		require.NoError(t, err)

		require.Len(t, provider.requests, 1)
		request := provider.requests[0]
		require.NotEmpty(t, request)
		assert.Equal(t, weft.RoleSystem, request[0].Role)
		assert.Contains(t, request[0].Text(), "You answer tersely.")
		assert.Equal(t, weft.RoleUser, request[1].Role)
	})

	t.Run("request carries model and output schema", func(t *testing.T) {
		provider := &mockProvider{responses: []mockResponse{chatResponse("ok")}}
		a, err := New[weft.ChatInput, weft.ChatOutput](Config{Client: provider, Model: "gpt-4o-mini"})
		require.NoError(t, err)

		_, err = a.Run(context.Background(), &weft.ChatInput{ChatMessage: "hello"})
		require.NoError(t, err)

		require.Len(t, provider.options, 1)
		opts := provider.options[0]
		assert.Equal(t, "gpt-4o-mini", opts.Model)
		require.NotNil(t, opts.ResponseSchema)
		assert.Equal(t, "chat_output", opts.ResponseSchema.Name)
	})

	t.Run("request options pass through", func(t *testing.T) {
		provider := &mockProvider{responses: []mockResponse{chatResponse("ok")}}
		a, err := New[weft.ChatInput, weft.ChatOutput](Config{
			Client:         provider,
			Model:          "gpt-4o-mini",
			RequestOptions: []weft.Option{weft.WithMaxTokens(512), weft.WithTemperature(0.2)},
		})
		require.NoError(t, err)

		_, err = a.Run(context.Background(), &weft.ChatInput{ChatMessage: "hello"})
		require.NoError(t, err)

		opts := provider.options[0]
		assert.Equal(t, 512, opts.MaxTokens)
		require.NotNil(t, opts.Temperature)
		assert.InDelta(t, 0.2, *opts.Temperature, 1e-9)
	})

	t.Run("non-conforming response fails validation and is not recorded", func(t *testing.T) {
		provider := &mockProvider{responses: []mockResponse{
			{content: `{"unexpected":"shape"}`},
		}}
		a, err := New[weft.ChatInput, weft.ChatOutput](Config{Client: provider, Model: "gpt-4o-mini"})
		require.NoError(t, err)

		_, err = a.Run(context.Background(), &weft.ChatInput{ChatMessage: "hello"})
		require.Error(t, err)
		assert.True(t, weft.IsValidation(err))

		history := a.Memory().History()
		require.Len(t, history, 1, "only the user message from the failed turn remains")
		assert.Equal(t, weft.RoleUser, history[0].Role)
	})

	t.Run("provider errors propagate unchanged", func(t *testing.T) {
		boom := weft.NewTransientError("rate limited", 429, errors.New("429"))
		provider := &mockProvider{responses: []mockResponse{{err: boom}}}
		a, err := New[weft.ChatInput, weft.ChatOutput](Config{Client: provider, Model: "gpt-4o-mini"})
		require.NoError(t, err)

		_, err = a.Run(context.Background(), &weft.ChatInput{ChatMessage: "hello"})
		require.Error(t, err)
		assert.Equal(t, boom, err)
		assert.True(t, weft.IsTransient(err))
		assert.Equal(t, 1, a.Memory().Len())
	})

	t.Run("tracks current input", func(t *testing.T) {
		provider := &mockProvider{}
		a, err := New[weft.ChatInput, weft.ChatOutput](Config{Client: provider, Model: "gpt-4o-mini"})
		require.NoError(t, err)
		assert.Nil(t, a.CurrentInput())

		input := &weft.ChatInput{ChatMessage: "hello"}
		_, err = a.Run(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, input, a.CurrentInput())

		_, err = a.Run(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, input, a.CurrentInput(), "nil input leaves current input untouched")
	})
}

func TestResetMemory(t *testing.T) {
	t.Run("restores construction-time state", func(t *testing.T) {
		provider := &mockProvider{}
		a, err := New[weft.ChatInput, weft.ChatOutput](Config{Client: provider, Model: "gpt-4o-mini"})
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			_, err := a.Run(context.Background(), &weft.ChatInput{ChatMessage: "q"})
			require.NoError(t, err)
		}
		require.Equal(t, 6, a.Memory().Len())

		a.ResetMemory()
		assert.Equal(t, 0, a.Memory().Turn())
		assert.Equal(t, 0, a.Memory().Len())
	})

	t.Run("preserves seeded few-shot examples", func(t *testing.T) {
		mem := memory.New()
		mem.NewTurn()
		_, err := mem.Add(weft.RoleUser, weft.ChatInput{ChatMessage: "example question"})
		require.NoError(t, err)
		_, err = mem.Add(weft.RoleAssistant, weft.ChatOutput{ChatMessage: "example answer"})
		require.NoError(t, err)

		provider := &mockProvider{}
		a, err := New[weft.ChatInput, weft.ChatOutput](Config{Client: provider, Model: "gpt-4o-mini", Memory: mem})
		require.NoError(t, err)

		_, err = a.Run(context.Background(), &weft.ChatInput{ChatMessage: "real question"})
		require.NoError(t, err)
		require.Equal(t, 4, a.Memory().Len())

		a.ResetMemory()
		assert.Equal(t, 2, a.Memory().Len())
		assert.Equal(t, 1, a.Memory().Turn())
		history := a.Memory().History()
		assert.JSONEq(t, `{"chat_message":"example question"}`, string(history[0].Content))
	})
}

func TestContextProviderPassThrough(t *testing.T) {
	newAgent := func(t *testing.T) *ChatAgent {
		t.Helper()
		a, err := New[weft.ChatInput, weft.ChatOutput](Config{Client: &mockProvider{}, Model: "gpt-4o-mini"})
		require.NoError(t, err)
		return a
	}

	t.Run("register and get", func(t *testing.T) {
		a := newAgent(t)
		a.RegisterContextProvider("current_date", prompt.Func("Current Date", func() string { return "2026-08-23" }))

		p, err := a.ContextProvider("current_date")
		require.NoError(t, err)
		assert.Equal(t, "Current Date", p.Title())
		assert.Contains(t, a.SystemPrompt(), "2026-08-23")
	})

	t.Run("replacement returns the new provider", func(t *testing.T) {
		a := newAgent(t)
		a.RegisterContextProvider("ctx", prompt.Func("Old", func() string { return "old" }))
		a.RegisterContextProvider("ctx", prompt.Func("New", func() string { return "new" }))

		p, err := a.ContextProvider("ctx")
		require.NoError(t, err)
		assert.Equal(t, "New", p.Title())
	})

	t.Run("not-found errors surface unchanged", func(t *testing.T) {
		a := newAgent(t)

		_, err := a.ContextProvider("missing")
		var notFound *prompt.ErrProviderNotFound
		require.ErrorAs(t, err, &notFound)

		err = a.UnregisterContextProvider("missing")
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "missing", notFound.Name)
	})
}
