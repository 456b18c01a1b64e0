package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticProvider(title, info string) ContextProvider {
	return Func(title, func() string { return info })
}

func TestGeneratorRegistry(t *testing.T) {
	t.Run("register then get", func(t *testing.T) {
		g := New()
		p := staticProvider("Current Date", "2026-08-23")
		g.Register("current_date", p)

		got, err := g.Get("current_date")
		require.NoError(t, err)
		assert.Equal(t, "Current Date", got.Title())
	})

	t.Run("get unknown name fails with not found", func(t *testing.T) {
		g := New()
		_, err := g.Get("missing")
		require.Error(t, err)

		var notFound *ErrProviderNotFound
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "missing", notFound.Name)
	})

	t.Run("register overwrites an existing name", func(t *testing.T) {
		g := New()
		g.Register("ctx", staticProvider("Old", "old info"))
		g.Register("ctx", staticProvider("New", "new info"))

		got, err := g.Get("ctx")
		require.NoError(t, err)
		assert.Equal(t, "New", got.Title())
		assert.Equal(t, []string{"ctx"}, g.Names())
	})

	t.Run("unregister removes the provider", func(t *testing.T) {
		g := New()
		g.Register("ctx", staticProvider("Ctx", "info"))
		require.NoError(t, g.Unregister("ctx"))

		_, err := g.Get("ctx")
		assert.Error(t, err)
	})

	t.Run("unregister unknown name fails with not found", func(t *testing.T) {
		g := New()
		err := g.Unregister("never_registered")
		require.Error(t, err)

		var notFound *ErrProviderNotFound
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestGenerate(t *testing.T) {
	t.Run("default prompt names a friendly assistant", func(t *testing.T) {
		g := New()
		rendered := g.Generate()
		assert.Contains(t, rendered, "# IDENTITY and PURPOSE")
		assert.Contains(t, rendered, "helpful and friendly AI assistant")
		assert.Contains(t, rendered, "Always respond using the proper JSON schema.")
	})

	t.Run("renders all configured sections", func(t *testing.T) {
		g := New(
			WithBackground("You are a research assistant."),
			WithSteps("Read the question.", "Answer from context."),
			WithOutputInstructions("Cite your sources."),
		)
		rendered := g.Generate()

		assert.Contains(t, rendered, "- You are a research assistant.")
		assert.Contains(t, rendered, "# INTERNAL ASSISTANT STEPS")
		assert.Contains(t, rendered, "- Read the question.")
		assert.Contains(t, rendered, "# OUTPUT INSTRUCTIONS")
		assert.Contains(t, rendered, "- Cite your sources.")
	})

	t.Run("is deterministic across calls", func(t *testing.T) {
		g := New(
			WithContextProvider("alpha", staticProvider("Alpha", "a")),
			WithContextProvider("beta", staticProvider("Beta", "b")),
		)
		assert.Equal(t, g.Generate(), g.Generate())
	})

	t.Run("providers render in registration order", func(t *testing.T) {
		g := New()
		g.Register("zeta", staticProvider("Zeta", "last alphabetically, first registered"))
		g.Register("alpha", staticProvider("Alpha", "first alphabetically, last registered"))

		rendered := g.Generate()
		zeta := strings.Index(rendered, "## Zeta")
		alpha := strings.Index(rendered, "## Alpha")
		require.NotEqual(t, -1, zeta)
		require.NotEqual(t, -1, alpha)
		assert.Less(t, zeta, alpha)
	})

	t.Run("empty fragments are omitted", func(t *testing.T) {
		g := New(WithContextProvider("empty", staticProvider("Empty Section", "")))
		rendered := g.Generate()
		assert.NotContains(t, rendered, "## Empty Section")
	})

	t.Run("dynamic fragments reflect current provider output", func(t *testing.T) {
		current := "first"
		g := New(WithContextProvider("dyn", Func("Dynamic", func() string { return current })))

		assert.Contains(t, g.Generate(), "first")
		current = "second"
		assert.Contains(t, g.Generate(), "second")
	})
}
