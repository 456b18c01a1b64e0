// Package prompt composes system prompts for weft agents.
//
// A [Generator] renders a static instruction template (background, internal
// steps, output instructions) followed by the current output of every
// registered [ContextProvider]. Providers render in registration order, so
// the rendered prompt is deterministic for a fixed set of providers and
// fragment outputs.
package prompt

import (
	"fmt"
	"strings"
	"sync"
)

// ContextProvider is a named, pluggable source of a dynamic text fragment
// injected into the system prompt (retrieved documents, the current date).
// The generator treats providers as stateless: it only ever asks for the
// current fragment and never inspects provider internals.
type ContextProvider interface {
	// Title labels the provider's section in the rendered prompt.
	Title() string

	// Info produces the provider's current text fragment. An empty string
	// omits the section from the rendered prompt.
	Info() string
}

// ErrProviderNotFound is returned when a context provider lookup or
// unregistration references an unknown name.
type ErrProviderNotFound struct {
	Name string
}

// Error returns a formatted error message including the provider name.
func (e *ErrProviderNotFound) Error() string {
	return fmt.Sprintf("prompt: context provider not found: %s", e.Name)
}

// funcProvider adapts a title and an info function to ContextProvider.
type funcProvider struct {
	title string
	info  func() string
}

func (p funcProvider) Title() string { return p.title }
func (p funcProvider) Info() string  { return p.info() }

// Func constructs a ContextProvider from a title and an info function.
func Func(title string, info func() string) ContextProvider {
	return funcProvider{title: title, info: info}
}

// Generator renders system prompts. The zero-value template produces a
// generic assistant prompt; use options to customize the sections.
type Generator struct {
	mu                 sync.RWMutex
	background         []string
	steps              []string
	outputInstructions []string
	providers          map[string]ContextProvider
	order              []string
}

// Option configures a Generator.
type Option func(*Generator)

// WithBackground sets the identity and purpose lines.
func WithBackground(lines ...string) Option {
	return func(g *Generator) {
		g.background = lines
	}
}

// WithSteps sets the internal assistant step lines.
func WithSteps(lines ...string) Option {
	return func(g *Generator) {
		g.steps = lines
	}
}

// WithOutputInstructions sets the output instruction lines. The standard
// schema and context instructions are always appended after them.
func WithOutputInstructions(lines ...string) Option {
	return func(g *Generator) {
		g.outputInstructions = lines
	}
}

// WithContextProvider registers a context provider at construction time.
func WithContextProvider(name string, provider ContextProvider) Option {
	return func(g *Generator) {
		g.register(name, provider)
	}
}

// New creates a Generator. Without options it renders a minimal prompt for
// a helpful, friendly assistant.
func New(opts ...Option) *Generator {
	g := &Generator{
		background: []string{"This is a conversation with a helpful and friendly AI assistant."},
		providers:  make(map[string]ContextProvider),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Register adds a context provider under the given name, overwriting any
// provider already registered under that name. An overwritten provider
// keeps its original position in the rendering order.
func (g *Generator) Register(name string, provider ContextProvider) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.register(name, provider)
}

func (g *Generator) register(name string, provider ContextProvider) {
	if _, exists := g.providers[name]; !exists {
		g.order = append(g.order, name)
	}
	g.providers[name] = provider
}

// Unregister removes the named context provider. It returns
// *ErrProviderNotFound if no provider is registered under that name;
// it never silently succeeds.
func (g *Generator) Unregister(name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.providers[name]; !exists {
		return &ErrProviderNotFound{Name: name}
	}
	delete(g.providers, name)
	for i, n := range g.order {
		if n == name {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get retrieves the named context provider, or *ErrProviderNotFound if no
// provider is registered under that name.
func (g *Generator) Get(name string) (ContextProvider, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	provider, exists := g.providers[name]
	if !exists {
		return nil, &ErrProviderNotFound{Name: name}
	}
	return provider, nil
}

// Names returns the registered provider names in registration order.
func (g *Generator) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	names := make([]string, len(g.order))
	copy(names, g.order)
	return names
}

// Generate renders the system prompt: the static instruction sections
// followed by each registered provider's current fragment, in registration
// order. Calling it twice without state change yields identical strings.
func (g *Generator) Generate() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var parts []string

	sections := []struct {
		title string
		lines []string
	}{
		{"IDENTITY and PURPOSE", g.background},
		{"INTERNAL ASSISTANT STEPS", g.steps},
		{"OUTPUT INSTRUCTIONS", g.outputInstructionLines()},
	}

	for _, section := range sections {
		if len(section.lines) == 0 {
			continue
		}
		parts = append(parts, "# "+section.title)
		for _, line := range section.lines {
			parts = append(parts, "- "+line)
		}
		parts = append(parts, "")
	}

	if len(g.order) > 0 {
		parts = append(parts, "# EXTRA INFORMATION AND CONTEXT")
		for _, name := range g.order {
			provider := g.providers[name]
			info := provider.Info()
			if info == "" {
				continue
			}
			parts = append(parts, "## "+provider.Title(), info, "")
		}
	}

	return strings.TrimSpace(strings.Join(parts, "\n"))
}

func (g *Generator) outputInstructionLines() []string {
	lines := make([]string, 0, len(g.outputInstructions)+2)
	lines = append(lines, g.outputInstructions...)
	lines = append(lines,
		"Always respond using the proper JSON schema.",
		"Always use the available additional information and context to enhance the response.",
	)
	return lines
}
