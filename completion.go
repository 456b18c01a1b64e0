package weft

import (
	"context"
	"encoding/json"
)

// CompletionProvider is the external capability the agent core depends on:
// submit a model identifier, an ordered list of role/content messages, and a
// target response shape; receive JSON conforming to that shape, or an error.
//
// Implementations do not retry. Transport errors should be wrapped with the
// categorized [Error] type so callers can classify them, but the decision to
// retry belongs to a surrounding resilience layer.
//
// Complete blocks until the provider returns or ctx is done. Providers must
// be safe for use by multiple agents, each with independently owned memory.
type CompletionProvider interface {
	Complete(ctx context.Context, messages []Message, opts ...Option) (json.RawMessage, error)
}
