// Package memory provides the conversational memory log for weft agents.
//
// A [Memory] is an ordered, append-only sequence of turn-tagged messages
// plus a monotonically increasing turn counter. A turn is opened explicitly
// with [Memory.NewTurn] before a user message is added; the assistant
// response recorded afterwards shares the same turn index.
//
// Memory supports a snapshot/restore cycle: [Memory.Copy] produces an
// independent deep copy of the current state, and [Memory.Reset] replaces
// the current state with a previously taken snapshot. Agents use this to
// capture their pristine starting state at construction time and discard
// conversational state between independent sessions.
package memory

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/loomlight/weft"
)

// Memory manages conversation history for a single agent.
// It is safe for concurrent use, though each Memory is intended to be
// owned exclusively by one agent instance.
type Memory struct {
	mu       sync.RWMutex
	turn     int
	messages []weft.Message
	schemas  map[weft.Role]weft.ResponseSchema
}

// Option configures a Memory.
type Option func(*Memory)

// WithSchema declares the shape payloads must conform to for the given
// role. Add rejects payloads for that role that do not validate.
func WithSchema(role weft.Role, schema weft.ResponseSchema) Option {
	return func(m *Memory) {
		m.schemas[role] = schema
	}
}

// New creates an empty Memory at turn 0.
func New(opts ...Option) *Memory {
	m := &Memory{
		messages: make([]weft.Message, 0),
		schemas:  make(map[weft.Role]weft.ResponseSchema),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewTurn opens a new conversational turn and returns its index.
func (m *Memory) NewTurn() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turn++
	return m.turn
}

// Turn returns the current turn index.
func (m *Memory) Turn() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.turn
}

// Add appends a message for the given role, tagged with the current turn
// index. The payload may be any JSON-serializable value, or a pre-encoded
// json.RawMessage. If a schema is declared for the role, the payload is
// validated against it and a *weft.ValidationError is returned on
// non-conformance; nothing is appended on failure.
func (m *Memory) Add(role weft.Role, payload any) (weft.Message, error) {
	raw, err := encodePayload(payload)
	if err != nil {
		return weft.Message{}, fmt.Errorf("memory: encode %s payload: %w", role, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if schema, ok := m.schemas[role]; ok {
		if err := weft.Validate(schema, raw); err != nil {
			return weft.Message{}, err
		}
	}

	msg := weft.Message{
		ID:      weft.GenerateMessageID(),
		Role:    role,
		Turn:    m.turn,
		Content: raw,
	}
	m.messages = append(m.messages, msg)
	return msg, nil
}

// History returns a copy of all recorded messages in order, formatted as
// role/content pairs suitable for submission to a completion provider.
// It does not mutate state.
func (m *Memory) History() []weft.Message {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]weft.Message, len(m.messages))
	copy(result, m.messages)
	return result
}

// Len returns the number of recorded messages.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.messages)
}

// Copy produces an independent deep snapshot of the current state: the
// turn counter, all messages, and the declared schemas.
func (m *Memory) Copy() *Memory {
	m.mu.RLock()
	defer m.mu.RUnlock()

	clone := New()
	clone.turn = m.turn
	clone.messages = cloneMessages(m.messages)
	for role, schema := range m.schemas {
		clone.schemas[role] = schema
	}
	return clone
}

// Reset replaces the current state wholesale with the given snapshot,
// discarding all messages recorded since the snapshot was taken. The
// snapshot itself is not aliased and remains reusable.
func (m *Memory) Reset(snapshot *Memory) {
	snapshot.mu.RLock()
	turn := snapshot.turn
	messages := cloneMessages(snapshot.messages)
	schemas := make(map[weft.Role]weft.ResponseSchema, len(snapshot.schemas))
	for role, schema := range snapshot.schemas {
		schemas[role] = schema
	}
	snapshot.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.turn = turn
	m.messages = messages
	m.schemas = schemas
}

func cloneMessages(messages []weft.Message) []weft.Message {
	result := make([]weft.Message, len(messages))
	for i, msg := range messages {
		content := make(json.RawMessage, len(msg.Content))
		copy(content, msg.Content)
		msg.Content = content
		result[i] = msg
	}
	return result
}

func encodePayload(payload any) (json.RawMessage, error) {
	switch p := payload.(type) {
	case json.RawMessage:
		return p, nil
	case []byte:
		return json.RawMessage(p), nil
	default:
		return json.Marshal(payload)
	}
}
