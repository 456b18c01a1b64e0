package weft

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Role represents the role of a message sender in a conversation.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message represents a single message in a conversation. Messages are
// immutable once recorded: the memory log hands out copies, never its
// backing slice.
type Message struct {
	// ID is a unique identifier assigned when the message is recorded.
	ID   string `json:"id,omitempty"`
	Role Role   `json:"role"`
	// Turn is the index of the conversational turn this message belongs to.
	// Turn indices are non-decreasing across a conversation.
	Turn int `json:"turn"`
	// Content is the JSON-encoded payload of the message. For user and
	// assistant messages it conforms to the shape declared for that role.
	Content json.RawMessage `json:"content"`
}

// GenerateMessageID creates a unique message identifier.
func GenerateMessageID() string {
	return "msg-" + uuid.New().String()
}

// Text returns the message content as a string, suitable for submission
// as the content field of a chat-completion request. Payload objects are
// rendered as their JSON encoding; plain-string content (system prompts)
// is rendered without the surrounding quotes.
func (m Message) Text() string {
	var s string
	if err := json.Unmarshal(m.Content, &s); err == nil {
		return s
	}
	return string(m.Content)
}

// NewSystemMessage creates a system-role message from a rendered prompt.
// System messages carry no turn index of their own; they are composed
// fresh for every request.
func NewSystemMessage(prompt string) Message {
	raw, _ := json.Marshal(prompt)
	return Message{Role: RoleSystem, Content: raw}
}
