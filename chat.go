package weft

// ChatInput is the default input shape for chat agents: a single free-text
// message from the user to the assistant.
type ChatInput struct {
	ChatMessage string `json:"chat_message" desc:"The chat message sent by the user to the assistant." required:"true"`
}

// ChatOutput is the default output shape for chat agents: a single
// markdown-enabled response generated by the assistant.
type ChatOutput struct {
	ChatMessage string `json:"chat_message" desc:"The chat message exchanged between the user and the chat agent. This contains the markdown-enabled response generated by the chat agent." required:"true"`
}
