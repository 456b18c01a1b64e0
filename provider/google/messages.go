package google

import (
	"github.com/loomlight/weft"
	"google.golang.org/genai"
)

func convertMessages(messages []weft.Message) []*genai.Content {
	var contents []*genai.Content

	for _, msg := range messages {
		text := msg.Text()
		if text == "" {
			continue
		}

		// Gemini has no separate system role; system prompts travel as user
		// content at their position in the sequence.
		role := "user"
		if msg.Role == weft.RoleAssistant {
			role = "model"
		}

		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: text}},
		})
	}

	return contents
}
