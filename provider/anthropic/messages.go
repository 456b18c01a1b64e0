package anthropic

import (
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/loomlight/weft"
)

func convertMessages(messages []weft.Message) ([]anthropic.MessageParam, []anthropic.TextBlockParam) {
	var result []anthropic.MessageParam
	var system []anthropic.TextBlockParam

	for _, msg := range messages {
		text := msg.Text()
		// The Anthropic API rejects empty text blocks.
		if text == "" {
			continue
		}
		switch msg.Role {
		case weft.RoleSystem:
			system = append(system, anthropic.TextBlockParam{Text: text})
		case weft.RoleAssistant:
			result = append(result, anthropic.NewAssistantMessage(anthropic.NewTextBlock(text)))
		default:
			result = append(result, anthropic.NewUserMessage(anthropic.NewTextBlock(text)))
		}
	}

	return result, system
}
