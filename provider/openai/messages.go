package openai

import (
	"github.com/loomlight/weft"
	"github.com/openai/openai-go"
)

func convertMessages(messages []weft.Message) []openai.ChatCompletionMessageParamUnion {
	var result []openai.ChatCompletionMessageParamUnion
	for _, msg := range messages {
		switch msg.Role {
		case weft.RoleSystem:
			result = append(result, openai.SystemMessage(msg.Text()))
		case weft.RoleAssistant:
			result = append(result, openai.AssistantMessage(msg.Text()))
		default:
			result = append(result, openai.UserMessage(msg.Text()))
		}
	}
	return result
}
