package anthropic

import (
	"encoding/json"
	"testing"

	"github.com/loomlight/weft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildJSONTool(t *testing.T) {
	t.Run("uses the declared schema", func(t *testing.T) {
		schema := &weft.ResponseSchema{
			Name:        "answer",
			Description: "A direct answer with follow-ups.",
			Schema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"answer": {"type": "string"},
					"follow_up_questions": {"type": "array", "items": {"type": "string"}}
				},
				"required": ["answer", "follow_up_questions"]
			}`),
		}

		tool, choice := buildJSONTool(schema)
		require.NotNil(t, tool.OfTool)
		assert.Equal(t, jsonResponseToolName, tool.OfTool.Name)
		assert.Equal(t, "A direct answer with follow-ups.", tool.OfTool.Description.Value)
		assert.Equal(t, []string{"answer", "follow_up_questions"}, tool.OfTool.InputSchema.Required)

		props, ok := tool.OfTool.InputSchema.Properties.(map[string]any)
		require.True(t, ok)
		assert.Contains(t, props, "answer")

		require.NotNil(t, choice.OfTool)
		assert.Equal(t, jsonResponseToolName, choice.OfTool.Name)
	})

	t.Run("nil schema falls back to a generic object", func(t *testing.T) {
		tool, choice := buildJSONTool(nil)
		require.NotNil(t, tool.OfTool)
		assert.Equal(t, "Output the response as structured JSON", tool.OfTool.Description.Value)
		assert.Empty(t, tool.OfTool.InputSchema.Required)
		require.NotNil(t, choice.OfTool)
	})
}

func TestConvertMessages(t *testing.T) {
	messages := []weft.Message{
		weft.NewSystemMessage("You are terse."),
		{Role: weft.RoleUser, Content: json.RawMessage(`{"chat_message":"hi"}`)},
		{Role: weft.RoleAssistant, Content: json.RawMessage(`{"chat_message":"hello"}`)},
		{Role: weft.RoleUser, Content: json.RawMessage(`""`)},
	}

	msgs, system := convertMessages(messages)
	require.Len(t, system, 1)
	assert.Equal(t, "You are terse.", system[0].Text)
	assert.Len(t, msgs, 2, "empty text blocks are dropped")
}

func TestCategorizeStatusCode(t *testing.T) {
	assert.Equal(t, weft.ErrorTransient, categorizeStatusCode(429))
	assert.Equal(t, weft.ErrorTransient, categorizeStatusCode(529))
	assert.Equal(t, weft.ErrorPermanent, categorizeStatusCode(401))
	assert.Equal(t, weft.ErrorUserInput, categorizeStatusCode(400))
	assert.Equal(t, weft.ErrorPermanent, categorizeStatusCode(302))
}
