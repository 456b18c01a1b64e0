package openai

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/loomlight/weft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorizeStatusCode(t *testing.T) {
	tests := []struct {
		code int
		want weft.ErrorCategory
	}{
		{429, weft.ErrorTransient},
		{500, weft.ErrorTransient},
		{503, weft.ErrorTransient},
		{401, weft.ErrorPermanent},
		{403, weft.ErrorPermanent},
		{400, weft.ErrorUserInput},
		{404, weft.ErrorUserInput},
		{422, weft.ErrorUserInput},
		{418, weft.ErrorPermanent},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, categorizeStatusCode(tt.code), "code %d", tt.code)
	}
}

func TestParseRetryAfter(t *testing.T) {
	t.Run("nil response", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), parseRetryAfter(nil))
	})

	t.Run("missing header", func(t *testing.T) {
		resp := &http.Response{Header: http.Header{}}
		assert.Equal(t, time.Duration(0), parseRetryAfter(resp))
	})

	t.Run("seconds", func(t *testing.T) {
		resp := &http.Response{Header: http.Header{"Retry-After": []string{"30"}}}
		assert.Equal(t, 30*time.Second, parseRetryAfter(resp))
	})

	t.Run("http date in the future", func(t *testing.T) {
		future := time.Now().Add(time.Minute).UTC().Format(http.TimeFormat)
		resp := &http.Response{Header: http.Header{"Retry-After": []string{future}}}
		got := parseRetryAfter(resp)
		assert.Greater(t, got, 50*time.Second)
	})

	t.Run("unparseable header", func(t *testing.T) {
		resp := &http.Response{Header: http.Header{"Retry-After": []string{"soon"}}}
		assert.Equal(t, time.Duration(0), parseRetryAfter(resp))
	})
}

func TestBuildSchemaFormat(t *testing.T) {
	schema := &weft.ResponseSchema{
		Name:        "chat_output",
		Description: "A chat response.",
		Schema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"chat_message": {"type": "string"},
				"citations": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {"url": {"type": "string"}}
					}
				}
			},
			"required": ["chat_message"]
		}`),
	}

	format := buildSchemaFormat(schema)
	require.NotNil(t, format.OfJSONSchema)
	assert.Equal(t, "json_schema", string(format.OfJSONSchema.Type))
	assert.Equal(t, "chat_output", format.OfJSONSchema.JSONSchema.Name)

	root, ok := format.OfJSONSchema.JSONSchema.Schema.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, root["additionalProperties"])

	props := root["properties"].(map[string]any)
	items := props["citations"].(map[string]any)["items"].(map[string]any)
	assert.Equal(t, false, items["additionalProperties"], "nested objects get strict mode too")
}

func TestBuildSchemaFormatDefaultsName(t *testing.T) {
	format := buildSchemaFormat(&weft.ResponseSchema{
		Schema: json.RawMessage(`{"type":"object"}`),
	})
	assert.Equal(t, "response_schema", format.OfJSONSchema.JSONSchema.Name)
}

func TestConvertMessages(t *testing.T) {
	messages := []weft.Message{
		weft.NewSystemMessage("You are terse."),
		{Role: weft.RoleUser, Content: json.RawMessage(`{"chat_message":"hi"}`)},
		{Role: weft.RoleAssistant, Content: json.RawMessage(`{"chat_message":"hello"}`)},
	}

	converted := convertMessages(messages)
	require.Len(t, converted, 3)
	assert.NotNil(t, converted[0].OfSystem)
	assert.NotNil(t, converted[1].OfUser)
	assert.NotNil(t, converted[2].OfAssistant)
}
