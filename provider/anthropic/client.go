package anthropic

import (
	"context"
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/loomlight/weft"
)

const DefaultModel = "claude-sonnet-4-5"

// defaultMaxTokens applies when the caller sets no token limit; the
// Anthropic API requires max_tokens on every request.
const defaultMaxTokens = 4096

// Client wraps the Anthropic SDK to implement weft.CompletionProvider.
type Client struct {
	client *anthropic.Client
	model  string
}

// New creates a new Anthropic client with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	c := &Client{
		client: &client,
		model:  DefaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClientOption configures the Anthropic client.
type ClientOption func(*Client)

// WithModel sets the default model for requests.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// Complete sends a conversation and returns the raw JSON response payload.
// The output shape is enforced with a forced tool call whose input schema is
// the declared response schema; the tool input comes back as the payload.
func (c *Client) Complete(ctx context.Context, messages []weft.Message, opts ...weft.Option) (json.RawMessage, error) {
	options := weft.ApplyOptions(opts...)
	model := c.model
	if options.Model != "" {
		model = options.Model
	}

	maxTokens := int64(defaultMaxTokens)
	if options.MaxTokens > 0 {
		maxTokens = int64(options.MaxTokens)
	}

	msgs, system := convertMessages(messages)
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages:  msgs,
	}
	if len(system) > 0 {
		params.System = system
	}
	if options.Temperature != nil {
		params.Temperature = anthropic.Float(*options.Temperature)
	}

	jsonTool, jsonToolChoice := buildJSONTool(options.ResponseSchema)
	params.Tools = []anthropic.ToolUnionParam{jsonTool}
	params.ToolChoice = jsonToolChoice

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}

	for _, block := range resp.Content {
		if block.Type == "tool_use" && block.Name == jsonResponseToolName {
			return json.RawMessage(block.Input), nil
		}
	}
	return nil, weft.NewPermanentError("anthropic: response contained no structured tool call", 0, nil)
}

var _ weft.CompletionProvider = (*Client)(nil)
