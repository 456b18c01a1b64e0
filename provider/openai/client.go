package openai

import (
	"context"
	"encoding/json"

	"github.com/loomlight/weft"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"
)

const DefaultModel = "gpt-4o-mini"

// Client wraps the OpenAI SDK to implement weft.CompletionProvider.
type Client struct {
	client *openai.Client
	model  string
}

type clientConfig struct {
	model   string
	reqOpts []option.RequestOption
}

// ClientOption configures the OpenAI client.
type ClientOption func(*clientConfig)

// WithModel sets the default model for requests.
func WithModel(model string) ClientOption {
	return func(cfg *clientConfig) {
		cfg.model = model
	}
}

// WithBaseURL points the client at an OpenAI-compatible endpoint such as a
// local inference server or a proxy.
func WithBaseURL(baseURL string) ClientOption {
	return func(cfg *clientConfig) {
		cfg.reqOpts = append(cfg.reqOpts, option.WithBaseURL(baseURL))
	}
}

// New creates a new OpenAI client with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	return newClient(opts, option.WithAPIKey(apiKey))
}

// NewAzure creates a client backed by an Azure OpenAI deployment. The model
// sent with each request names the deployment rather than a model family.
func NewAzure(endpoint, apiVersion, apiKey string, opts ...ClientOption) *Client {
	return newClient(opts,
		azure.WithEndpoint(endpoint, apiVersion),
		azure.WithAPIKey(apiKey),
	)
}

func newClient(opts []ClientOption, reqOpts ...option.RequestOption) *Client {
	cfg := clientConfig{model: DefaultModel, reqOpts: reqOpts}
	for _, opt := range opts {
		opt(&cfg)
	}
	client := openai.NewClient(cfg.reqOpts...)
	return &Client{
		client: &client,
		model:  cfg.model,
	}
}

// Complete sends a conversation and returns the raw JSON response payload.
func (c *Client) Complete(ctx context.Context, messages []weft.Message, opts ...weft.Option) (json.RawMessage, error) {
	options := weft.ApplyOptions(opts...)
	model := c.model
	if options.Model != "" {
		model = options.Model
	}

	params := openai.ChatCompletionNewParams{
		Model:    model,
		Messages: convertMessages(messages),
	}
	if options.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(options.MaxTokens))
	}
	if options.Temperature != nil {
		params.Temperature = openai.Float(*options.Temperature)
	}
	if options.ResponseSchema != nil {
		params.ResponseFormat = buildSchemaFormat(options.ResponseSchema)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, weft.NewPermanentError("openai: response contained no choices", 0, nil)
	}

	return json.RawMessage(resp.Choices[0].Message.Content), nil
}

var _ weft.CompletionProvider = (*Client)(nil)
