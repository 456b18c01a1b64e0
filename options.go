package weft

// Options contains configuration for a completion request.
type Options struct {
	// Model is the model identifier to use for the request. For Azure
	// OpenAI backends this is the deployment name.
	Model string
	// MaxTokens caps the number of generated tokens. 0 means provider default.
	MaxTokens int
	// Temperature is the sampling temperature. Nil means provider default.
	Temperature *float64
	// ResponseSchema is the target shape the response must conform to.
	ResponseSchema *ResponseSchema
}

// Option is a functional option for configuring completion requests.
type Option func(*Options)

// WithModel sets the model to use for the request.
func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// WithMaxTokens sets the maximum number of tokens to generate.
func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// WithTemperature sets the sampling temperature (0.0 to 2.0).
func WithTemperature(t float64) Option {
	return func(o *Options) {
		o.Temperature = &t
	}
}

// WithResponseSchema sets the target shape for the response payload.
func WithResponseSchema(s ResponseSchema) Option {
	return func(o *Options) {
		o.ResponseSchema = &s
	}
}

// ApplyOptions applies functional options to an Options struct.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
