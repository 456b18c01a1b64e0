package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/loomlight/weft"
	"github.com/loomlight/weft/provider/openai"
)

// azureAPIVersion is the Azure OpenAI API version the example targets.
const azureAPIVersion = "2023-05-15"

// Config holds the example configuration loaded from environment variables.
type Config struct {
	// Direct OpenAI (or compatible endpoint)
	APIKey  string
	Model   string
	BaseURL string

	// Azure OpenAI, selected with CLIENT_TYPE=azure. The deployment name
	// takes the place of the model identifier.
	UseAzure        bool
	AzureEndpoint   string
	AzureDeployment string
	AzureAPIKey     string

	// Search
	SearxNGURL string
}

// LoadConfig loads configuration from environment variables.
// It loads a .env file if present (silent fail if not found).
func LoadConfig() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		APIKey:          os.Getenv("OPENAI_API_KEY"),
		Model:           os.Getenv("OPENAI_MODEL"),
		BaseURL:         os.Getenv("OPENAI_BASE_URL"),
		UseAzure:        os.Getenv("CLIENT_TYPE") == "azure",
		AzureEndpoint:   os.Getenv("AZURE_OPENAI_ENDPOINT"),
		AzureDeployment: os.Getenv("AZURE_DEPLOYMENT"),
		AzureAPIKey:     os.Getenv("AZURE_API_KEY"),
		SearxNGURL:      getEnvOrDefault("SEARXNG_BASE_URL", "http://localhost:8080/"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.UseAzure {
		if c.AzureEndpoint == "" {
			return fmt.Errorf("AZURE_OPENAI_ENDPOINT is required when CLIENT_TYPE=azure")
		}
		if c.AzureDeployment == "" {
			return fmt.Errorf("AZURE_DEPLOYMENT is required when CLIENT_TYPE=azure")
		}
		if c.AzureAPIKey == "" {
			return fmt.Errorf("AZURE_API_KEY is required when CLIENT_TYPE=azure")
		}
		return nil
	}

	if c.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.Model == "" {
		return fmt.Errorf("OPENAI_MODEL is required")
	}
	return nil
}

// NewClient builds the completion provider selected by the configuration.
func (c *Config) NewClient() weft.CompletionProvider {
	if c.UseAzure {
		return openai.NewAzure(c.AzureEndpoint, azureAPIVersion, c.AzureAPIKey)
	}
	if c.BaseURL != "" {
		return openai.New(c.APIKey, openai.WithBaseURL(c.BaseURL))
	}
	return openai.New(c.APIKey)
}

// ModelName returns the model identifier sent with each request: the Azure
// deployment name or the configured OpenAI model.
func (c *Config) ModelName() string {
	if c.UseAzure {
		return c.AzureDeployment
	}
	return c.Model
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
