package factory

import (
	"fmt"

	"pageant-coach-be/pkg/llm"
	"pageant-coach-be/pkg/llm/groq"
)

// NewLLMProvider builds the configured provider wrapped with the
// fixed-ceiling retry policy.
func NewLLMProvider(providerType, modelName, apiKey, baseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "groq":
		provider := groq.NewGroqProvider(apiKey, modelName)
		if baseURL != "" {
			provider.BaseURL = baseURL
		}
		return llm.NewRetryProvider(provider, llm.DefaultMaxAttempts), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
