package pipeline

import (
	"context"
	"fmt"

	"github.com/mattbriggs/faqbench/internal/config"
	"github.com/mattbriggs/faqbench/internal/embeddings"
	"github.com/mattbriggs/faqbench/internal/embeddings/gemini"
	"github.com/mattbriggs/faqbench/internal/embeddings/hash"
	"github.com/mattbriggs/faqbench/internal/embeddings/ollama"
	"github.com/mattbriggs/faqbench/internal/embeddings/openai"
)

// NewEmbeddingProvider builds the embedding provider named by the
// configuration. An empty provider name selects openai when an API key is
// present and the offline hash provider otherwise. Callers should close
// providers that implement io.Closer when done.
func NewEmbeddingProvider(ctx context.Context, cfg config.EmbeddingsConfig) (embeddings.Provider, error) {
	name := cfg.Provider
	if name == "" {
		if cfg.OpenAIAPIKey != "" {
			name = "openai"
		} else {
			name = "hash"
		}
	}

	switch name {
	case "openai":
		return openai.New(openai.Config{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.Model,
		})
	case "gemini":
		return gemini.New(ctx, gemini.Config{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.Model,
		})
	case "ollama":
		return ollama.New(ollama.Config{
			BaseURL: cfg.OllamaBaseURL,
			Model:   cfg.Model,
		})
	case "hash":
		return hash.New(cfg.Dimension), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider %q (supported: openai, gemini, ollama, hash)", name)
	}
}
