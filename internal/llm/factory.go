package llm

import (
	"context"
	"fmt"

	"github.com/mathpech/mathpech/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, eventRepo)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds a provider from the MATHPECH_* variables,
// falling back to probing the standard API key variables when no
// explicit provider is configured.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}

// Speech returns p as a SpeechProvider when the underlying provider
// can synthesize audio. The middleware chain stays in place: narration
// calls are retried and recorded in the event log like any other
// request.
func Speech(p Provider) (SpeechProvider, bool) {
	sp, ok := p.(SpeechProvider)
	if !ok || !speechCapable(p) {
		return nil, false
	}
	return sp, true
}

// speechCapable walks the middleware chain down to the base provider.
// The decorators implement SpeechProvider themselves, so capability is
// decided by what they wrap.
func speechCapable(p Provider) bool {
	switch v := p.(type) {
	case *RetryProvider:
		return speechCapable(v.inner)
	case *LoggingProvider:
		return speechCapable(v.inner)
	case SpeechProvider:
		return true
	default:
		return false
	}
}
