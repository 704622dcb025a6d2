package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	defaultRequestTimeout = 60 * time.Second
)

var (
	ErrAPIKeyMissing       = errors.New("ai api key is not configured")
	ErrEmptyCompletion     = errors.New("empty completion")
	ErrUnsupportedProvider = errors.New("unsupported ai provider")
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type CompletionRequest struct {
	Messages     []Message
	Temperature  float64
	MaxTokens    int
	JSONResponse bool
}

// Completer performs one blocking round trip to a chat-completion service.
type Completer interface {
	Complete(ctx context.Context, request CompletionRequest) (string, error)
}

type ClientConfig struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
}

func NewCompleter(ctx context.Context, config ClientConfig) (Completer, error) {
	if strings.TrimSpace(config.APIKey) == "" {
		return nil, ErrAPIKeyMissing
	}
	if config.Timeout <= 0 {
		config.Timeout = defaultRequestTimeout
	}

	switch strings.ToLower(strings.TrimSpace(config.Provider)) {
	case "", ProviderOpenAI:
		return NewOpenAIClient(config), nil
	case ProviderGemini:
		return NewGeminiClient(ctx, config)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, config.Provider)
	}
}
