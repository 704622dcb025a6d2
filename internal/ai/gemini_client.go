package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiClient(ctx context.Context, config ClientConfig) (*GeminiClient, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL := strings.TrimSpace(config.BaseURL); baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := strings.TrimSpace(config.Model)
	if model == "" {
		model = defaultGeminiModel
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &GeminiClient{client: client, model: model, timeout: timeout}, nil
}

func (client *GeminiClient) Complete(ctx context.Context, request CompletionRequest) (string, error) {
	system, contents := toGeminiContents(request.Messages)

	config := &genai.GenerateContentConfig{}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	if request.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(request.Temperature))
	}
	if request.MaxTokens > 0 {
		config.MaxOutputTokens = int32(request.MaxTokens)
	}
	if request.JSONResponse {
		config.ResponseMIMEType = "application/json"
	}

	ctx, cancel := context.WithTimeout(ctx, client.timeout)
	defer cancel()

	response, err := client.client.Models.GenerateContent(ctx, client.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	content := strings.TrimSpace(response.Text())
	if content == "" {
		return "", ErrEmptyCompletion
	}
	return content, nil
}

// toGeminiContents folds system messages into one instruction and maps the
// assistant role onto Gemini's model role.
func toGeminiContents(messages []Message) (string, []*genai.Content) {
	systemParts := make([]string, 0, 1)
	contents := make([]*genai.Content, 0, len(messages))
	for _, message := range messages {
		switch message.Role {
		case RoleSystem:
			systemParts = append(systemParts, message.Content)
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(message.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(message.Content, genai.RoleUser))
		}
	}
	return strings.Join(systemParts, "\n\n"), contents
}
