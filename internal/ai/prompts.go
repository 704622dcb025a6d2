package ai

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var promptCatalogYAML []byte

type PromptTemplate struct {
	System      string  `yaml:"system"`
	User        string  `yaml:"user"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
	JSON        bool    `yaml:"json"`

	userTemplate *template.Template
}

type PromptCatalog struct {
	Diary PromptTemplate `yaml:"diary"`
	Plan  PromptTemplate `yaml:"plan"`
	Chat  PromptTemplate `yaml:"chat"`
	Tasks PromptTemplate `yaml:"tasks"`
}

var promptFuncs = template.FuncMap{
	"join": strings.Join,
}

func LoadPromptCatalog() (*PromptCatalog, error) {
	return parsePromptCatalog(promptCatalogYAML)
}

func parsePromptCatalog(raw []byte) (*PromptCatalog, error) {
	catalog := &PromptCatalog{}
	if err := yaml.Unmarshal(raw, catalog); err != nil {
		return nil, fmt.Errorf("decode prompt catalog: %w", err)
	}

	templates := map[string]*PromptTemplate{
		"diary": &catalog.Diary,
		"plan":  &catalog.Plan,
		"chat":  &catalog.Chat,
		"tasks": &catalog.Tasks,
	}
	for name, prompt := range templates {
		if strings.TrimSpace(prompt.System) == "" {
			return nil, fmt.Errorf("prompt %s: system message is required", name)
		}
		if strings.TrimSpace(prompt.User) == "" {
			continue
		}
		parsed, err := template.New(name).Funcs(promptFuncs).Option("missingkey=error").Parse(prompt.User)
		if err != nil {
			return nil, fmt.Errorf("prompt %s: %w", name, err)
		}
		prompt.userTemplate = parsed
	}
	return catalog, nil
}

// Messages renders the system and user turns for a single-shot prompt.
func (prompt PromptTemplate) Messages(data any) ([]Message, error) {
	messages := []Message{{Role: RoleSystem, Content: strings.TrimSpace(prompt.System)}}
	if prompt.userTemplate == nil {
		return messages, nil
	}

	var rendered bytes.Buffer
	if err := prompt.userTemplate.Execute(&rendered, data); err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}
	return append(messages, Message{Role: RoleUser, Content: strings.TrimSpace(rendered.String())}), nil
}

func (prompt PromptTemplate) Request(messages []Message) CompletionRequest {
	return CompletionRequest{
		Messages:     messages,
		Temperature:  prompt.Temperature,
		MaxTokens:    prompt.MaxTokens,
		JSONResponse: prompt.JSON,
	}
}
