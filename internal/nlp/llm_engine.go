package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"resume-extract/internal/llm"
)

// LLMEngine performs named-entity recognition through a provider-backed LLM.
type LLMEngine struct {
	service *llm.Service
	model   string
}

// NewLLMEngine validates the provider configuration and returns an engine.
// It fails fast on configuration that can never produce entities so that
// acquisition can fall through to a weaker tier.
func NewLLMEngine(provider, apiKey, model string) (*LLMEngine, error) {
	if provider == "" || provider == string(llm.ProviderNone) {
		return nil, fmt.Errorf("nlp: no provider configured")
	}
	if model == "" {
		return nil, fmt.Errorf("nlp: no model configured for provider %s", provider)
	}
	// Local ollama needs no key; cloud providers do
	if provider != string(llm.ProviderOllama) && apiKey == "" {
		return nil, fmt.Errorf("nlp: missing API key for provider %s", provider)
	}

	return &LLMEngine{
		service: llm.NewService(provider, apiKey, model),
		model:   model,
	}, nil
}

func (e *LLMEngine) Name() string { return e.model }

// Process runs NER over text and returns the tagged entities.
func (e *LLMEngine) Process(ctx context.Context, text string) (*Document, error) {
	response, err := e.service.Generate(ctx, buildNERPrompt(text))
	if err != nil {
		return nil, err
	}

	entities, err := parseEntities(response)
	if err != nil {
		return nil, fmt.Errorf("failed to parse NER response: %w", err)
	}

	return &Document{Text: text, Entities: entities}, nil
}

func buildNERPrompt(text string) string {
	return fmt.Sprintf(`You are an expert named-entity recognizer. Tag entities in the text below.

Text:
"""
%s
"""

Return ONLY valid JSON (no markdown, no explanation) with this exact structure:
{
  "entities": [
    {"text": "Entity text exactly as it appears", "label": "ORG|PRODUCT|PERSON|GPE"}
  ]
}

Important:
- Copy entity text verbatim from the input, do not normalize or translate
- Label organizations (companies, universities, institutes) as ORG
- Label technologies, tools and named products as PRODUCT
- Return an empty entities array if nothing is found`, text)
}

func parseEntities(response string) ([]Entity, error) {
	// Some models wrap JSON in code fences despite instructions
	cleaned := strings.TrimSpace(response)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	var result struct {
		Entities []Entity `json:"entities"`
	}
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, err
	}
	if result.Entities == nil {
		result.Entities = []Entity{}
	}
	return result.Entities, nil
}
