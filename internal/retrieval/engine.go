package retrieval

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"resume-extract/internal/llm"
)

const (
	chunkSize    = 1000
	chunkOverlap = 200
	retrieveTopK = 4

	answerCacheTTL = 15 * time.Minute
)

// Generator produces a grounded answer from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Engine answers queries about a document by chunking it, embedding the
// chunks into an in-memory index, and prompting an LLM with the most
// relevant chunks as context.
type Engine struct {
	embedder  Embedder
	generator Generator
	cache     *answerCache
}

// Acquire returns a retrieval engine backed by OpenAI, or nil when no API
// key is configured. A nil engine means retrieval is disabled for the
// process lifetime.
func Acquire(apiKey string) *Engine {
	if apiKey == "" {
		log.Println("[Retrieval] No API key configured, retrieval disabled")
		return nil
	}

	service := llm.NewService("openai", apiKey, "gpt-4o-mini")
	log.Println("[Retrieval] Enabled (OpenAI embeddings + gpt-4o-mini)")
	return NewEngine(service, service)
}

func NewEngine(embedder Embedder, generator Generator) *Engine {
	return &Engine{
		embedder:  embedder,
		generator: generator,
		cache:     newAnswerCache(answerCacheTTL),
	}
}

// Answer runs a retrieval-augmented query over text. Chunking, indexing and
// generation all happen per call; nothing is persisted beyond the cache.
func (e *Engine) Answer(ctx context.Context, query, text string) (string, error) {
	if cached, ok := e.cache.get(query, text); ok {
		return cached, nil
	}

	chunks := SplitText(text, chunkSize, chunkOverlap)
	if len(chunks) == 0 {
		return "", fmt.Errorf("nothing to index")
	}

	index, err := BuildIndex(ctx, e.embedder, chunks)
	if err != nil {
		return "", fmt.Errorf("indexing failed: %w", err)
	}

	queryVec, err := e.embedder.Embed(ctx, query)
	if err != nil {
		return "", fmt.Errorf("query embedding failed: %w", err)
	}

	relevant := index.TopK(queryVec, retrieveTopK)

	answer, err := e.generator.Generate(ctx, buildAnswerPrompt(query, relevant))
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}

	e.cache.set(query, text, answer)
	return answer, nil
}

func buildAnswerPrompt(query string, contexts []string) string {
	var sb strings.Builder

	sb.WriteString("Answer the question using only the context below.\n\nContext:\n")
	for _, c := range contexts {
		sb.WriteString("---\n")
		sb.WriteString(c)
		sb.WriteString("\n")
	}
	sb.WriteString("\nQuestion: ")
	sb.WriteString(query)
	sb.WriteString("\n\nAnswer concisely. If the context does not contain the answer, say nothing.")

	return sb.String()
}
