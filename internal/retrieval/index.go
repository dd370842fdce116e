package retrieval

import (
	"context"
	"fmt"
	"math"
	"sort"
)

// Embedder creates vector embeddings for text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Index is an in-memory vector index over text chunks. Built once per
// document, queried by cosine similarity.
type Index struct {
	chunks  []string
	vectors [][]float32
}

// BuildIndex embeds every chunk and returns a searchable index.
func BuildIndex(ctx context.Context, embedder Embedder, chunks []string) (*Index, error) {
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no chunks to index")
	}

	index := &Index{
		chunks:  chunks,
		vectors: make([][]float32, 0, len(chunks)),
	}

	for i, chunk := range chunks {
		vec, err := embedder.Embed(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("failed to embed chunk %d: %w", i, err)
		}
		index.vectors = append(index.vectors, vec)
	}

	return index, nil
}

// TopK returns the k chunks most similar to the query vector, best first.
func (ix *Index) TopK(queryVec []float32, k int) []string {
	type scored struct {
		chunk string
		score float64
	}

	results := make([]scored, 0, len(ix.chunks))
	for i, vec := range ix.vectors {
		results = append(results, scored{
			chunk: ix.chunks[i],
			score: cosineSimilarity(queryVec, vec),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	if k > len(results) {
		k = len(results)
	}

	top := make([]string, 0, k)
	for _, r := range results[:k] {
		top = append(top, r.chunk)
	}
	return top
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
