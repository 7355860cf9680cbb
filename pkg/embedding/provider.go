package embedding

import "context"

// Dimension is the width of every stored vector. Providers are asked to
// produce vectors of exactly this size.
const Dimension = 384

// EmbeddingProvider defines the interface for generating text embeddings
type EmbeddingProvider interface {
	Generate(ctx context.Context, text string, taskType string) (*EmbeddingResponse, error)
}
