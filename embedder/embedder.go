package embedder

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when the embedding provider fails or returns no vector.
var ErrUnavailable = errors.New("embedding unavailable")

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
