package generator

import (
	"context"
	"errors"
)

// ErrFailed is returned when the completion provider errors or returns no
// text. The operation is user-triggered and idempotent, so callers may retry
// the whole request; providers do not retry internally.
var ErrFailed = errors.New("generation failed")

type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
