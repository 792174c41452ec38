package recall

import (
	"context"

	"github.com/w-h-a/recall/embedder"
	"github.com/w-h-a/recall/generator"
	"github.com/w-h-a/recall/internal/service/answer"
	"github.com/w-h-a/recall/internal/service/retrieval"
	"github.com/w-h-a/recall/store"
)

// Engine ties embedding, vector storage, retrieval, and context-grounded
// answering together behind the two operations the API layer consumes.
type Engine struct {
	retrieval *retrieval.Service
	answer    *answer.Service
}

// Save embeds text and appends it to the category's partition, returning the
// new record's id. Nothing is persisted when embedding fails.
func (e *Engine) Save(ctx context.Context, category string, text string) (int64, error) {
	return e.retrieval.Save(ctx, category, text)
}

// Retrieve returns the context blob for the query along with whether any
// prior records existed in the category.
func (e *Engine) Retrieve(ctx context.Context, category string, queryText string) (string, bool, error) {
	retrieved, err := e.retrieval.Retrieve(ctx, category, queryText)
	if err != nil {
		return "", false, err
	}
	return retrieved.Text, retrieved.Found, nil
}

// RetrieveAndAnswer compares a new analysis against the category's prior
// analyses and returns the generated comparison.
func (e *Engine) RetrieveAndAnswer(ctx context.Context, category string, queryText string) (string, error) {
	retrieved, err := e.retrieval.Retrieve(ctx, category, queryText)
	if err != nil {
		return "", err
	}

	return e.answer.Answer(ctx, queryText, retrieved, answer.Comparison)
}

// AnswerQuestion answers a free-form question from the category's records.
func (e *Engine) AnswerQuestion(ctx context.Context, category string, question string) (string, error) {
	retrieved, err := e.retrieval.Retrieve(ctx, category, question)
	if err != nil {
		return "", err
	}

	return e.answer.Answer(ctx, question, retrieved, answer.Question)
}

func New(
	embedder embedder.Embedder,
	store store.Store,
	generator generator.Generator,
	limit int,
) *Engine {
	re := retrieval.New(
		embedder,
		store,
		limit,
	)

	an := answer.New(
		generator,
	)

	return &Engine{
		retrieval: re,
		answer:    an,
	}
}
