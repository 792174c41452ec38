package retrieval

import (
	"context"
	"errors"
	"strings"

	"github.com/w-h-a/recall/embedder"
	"github.com/w-h-a/recall/store"
)

// Context is the grounding material for one query. Found distinguishes an
// empty category from a present-but-empty blob; callers must not treat the
// two the same.
type Context struct {
	Text  string
	Found bool
}

type Service struct {
	embedder embedder.Embedder
	store    store.Store
	limit    int
}

func (s *Service) Save(ctx context.Context, category string, text string) (int64, error) {
	if len(strings.TrimSpace(category)) == 0 {
		return 0, errors.New("category is required")
	}

	if len(strings.TrimSpace(text)) == 0 {
		return 0, errors.New("text is required")
	}

	vec, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return 0, err
	}

	return s.store.Insert(ctx, category, text, vec)
}

func (s *Service) Retrieve(ctx context.Context, category string, queryText string) (Context, error) {
	if len(strings.TrimSpace(category)) == 0 {
		return Context{}, errors.New("category is required")
	}

	if len(strings.TrimSpace(queryText)) == 0 {
		return Context{}, errors.New("query text is required")
	}

	vec, err := s.embedder.Embed(ctx, queryText)
	if err != nil {
		return Context{}, err
	}

	texts, err := s.store.Query(ctx, category, vec, s.limit)
	if err != nil {
		return Context{}, err
	}

	if len(texts) == 0 {
		return Context{}, nil
	}

	// most similar first; downstream prompt construction gives earlier text
	// more weight
	return Context{
		Text:  strings.Join(texts, " "),
		Found: true,
	}, nil
}

func New(
	embedder embedder.Embedder,
	store store.Store,
	limit int,
) *Service {
	if embedder == nil {
		panic("embedder is required")
	}

	if store == nil {
		panic("store is required")
	}

	if limit <= 0 {
		limit = 5
	}

	return &Service{
		embedder: embedder,
		store:    store,
		limit:    limit,
	}
}
