package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/w-h-a/recall/store"
)

type record struct {
	id        int64
	category  string
	content   string
	embedding []float32
}

type memoryStore struct {
	options store.Options
	records []record
	nextId  int64
	mtx     sync.RWMutex
}

func (s *memoryStore) Insert(ctx context.Context, category string, text string, vector []float32) (int64, error) {
	if len(vector) != s.options.Dimension {
		return 0, fmt.Errorf("%w: got %d, want %d", store.ErrDimensionMismatch, len(vector), s.options.Dimension)
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.nextId++

	cpy := make([]float32, len(vector))
	copy(cpy, vector)

	s.records = append(s.records, record{
		id:        s.nextId,
		category:  category,
		content:   text,
		embedding: cpy,
	})

	return s.nextId, nil
}

func (s *memoryStore) Query(ctx context.Context, category string, vector []float32, limit int) ([]string, error) {
	if limit < 1 {
		return nil, nil
	}

	if len(vector) != s.options.Dimension {
		return nil, fmt.Errorf("%w: got %d, want %d", store.ErrDimensionMismatch, len(vector), s.options.Dimension)
	}

	s.mtx.RLock()
	defer s.mtx.RUnlock()

	type candidate struct {
		record   record
		distance float64
	}

	var candidates []candidate

	for _, rec := range s.records {
		if rec.category != category {
			continue
		}
		candidates = append(candidates, candidate{
			record:   rec,
			distance: store.CosineDistance(vector, rec.embedding),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].record.id < candidates[j].record.id
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	var texts []string
	for _, cand := range candidates {
		texts = append(texts, cand.record.content)
	}

	return texts, nil
}

// Len reports the number of stored records.
func (s *memoryStore) Len() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return len(s.records)
}

func NewStore(opts ...store.Option) *memoryStore {
	options := store.NewOptions(opts...)

	s := &memoryStore{
		options: options,
		records: []record{},
		mtx:     sync.RWMutex{},
	}

	return s
}
