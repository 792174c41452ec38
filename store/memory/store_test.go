package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/w-h-a/recall/store"
)

func TestMemoryStore_CategoryIsolation(t *testing.T) {
	s := NewStore(store.WithDimension(3))
	ctx := context.Background()

	_, err := s.Insert(ctx, "Xray", "xray finding", []float32{1, 0, 0})
	require.NoError(t, err)

	_, err = s.Insert(ctx, "Report", "report finding", []float32{1, 0, 0})
	require.NoError(t, err)

	texts, err := s.Query(ctx, "Xray", []float32{1, 0, 0}, 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"xray finding"}, texts)
}

func TestMemoryStore_Ordering(t *testing.T) {
	s := NewStore(store.WithDimension(3))
	ctx := context.Background()

	_, err := s.Insert(ctx, "Xray", "far", []float32{0, 1, 0})
	require.NoError(t, err)

	_, err = s.Insert(ctx, "Xray", "near", []float32{1, 0, 0})
	require.NoError(t, err)

	_, err = s.Insert(ctx, "Xray", "close", []float32{0.9, 0.1, 0})
	require.NoError(t, err)

	texts, err := s.Query(ctx, "Xray", []float32{1, 0, 0}, 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"near", "close", "far"}, texts)
}

func TestMemoryStore_TieBreakByInsertionOrder(t *testing.T) {
	s := NewStore(store.WithDimension(3))
	ctx := context.Background()

	_, err := s.Insert(ctx, "Xray", "first", []float32{1, 0, 0})
	require.NoError(t, err)

	_, err = s.Insert(ctx, "Xray", "second", []float32{1, 0, 0})
	require.NoError(t, err)

	texts, err := s.Query(ctx, "Xray", []float32{1, 0, 0}, 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, texts)
}

func TestMemoryStore_EmptyCategory(t *testing.T) {
	s := NewStore(store.WithDimension(3))

	texts, err := s.Query(context.Background(), "Report", []float32{1, 0, 0}, 5)

	assert.NoError(t, err)
	assert.Empty(t, texts)
}

func TestMemoryStore_AppendOnlyDuplicates(t *testing.T) {
	s := NewStore(store.WithDimension(3))
	ctx := context.Background()

	first, err := s.Insert(ctx, "Xray", "mild caries tooth #14", []float32{1, 0, 0})
	require.NoError(t, err)

	second, err := s.Insert(ctx, "Xray", "mild caries tooth #14", []float32{1, 0, 0})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	texts, err := s.Query(ctx, "Xray", []float32{1, 0, 0}, 5)
	require.NoError(t, err)

	assert.Len(t, texts, 2)
}

func TestMemoryStore_DimensionMismatch(t *testing.T) {
	s := NewStore(store.WithDimension(3))
	ctx := context.Background()

	_, err := s.Insert(ctx, "Xray", "finding", []float32{1, 0})

	assert.ErrorIs(t, err, store.ErrDimensionMismatch)
	assert.Equal(t, 0, s.Len())

	_, err = s.Query(ctx, "Xray", []float32{1, 0}, 5)

	assert.ErrorIs(t, err, store.ErrDimensionMismatch)
}
