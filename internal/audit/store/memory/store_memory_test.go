package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortcheck/internal/audit"
)

func TestInMemoryStore_AppendAndListRecent(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	for i := range 5 {
		err := store.Append(ctx, audit.Event{
			SortCode: fmt.Sprintf("11000%d", i),
			Verdict:  "valid",
		})
		require.NoError(t, err)
	}

	events, err := store.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, events, 3)

	// Most recent first.
	assert.Equal(t, "110004", events[0].SortCode)
	assert.Equal(t, "110003", events[1].SortCode)
	assert.Equal(t, "110002", events[2].SortCode)
}

func TestInMemoryStore_ListRecentLimitExceedsCount(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, audit.Event{SortCode: "180002"}))

	events, err := store.ListRecent(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestInMemoryStore_Clear(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, audit.Event{SortCode: "180002"}))
	store.Clear()

	events, err := store.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}
