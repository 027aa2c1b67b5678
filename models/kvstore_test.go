package models

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKVStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryKVStore()

	_, exists, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Set(ctx, "k", "v"))
	val, exists, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "v", val)

	require.NoError(t, store.Set(ctx, "k", "v2"))
	val, _, _ = store.Get(ctx, "k")
	assert.Equal(t, "v2", val)

	require.NoError(t, store.Delete(ctx, "k"))
	_, exists, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting an absent key is fine.
	require.NoError(t, store.Delete(ctx, "k"))
}

func TestPreferenceKeysAreNamespacedPerVisitor(t *testing.T) {
	assert.Equal(t, "visitor-1:faq-bookmark-7", FAQBookmarkKey("visitor-1", 7))
	assert.Equal(t, "visitor-1:faq-vote-7", FAQVoteKey("visitor-1", 7))
	assert.Equal(t, "visitor-1:faq-search-history", FAQSearchHistoryKey("visitor-1"))
	assert.Equal(t, "visitor-1:legalBookmarks", LegalBookmarksKey("visitor-1"))

	assert.NotEqual(t, FAQBookmarkKey("a", 1), FAQBookmarkKey("b", 1))
	assert.NotEqual(t, FAQVoteKey("a", 1), FAQBookmarkKey("a", 1))
}
