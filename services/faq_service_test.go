package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"fabric-store/models"
)

func TestFuzzyScoreSubstringMatches(t *testing.T) {
	assert.Equal(t, 100, FuzzyScore("how", "How much fabric do I need?"))
	assert.Equal(t, 96, FuzzyScore("much", "How much fabric do I need?"))
	assert.Equal(t, 100, FuzzyScore("  HOW ", "how much fabric"))

	// Deep matches never score below the substring floor.
	longText := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaneedle"
	assert.Equal(t, 50, FuzzyScore("needle", longText))
}

func TestFuzzyScorePartialMatches(t *testing.T) {
	// All characters present in order, but not contiguous.
	score := FuzzyScore("wsh", "washing")
	assert.Equal(t, 40, score)

	// Under 60% of characters matched counts as no match.
	assert.Zero(t, FuzzyScore("xyzq", "washing instructions"))
}

func TestFuzzyScoreRejectsEmptyInput(t *testing.T) {
	assert.Zero(t, FuzzyScore("", "anything"))
	assert.Zero(t, FuzzyScore("   ", "anything"))
	assert.Zero(t, FuzzyScore("query", ""))
}

func TestFuzzyScoreSubstringBeatsPartial(t *testing.T) {
	substring := FuzzyScore("linen", "caring for linen fabric")
	partial := FuzzyScore("linen", "long white denim")
	assert.Greater(t, substring, partial)
}

func newTestFAQService() *FAQService {
	return &FAQService{store: models.NewMemoryKVStore()}
}

func TestToggleBookmarkFlipsState(t *testing.T) {
	ctx := context.Background()
	svc := newTestFAQService()

	assert.False(t, svc.IsBookmarked(ctx, "visitor-1", 3))
	assert.True(t, svc.ToggleBookmark(ctx, "visitor-1", 3))
	assert.True(t, svc.IsBookmarked(ctx, "visitor-1", 3))
	assert.False(t, svc.ToggleBookmark(ctx, "visitor-1", 3))
	assert.False(t, svc.IsBookmarked(ctx, "visitor-1", 3))

	// Bookmarks are per visitor.
	svc.ToggleBookmark(ctx, "visitor-1", 3)
	assert.False(t, svc.IsBookmarked(ctx, "visitor-2", 3))
}

func TestSearchHistoryNewestFirstAndDeduplicated(t *testing.T) {
	ctx := context.Background()
	svc := newTestFAQService()

	svc.recordSearch(ctx, "visitor-1", "linen")
	svc.recordSearch(ctx, "visitor-1", "cotton")
	svc.recordSearch(ctx, "visitor-1", "LINEN")

	history := svc.SearchHistory(ctx, "visitor-1")
	assert.Equal(t, []string{"LINEN", "cotton"}, history)
}

func TestSearchHistoryCappedAtTen(t *testing.T) {
	ctx := context.Background()
	svc := newTestFAQService()

	for i := 1; i <= 15; i++ {
		svc.recordSearch(ctx, "visitor-1", fmt.Sprintf("query %d", i))
	}

	history := svc.SearchHistory(ctx, "visitor-1")
	assert.Len(t, history, 10)
	assert.Equal(t, "query 15", history[0])
	assert.Equal(t, "query 6", history[9])
}

func TestSearchHistoryIgnoresBlankInput(t *testing.T) {
	ctx := context.Background()
	svc := newTestFAQService()

	svc.recordSearch(ctx, "visitor-1", "   ")
	svc.recordSearch(ctx, "", "linen")

	assert.Empty(t, svc.SearchHistory(ctx, "visitor-1"))
}
