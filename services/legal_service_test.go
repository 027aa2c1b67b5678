package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"fabric-store/models"
)

func TestLegalBookmarksToggle(t *testing.T) {
	ctx := context.Background()
	svc := NewLegalService(models.NewMemoryKVStore())

	assert.Empty(t, svc.Bookmarks(ctx, "visitor-1"))

	assert.True(t, svc.ToggleBookmark(ctx, "visitor-1", "privacy-policy"))
	assert.True(t, svc.ToggleBookmark(ctx, "visitor-1", "return-policy"))
	assert.Equal(t, []string{"privacy-policy", "return-policy"}, svc.Bookmarks(ctx, "visitor-1"))

	assert.False(t, svc.ToggleBookmark(ctx, "visitor-1", "privacy-policy"))
	assert.Equal(t, []string{"return-policy"}, svc.Bookmarks(ctx, "visitor-1"))

	// Other visitors are unaffected.
	assert.Empty(t, svc.Bookmarks(ctx, "visitor-2"))
}

func TestLegalBookmarksSurviveCorruptPayload(t *testing.T) {
	ctx := context.Background()
	store := models.NewMemoryKVStore()
	svc := NewLegalService(store)

	store.Set(ctx, models.LegalBookmarksKey("visitor-1"), "not json")

	assert.Empty(t, svc.Bookmarks(ctx, "visitor-1"))
	assert.True(t, svc.ToggleBookmark(ctx, "visitor-1", "terms-of-service"))
	assert.Equal(t, []string{"terms-of-service"}, svc.Bookmarks(ctx, "visitor-1"))
}
