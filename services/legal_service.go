package services

import (
	"context"
	"encoding/json"
	"log"

	"fabric-store/models"
)

type LegalService struct {
	store models.KVStore
}

func NewLegalService(store models.KVStore) *LegalService {
	return &LegalService{store: store}
}

func (s *LegalService) ListDocuments(ctx context.Context) ([]models.LegalDocument, error) {
	rows, err := models.DB.Query(ctx,
		`SELECT id, slug, title, updated_at FROM legal_documents ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []models.LegalDocument{}
	for rows.Next() {
		var d models.LegalDocument
		if err := rows.Scan(&d.ID, &d.Slug, &d.Title, &d.UpdatedAt); err != nil {
			continue
		}
		docs = append(docs, d)
	}
	return docs, nil
}

func (s *LegalService) GetDocument(ctx context.Context, slug string) (*models.LegalDocument, error) {
	var d models.LegalDocument
	err := models.DB.QueryRow(ctx,
		`SELECT id, slug, title, content, updated_at FROM legal_documents WHERE slug = $1`,
		slug).Scan(&d.ID, &d.Slug, &d.Title, &d.Content, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Bookmarks returns the visitor's bookmarked document slugs.
func (s *LegalService) Bookmarks(ctx context.Context, clientID string) []string {
	raw, exists, err := s.store.Get(ctx, models.LegalBookmarksKey(clientID))
	if err != nil || !exists {
		return []string{}
	}

	var slugs []string
	if err := json.Unmarshal([]byte(raw), &slugs); err != nil {
		log.Printf("Legal bookmarks unreadable, resetting: %v", err)
		return []string{}
	}
	return slugs
}

// ToggleBookmark adds or removes a slug from the bookmark list and reports
// the new state. Storage failures degrade to the unset default.
func (s *LegalService) ToggleBookmark(ctx context.Context, clientID, slug string) bool {
	slugs := s.Bookmarks(ctx, clientID)

	bookmarked := true
	updated := []string{}
	for _, existing := range slugs {
		if existing == slug {
			bookmarked = false
			continue
		}
		updated = append(updated, existing)
	}
	if bookmarked {
		updated = append(updated, slug)
	}

	raw, _ := json.Marshal(updated)
	if err := s.store.Set(ctx, models.LegalBookmarksKey(clientID), string(raw)); err != nil {
		log.Printf("Storing legal bookmarks failed: %v", err)
		return false
	}
	return bookmarked
}
