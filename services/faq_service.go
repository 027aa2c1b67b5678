package services

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"strings"

	"fabric-store/models"
	"fabric-store/repositories"
)

const searchHistoryLimit = 10

type FAQService struct {
	repo  *repositories.FAQRepository
	store models.KVStore
}

func NewFAQService(store models.KVStore) *FAQService {
	return &FAQService{
		repo:  repositories.NewFAQRepository(),
		store: store,
	}
}

// FuzzyScore rates how well text matches the query. A direct substring match
// scores highest (earlier position wins); otherwise an in-order character
// walk earns a partial score, and under 60% matched characters counts as no
// match at all.
func FuzzyScore(query, text string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	t := strings.ToLower(text)
	if q == "" || t == "" {
		return 0
	}

	if idx := strings.Index(t, q); idx >= 0 {
		score := 100 - idx
		if score < 50 {
			score = 50
		}
		return score
	}

	matched := 0
	pos := 0
	for _, r := range q {
		i := strings.IndexRune(t[pos:], r)
		if i < 0 {
			continue
		}
		matched++
		pos += i + 1
		if pos >= len(t) {
			break
		}
	}

	ratio := matched * 100 / len(q)
	if ratio < 60 {
		return 0
	}
	return ratio * 40 / 100
}

func (s *FAQService) ListFAQs(ctx context.Context, category string) ([]models.FAQ, error) {
	faqs, err := s.repo.GetAllFAQs(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" || category == "all" {
		return faqs, nil
	}

	out := []models.FAQ{}
	for _, f := range faqs {
		if strings.EqualFold(f.Category, category) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *FAQService) Categories(ctx context.Context) ([]string, error) {
	faqs, err := s.repo.GetAllFAQs(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	categories := []string{}
	for _, f := range faqs {
		if !seen[f.Category] {
			seen[f.Category] = true
			categories = append(categories, f.Category)
		}
	}
	return categories, nil
}

// SearchFAQs scores every FAQ against the query (question and answer, best of
// the two), drops non-matches and orders by score. The query lands in the
// visitor's search history, best-effort.
func (s *FAQService) SearchFAQs(ctx context.Context, clientID, query string) ([]models.FAQSearchResult, error) {
	faqs, err := s.repo.GetAllFAQs(ctx)
	if err != nil {
		return nil, err
	}

	results := []models.FAQSearchResult{}
	for _, f := range faqs {
		score := FuzzyScore(query, f.Question)
		if answerScore := FuzzyScore(query, f.Answer); answerScore > score {
			score = answerScore
		}
		if score > 0 {
			results = append(results, models.FAQSearchResult{FAQ: f, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })

	s.recordSearch(ctx, clientID, query)
	return results, nil
}

// Vote records a helpful/not-helpful vote, one per visitor per FAQ. Repeating
// the same vote is a no-op; switching sides moves the count across.
func (s *FAQService) Vote(ctx context.Context, clientID string, faqID int, helpful bool) (*models.FAQ, error) {
	vote := "down"
	if helpful {
		vote = "up"
	}

	key := models.FAQVoteKey(clientID, faqID)
	previous, exists, err := s.store.Get(ctx, key)
	if err != nil {
		log.Printf("Vote lookup failed, treating as first vote: %v", err)
		exists = false
	}

	if exists && previous == vote {
		return s.repo.GetFAQByID(ctx, faqID)
	}

	if exists {
		if err := s.repo.ApplyVote(ctx, faqID, previous == "up", -1); err != nil {
			return nil, err
		}
	}
	if err := s.repo.ApplyVote(ctx, faqID, helpful, 1); err != nil {
		return nil, err
	}

	if err := s.store.Set(ctx, key, vote); err != nil {
		log.Printf("Storing vote failed: %v", err)
	}
	return s.repo.GetFAQByID(ctx, faqID)
}

// ToggleBookmark flips the visitor's bookmark flag and reports the new state.
func (s *FAQService) ToggleBookmark(ctx context.Context, clientID string, faqID int) bool {
	key := models.FAQBookmarkKey(clientID, faqID)
	_, exists, err := s.store.Get(ctx, key)
	if err != nil {
		log.Printf("Bookmark lookup failed: %v", err)
		return false
	}

	if exists {
		if err := s.store.Delete(ctx, key); err != nil {
			log.Printf("Removing bookmark failed: %v", err)
			return true
		}
		return false
	}

	if err := s.store.Set(ctx, key, "1"); err != nil {
		log.Printf("Storing bookmark failed: %v", err)
		return false
	}
	return true
}

func (s *FAQService) IsBookmarked(ctx context.Context, clientID string, faqID int) bool {
	_, exists, err := s.store.Get(ctx, models.FAQBookmarkKey(clientID, faqID))
	if err != nil {
		return false
	}
	return exists
}

// SearchHistory returns the visitor's recent queries, most recent first.
func (s *FAQService) SearchHistory(ctx context.Context, clientID string) []string {
	raw, exists, err := s.store.Get(ctx, models.FAQSearchHistoryKey(clientID))
	if err != nil || !exists {
		return []string{}
	}

	var history []string
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		log.Printf("Search history unreadable, resetting: %v", err)
		return []string{}
	}
	return history
}

func (s *FAQService) recordSearch(ctx context.Context, clientID, query string) {
	query = strings.TrimSpace(query)
	if clientID == "" || query == "" {
		return
	}

	history := s.SearchHistory(ctx, clientID)

	updated := []string{query}
	for _, q := range history {
		if strings.EqualFold(q, query) {
			continue
		}
		updated = append(updated, q)
		if len(updated) == searchHistoryLimit {
			break
		}
	}

	raw, _ := json.Marshal(updated)
	if err := s.store.Set(ctx, models.FAQSearchHistoryKey(clientID), string(raw)); err != nil {
		log.Printf("Storing search history failed: %v", err)
	}
}
