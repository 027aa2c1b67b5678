package models

import "time"

type FAQ struct {
	ID              int       `json:"id"`
	Question        string    `json:"question"`
	Answer          string    `json:"answer"`
	Category        string    `json:"category"`
	HelpfulCount    int       `json:"helpful_count"`
	NotHelpfulCount int       `json:"not_helpful_count"`
	Position        int       `json:"position"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// FAQSearchResult pairs a FAQ with its fuzzy-match score for search responses.
type FAQSearchResult struct {
	FAQ   FAQ `json:"faq"`
	Score int `json:"score"`
}
