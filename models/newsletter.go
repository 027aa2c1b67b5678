package models

import "time"

type NewsletterPreferences struct {
	NewArrivals     bool `json:"newArrivals"`
	Promotions      bool `json:"promotions"`
	ProductUpdates  bool `json:"productUpdates"`
	Blog            bool `json:"blog"`
	ExclusiveOffers bool `json:"exclusiveOffers"`
}

// SubscribeRequest is the overloaded body of POST /api/newsletter/subscribe.
// Action "verify" carries only a token; otherwise it is a subscription.
type SubscribeRequest struct {
	Action       string                `json:"action"`
	Token        string                `json:"token"`
	Email        string                `json:"email"`
	Name         string                `json:"name"`
	Preferences  NewsletterPreferences `json:"preferences"`
	Frequency    string                `json:"frequency"`
	Categories   []string              `json:"categories"`
	Source       string                `json:"source"`
	AgreeToTerms bool                  `json:"agreeToTerms"`
}

const (
	SubscriberPending  = "pending"
	SubscriberVerified = "verified"
)

type Subscriber struct {
	ID          int                   `json:"id"`
	Email       string                `json:"email"`
	Name        string                `json:"name"`
	Preferences NewsletterPreferences `json:"preferences"`
	Frequency   string                `json:"frequency"`
	Categories  []string              `json:"categories"`
	Source      string                `json:"source"`
	Status      string                `json:"status"`
	CreatedAt   time.Time             `json:"created_at"`
	VerifiedAt  *time.Time            `json:"verified_at,omitempty"`
}
