package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"fabric-store/config"
	"fabric-store/models"
)

var (
	ErrAlreadySubscribed = errors.New("this email is already subscribed")
	ErrInvalidToken      = errors.New("invalid or expired verification token")

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

var validFrequencies = map[string]bool{
	"daily":   true,
	"weekly":  true,
	"monthly": true,
}

type NewsletterService struct {
	email *models.EmailService
}

func NewNewsletterService() *NewsletterService {
	emailService, err := models.NewEmailService()
	if err != nil {
		log.Println("Newsletter emails disabled:", err)
	}
	return &NewsletterService{email: emailService}
}

// ValidateSubscribe checks the subscription payload. Frequency defaults to
// weekly when omitted.
func ValidateSubscribe(req *models.SubscribeRequest) error {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || !emailPattern.MatchString(req.Email) {
		return errors.New("a valid email address is required")
	}
	if !req.AgreeToTerms {
		return errors.New("you must agree to the terms to subscribe")
	}
	if req.Frequency == "" {
		req.Frequency = "weekly"
	}
	if !validFrequencies[req.Frequency] {
		return fmt.Errorf("unknown frequency %q", req.Frequency)
	}
	return nil
}

// Subscribe registers a pending subscriber and sends the verification mail.
// Re-subscribing a pending email re-sends the mail with a fresh token.
func (s *NewsletterService) Subscribe(ctx context.Context, req *models.SubscribeRequest) error {
	if err := ValidateSubscribe(req); err != nil {
		return err
	}

	var status string
	err := models.DB.QueryRow(ctx,
		`SELECT status FROM newsletter_subscribers WHERE email = $1`, req.Email).Scan(&status)
	if err == nil && status == models.SubscriberVerified {
		return ErrAlreadySubscribed
	}

	token := uuid.NewString()
	prefs, _ := json.Marshal(req.Preferences)
	categories, _ := json.Marshal(req.Categories)
	now := time.Now()

	_, err = models.DB.Exec(ctx,
		`INSERT INTO newsletter_subscribers
		 (email, name, preferences, frequency, categories, source, status, verify_token, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 ON CONFLICT (email) DO UPDATE SET
		 name=EXCLUDED.name, preferences=EXCLUDED.preferences, frequency=EXCLUDED.frequency,
		 categories=EXCLUDED.categories, source=EXCLUDED.source, verify_token=EXCLUDED.verify_token`,
		req.Email, req.Name, prefs, req.Frequency, categories, req.Source,
		models.SubscriberPending, token, now)
	if err != nil {
		return fmt.Errorf("failed to store subscription: %w", err)
	}

	s.sendVerification(req.Email, req.Name, token)
	return nil
}

// Verify flips a pending subscriber to verified and sends the welcome mail.
func (s *NewsletterService) Verify(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrInvalidToken
	}

	var email, name string
	err := models.DB.QueryRow(ctx,
		`UPDATE newsletter_subscribers
		 SET status = $1, verified_at = $2, verify_token = NULL
		 WHERE verify_token = $3 AND status = $4
		 RETURNING email, name`,
		models.SubscriberVerified, time.Now(), token, models.SubscriberPending,
	).Scan(&email, &name)
	if err != nil {
		return ErrInvalidToken
	}

	if s.email != nil {
		if err := s.email.SendWelcomeEmail(email, name); err != nil {
			log.Printf("Welcome email to %s failed: %v", email, err)
		}
	}
	return nil
}

func (s *NewsletterService) sendVerification(email, name, token string) {
	if s.email == nil {
		return
	}

	baseURL := "http://localhost:8082"
	if config.AppConfig != nil {
		baseURL = config.AppConfig.BaseURL
	}
	verifyURL := fmt.Sprintf("%s/newsletter/verify?token=%s", baseURL, token)

	if err := s.email.SendVerificationEmail(email, name, verifyURL); err != nil {
		log.Printf("Verification email to %s failed: %v", email, err)
	}
}
