package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fabric-store/models"
)

func TestValidateSubscribeNormalizesEmail(t *testing.T) {
	req := &models.SubscribeRequest{
		Email:        "  Jane.Doe@Example.COM ",
		AgreeToTerms: true,
	}

	require.NoError(t, ValidateSubscribe(req))
	assert.Equal(t, "jane.doe@example.com", req.Email)
	assert.Equal(t, "weekly", req.Frequency)
}

func TestValidateSubscribeRejectsBadEmail(t *testing.T) {
	for _, email := range []string{"", "not-an-email", "missing@domain", "spaces in@mail.com"} {
		req := &models.SubscribeRequest{Email: email, AgreeToTerms: true}
		assert.Error(t, ValidateSubscribe(req), "email %q", email)
	}
}

func TestValidateSubscribeRequiresTermsAgreement(t *testing.T) {
	req := &models.SubscribeRequest{Email: "jane@example.com"}
	assert.Error(t, ValidateSubscribe(req))
}

func TestValidateSubscribeFrequency(t *testing.T) {
	for _, freq := range []string{"daily", "weekly", "monthly"} {
		req := &models.SubscribeRequest{Email: "jane@example.com", AgreeToTerms: true, Frequency: freq}
		assert.NoError(t, ValidateSubscribe(req), "frequency %q", freq)
	}

	req := &models.SubscribeRequest{Email: "jane@example.com", AgreeToTerms: true, Frequency: "hourly"}
	assert.Error(t, ValidateSubscribe(req))
}
