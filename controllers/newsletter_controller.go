package controllers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"fabric-store/models"
	"fabric-store/services"
)

type NewsletterController struct {
	svc *services.NewsletterService
}

func NewNewsletterController(svc *services.NewsletterService) *NewsletterController {
	return &NewsletterController{svc: svc}
}

func newsletterError(c *gin.Context, status int, message string) {
	c.JSON(status, models.APIError{Error: models.APIErrorBody{Message: message}})
}

// @Summary Subscribe to the newsletter
// @Description Subscribe with preferences, or verify with {"action":"verify","token":"..."}
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param request body models.SubscribeRequest true "Subscription or verification"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/newsletter/subscribe [post]
func (ctrl *NewsletterController) Subscribe(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newsletterError(c, 400, "Invalid request body")
		return
	}

	ctx := context.Background()

	if req.Action == "verify" {
		if err := ctrl.svc.Verify(ctx, req.Token); err != nil {
			newsletterError(c, 400, err.Error())
			return
		}
		c.JSON(200, gin.H{"success": true, "message": "Subscription confirmed"})
		return
	}

	if err := ctrl.svc.Subscribe(ctx, &req); err != nil {
		status := 400
		if errors.Is(err, services.ErrAlreadySubscribed) {
			status = 409
		}
		newsletterError(c, status, err.Error())
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Almost there! Check your inbox to confirm your subscription",
	})
}

// @Summary Verify a subscription
// @Description Link target of the verification email
// @Tags Newsletter
// @Produce json
// @Param token query string true "Verification token"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.APIError
// @Router /newsletter/verify [get]
func (ctrl *NewsletterController) Verify(c *gin.Context) {
	if err := ctrl.svc.Verify(context.Background(), c.Query("token")); err != nil {
		newsletterError(c, 400, err.Error())
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Subscription confirmed. Welcome to Velora Fabrics!"})
}
