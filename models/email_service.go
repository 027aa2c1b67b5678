package models

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

func (s *EmailService) SendVerificationEmail(toEmail, name, verifyURL string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Confirm your subscription - Velora Fabrics")

	greeting := "Hello,"
	if name != "" {
		greeting = fmt.Sprintf("Hello %s,", name)
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #faf7f2; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .header { text-align: center; margin-bottom: 30px; }
        .logo { font-size: 24px; font-weight: bold; color: #8b5e3c; }
        .cta { display: inline-block; background-color: #8b5e3c; color: white; padding: 14px 28px; border-radius: 6px; text-decoration: none; font-weight: bold; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">Velora Fabrics</div>
        </div>
        <h2 style="color: #333;">Confirm your subscription</h2>
        <p>%s</p>
        <p>Thanks for signing up for the Velora Fabrics newsletter. Please confirm your email address to start receiving new arrivals, deals and exclusive offers:</p>

        <p style="text-align: center; margin: 30px 0;">
            <a class="cta" href="%s">Confirm subscription</a>
        </p>

        <p>If you did not subscribe, you can safely ignore this email.</p>

        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
            <p>&copy; 2024 Velora Fabrics. All rights reserved.</p>
        </div>
    </div>
</body>
</html>
	`, greeting, verifyURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *EmailService) SendWelcomeEmail(toEmail, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Welcome to Velora Fabrics")

	greeting := "Hello,"
	if name != "" {
		greeting = fmt.Sprintf("Hello %s,", name)
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #faf7f2; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        .header { text-align: center; margin-bottom: 30px; }
        .logo { font-size: 24px; font-weight: bold; color: #8b5e3c; }
        .highlight-box { background-color: #faf4ec; padding: 20px; margin: 20px 0; border-radius: 8px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">Velora Fabrics</div>
        </div>
        <h2 style="color: #333;">You're in!</h2>
        <p>%s</p>
        <p>Your subscription is confirmed. You'll be the first to hear about new fabric collections, flash sales and subscriber-only offers.</p>

        <div class="highlight-box">
            <p><strong>Tip:</strong> flash sales are limited stock and move fast. Keep an eye on the deals page.</p>
        </div>

        <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee;">
            <p style="color: #666; font-size: 14px;">Happy sewing,<br>The Velora Fabrics Team</p>
        </div>

        <div class="footer">
            <p>&copy; 2024 Velora Fabrics. All rights reserved.</p>
        </div>
    </div>
</body>
</html>
	`, greeting)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
