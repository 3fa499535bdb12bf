package service

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"auditorium/internal/utils"
)

// NotifyService sends booking confirmations through SendGrid.
type NotifyService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewNotifyService(apiKey, fromEmail, fromName string) *NotifyService {
	return &NotifyService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (n *NotifyService) SendBookingConfirmation(toEmail, toName, subject, body string) error {
	log := utils.GetLogger().Sugar()

	if n.apiKey == "" {
		log.Warn("SENDGRID_API_KEY is not configured, confirmation email will not be sent")
		return fmt.Errorf("SENDGRID_API_KEY is not configured")
	}
	if n.fromEmail == "" {
		log.Warn("SENDGRID_FROM_EMAIL is not configured, confirmation email will not be sent")
		return fmt.Errorf("SENDGRID_FROM_EMAIL is not configured")
	}

	from := mail.NewEmail(n.fromName, n.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	client := sendgrid.NewSendClient(n.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email via SendGrid: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		log.Infof("Confirmation email sent to %s (subject: %s), status %d", toEmail, subject, response.StatusCode)
		return nil
	}
	return fmt.Errorf("SendGrid returned non-success status %d: %s", response.StatusCode, response.Body)
}
