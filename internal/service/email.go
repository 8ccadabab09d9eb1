package service

import (
	"context"
	"fmt"
	"strings"

	"concrental-backend/internal/domain"
	"concrental-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

func NewEmailService(apiKey, fromName, fromEmail string) EmailService {
	return &emailService{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (s *emailService) SendOverdueRentalsReminder(ctx context.Context, toEmail, username string, rentals []domain.Rental) error {
	if len(rentals) == 0 {
		return nil
	}

	var lines strings.Builder
	for _, rt := range rentals {
		fmt.Fprintf(&lines, "  %s  equipment %s  due %s\n",
			rt.RentalID, rt.EquipmentID, rt.EndDate.Format("2006-01-02"))
	}

	subject := fmt.Sprintf("%d rental(s) past due", len(rentals))
	body := fmt.Sprintf("Hello %s,\n\nThe following rentals are past their return date:\n\n%s\nPlease follow up with the customers.\n", username, lines.String())

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(username, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	logger.ExternalServiceCall("sendgrid", "send", "to", toEmail, "rentals", len(rentals))
	resp, err := s.client.SendWithContext(ctx, message)
	logger.ExternalServiceResult("sendgrid", "send", err)
	if err != nil {
		return &domain.ExternalServiceError{Service: "sendgrid", Err: err}
	}
	if resp.StatusCode >= 400 {
		return &domain.ExternalServiceError{
			Service: "sendgrid",
			Err:     fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}
	return nil
}
