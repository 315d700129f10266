package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"storefront-service/logger"
	"storefront-service/models"
	"storefront-service/repository"
	"storefront-service/sender"
)

// OrderNotifier sends the post-checkout confirmation. Callers treat it
// as best-effort: a returned error must never fail the order.
type OrderNotifier interface {
	OrderConfirmation(ctx context.Context, sessionID, name, email, orderID string, total float64) error
}

const orderConfirmedTemplate = `
<html>
  <body>
    <p>Hi {{.Name}},</p>
    <p>Your order <strong>{{.OrderID}}</strong> has been placed.</p>
    <p>Total amount: ₹{{printf "%.2f" .Total}}</p>
    <p>Thank you for shopping with us!</p>
  </body>
</html>`

const otpSMSTemplate = `Your login code is {{.Code}}. It expires in {{.Minutes}} minutes.`

type NotificationService struct {
	repo        repository.NotificationRepository
	emailSender sender.EmailSender
	smsSender   sender.SMSSender
	orderTmpl   *template.Template
	otpTmpl     *template.Template
}

// NewNotificationService accepts nil senders; sends over a missing
// channel are recorded as failed and skipped.
func NewNotificationService(
	repo repository.NotificationRepository,
	emailSender sender.EmailSender,
	smsSender sender.SMSSender,
) *NotificationService {
	return &NotificationService{
		repo:        repo,
		emailSender: emailSender,
		smsSender:   smsSender,
		orderTmpl:   template.Must(template.New("order_confirmed").Parse(orderConfirmedTemplate)),
		otpTmpl:     template.Must(template.New("otp_sms").Parse(otpSMSTemplate)),
	}
}

// OrderConfirmation emails the customer their order id and total.
func (s *NotificationService) OrderConfirmation(ctx context.Context, sessionID, name, email, orderID string, total float64) error {
	var body bytes.Buffer
	if err := s.orderTmpl.Execute(&body, struct {
		Name    string
		OrderID string
		Total   float64
	}{name, orderID, total}); err != nil {
		return fmt.Errorf("failed to render confirmation email: %w", err)
	}

	if s.emailSender == nil {
		s.record(ctx, sessionID, email, models.TypeOrderConfirmed, models.ChannelEmail,
			fmt.Errorf("email sender not configured"))
		return fmt.Errorf("email sender not configured")
	}

	_, err := s.emailSender.SendEmail(ctx, email, "Order Confirmed!", body.String())
	s.record(ctx, sessionID, email, models.TypeOrderConfirmed, models.ChannelEmail, err)
	return err
}

// OTPCode texts a login code to the given phone number.
func (s *NotificationService) OTPCode(ctx context.Context, phone, code string, minutes int) error {
	var body bytes.Buffer
	if err := s.otpTmpl.Execute(&body, struct {
		Code    string
		Minutes int
	}{code, minutes}); err != nil {
		return fmt.Errorf("failed to render OTP message: %w", err)
	}

	if s.smsSender == nil {
		s.record(ctx, "", phone, models.TypeOTPSMS, models.ChannelSMS,
			fmt.Errorf("sms sender not configured"))
		return fmt.Errorf("sms sender not configured")
	}

	_, err := s.smsSender.SendSMS(ctx, phone, body.String())
	s.record(ctx, "", phone, models.TypeOTPSMS, models.ChannelSMS, err)
	return err
}

// record persists the attempt. Log storage is itself best-effort.
func (s *NotificationService) record(ctx context.Context, sessionID, recipient, notifType, channel string, sendErr error) {
	entry := &models.NotificationLog{
		SessionID: sessionID,
		Recipient: recipient,
		Type:      notifType,
		Channel:   channel,
		Status:    models.StatusSent,
	}
	if sendErr != nil {
		entry.Status = models.StatusFailed
		entry.Error = sendErr.Error()
	}

	if s.repo == nil {
		return
	}
	if err := s.repo.SaveLog(ctx, entry); err != nil {
		logger.Log.Warn("Failed to save notification log",
			zap.String("type", notifType),
			zap.String("recipient", recipient),
			zap.Error(err),
		)
	}
}
