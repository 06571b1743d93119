package notification

import "context"

// Notifier is the delivery collaborator the reminder engine depends on but
// does not implement. Both sends are fire-and-forget from the caller's point
// of view; retries are the gateway's responsibility, not ours.
type Notifier interface {
	SendEmail(ctx context.Context, to, subject, htmlBody string) error
	SendSMS(ctx context.Context, to, message string) error
}

// DefaultNotifier delivers email over SMTP and SMS through a JSON webhook
// gateway.
type DefaultNotifier struct {
	SMTPHost  string
	SMTPPort  int
	EmailUser string
	EmailPass string

	SMSWebhookURL   string
	SMSWebhookToken string
}
