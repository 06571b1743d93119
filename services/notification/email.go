package notification

import (
	"context"

	"barberpro/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SendEmail sends an HTML email through the configured SMTP relay.
func (n *DefaultNotifier) SendEmail(_ context.Context, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.EmailUser)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(n.SMTPHost, n.SMTPPort, n.EmailUser, n.EmailPass)

	if err := d.DialAndSend(m); err != nil {
		return err
	}

	utils.GetLogger().Info("Email sent",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}
