package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"barberpro/utils"

	"go.uber.org/zap"
)

var smsHTTPClient = &http.Client{Timeout: 5 * time.Second}

// SendSMS posts the message to the configured SMS gateway webhook. With no
// webhook configured the message is logged and dropped, which keeps local
// development working without a gateway.
func (n *DefaultNotifier) SendSMS(ctx context.Context, to, message string) error {
	logger := utils.GetLogger()
	logger.Info("Sending SMS",
		zap.String("to", to),
		zap.String("preview", smsPreview(message)),
	)

	if n.SMSWebhookURL == "" {
		logger.Warn("SMS webhook not configured, message dropped", zap.String("to", to))
		return nil
	}

	raw, err := json.Marshal(map[string]string{
		"to":   to,
		"body": message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.SMSWebhookURL, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if n.SMSWebhookToken != "" {
		req.Header.Set("Authorization", "Bearer "+n.SMSWebhookToken)
	}

	resp, err := smsHTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New("sms webhook returned non-2xx")
	}
	return nil
}

// smsPreview truncates a message for log output only; the full message is
// always sent.
func smsPreview(message string) string {
	if len(message) <= 50 {
		return message
	}
	return message[:50] + "..."
}
