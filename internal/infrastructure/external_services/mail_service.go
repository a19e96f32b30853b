package external_services

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
	"github.com/mikiasgoitom/Inkwell/internal/infrastructure/metrics"
)

// smtp attribute
type EmailService struct {
	Host        string
	Port        string
	Username    string
	AppPassword string
	From        string

	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// EmailService factory
func NewEmailService(host, port, username, appPassword, from string) *EmailService {
	if from == "" {
		from = username
	}
	return &EmailService{
		Host:        host,
		Port:        port,
		Username:    username,
		AppPassword: appPassword,
		From:        from,
		sendMail:    smtp.SendMail,
	}
}

// make sure EmailService implements contract.INotificationSender
var _ contract.INotificationSender = (*EmailService)(nil)

var headerBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// headerValue keeps a value on one header line.
func headerValue(v string) string {
	return headerBreaks.Replace(v)
}

// buildMessage renders the RFC 5322 headers and body.
func (es *EmailService) buildMessage(n entity.Notification) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "To: %s\r\n", headerValue(n.To))
	fmt.Fprintf(&b, "From: %s\r\n", headerValue(es.From))
	fmt.Fprintf(&b, "Subject: %s\r\n", headerValue(n.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(n.Body, "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}

// Send delivers the notification over SMTP with PLAIN auth.
func (es *EmailService) Send(ctx context.Context, n entity.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n.To == "" {
		return fmt.Errorf("%w: notification has no recipient", contract.ErrInvalidValue)
	}
	if strings.ContainsAny(n.To, "\r\n") {
		return fmt.Errorf("%w: recipient contains a line break", contract.ErrInvalidValue)
	}
	auth := smtp.PlainAuth("", es.Username, es.AppPassword, es.Host)
	addr := fmt.Sprintf("%s:%s", es.Host, es.Port)
	err := es.sendMail(addr, auth, es.From, []string{n.To}, es.buildMessage(n))
	metrics.ObserveNotification("smtp", err)
	if err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}
	return nil
}
