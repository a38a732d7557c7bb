package smtpnotify

import (
	"context"
	"fmt"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"go.uber.org/zap"
)

// Notifier delivers decision emails to candidates over authenticated SMTP.
type Notifier struct {
	addr     string
	from     string
	username string
	password string
	logger   *zap.Logger
}

// NewNotifier creates a notifier for the given SMTP submission endpoint.
// addr is host:port, typically port 587 with STARTTLS.
func NewNotifier(addr, from, username, password string, logger *zap.Logger) *Notifier {
	return &Notifier{
		addr:     addr,
		from:     from,
		username: username,
		password: password,
		logger:   logger,
	}
}

// Send delivers a plain-text message to a single recipient.
func (n *Notifier) Send(ctx context.Context, to string, subject string, body string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", n.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	auth := sasl.NewPlainClient("", n.username, n.password)
	if err := smtp.SendMail(n.addr, auth, n.from, []string{to}, strings.NewReader(msg.String())); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}

	n.logger.Info("Sent decision email",
		zap.String("to", to),
		zap.String("subject", subject))

	return nil
}
