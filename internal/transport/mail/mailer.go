package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/gomail.v2"
)

// Mailer delivers the account lifecycle emails over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(host string, port int, username, password, from string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(strings.TrimSpace(host), port, username, password),
		from:   strings.TrimSpace(from),
	}
}

// Verify dials the SMTP server once so a misconfigured transport shows up at
// boot instead of on the first signup.
func (m *Mailer) Verify() error {
	if m.from == "" {
		return errors.New("mailer missing from address")
	}
	closer, err := m.dialer.Dial()
	if err != nil {
		return err
	}
	return closer.Close()
}

func (m *Mailer) SendVerification(ctx context.Context, to, link string, expiresIn time.Duration) error {
	body := fmt.Sprintf(
		`<p>Verify your email address to complete the signup and sign in to your account.</p>`+
			`<p>This link <b>expires in %s</b>.</p>`+
			`<p>Press <a href=%q>here</a> to verify.</p>`,
		formatTTL(expiresIn), link,
	)
	return m.send(ctx, to, "Verify your email address", body)
}

func (m *Mailer) SendPasswordReset(ctx context.Context, to, link string, expiresIn time.Duration) error {
	body := fmt.Sprintf(
		`<p>We received a request to reset the password for your account.</p>`+
			`<p>This link <b>expires in %s</b>.</p>`+
			`<p>Press <a href=%q>here</a> to choose a new password.</p>`+
			`<p>If you did not request this, you can ignore this email.</p>`,
		formatTTL(expiresIn), link,
	)
	return m.send(ctx, to, "Password reset request", body)
}

func (m *Mailer) send(ctx context.Context, to, subject, htmlBody string) error {
	if m == nil || m.from == "" {
		return errors.New("mailer not configured")
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}

func formatTTL(d time.Duration) string {
	if d >= time.Hour && d%time.Hour == 0 {
		hours := int(d.Hours())
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	minutes := int(d.Minutes())
	if minutes == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", minutes)
}
