// Package mail provides email sending and validation utilities.
package mail

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"os"
	"strings"
	"time"
)

// Config holds configuration for sending emails via SMTP.
type Config struct {
	SMTPHost  string
	SMTPPort  string
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// Message is a single HTML email.
type Message struct {
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// SendFunc matches smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer delivers messages through an authenticated SMTP relay.
type SMTPMailer struct {
	config   Config
	sendMail SendFunc
	now      func() time.Time
}

// NewSMTPMailer creates a mailer for config.
func NewSMTPMailer(config Config) *SMTPMailer {
	return &SMTPMailer{config: config, sendMail: smtp.SendMail, now: time.Now}
}

// WithSendFunc replaces the transport, mainly for tests.
func (m *SMTPMailer) WithSendFunc(fn SendFunc) *SMTPMailer {
	m.sendMail = fn
	return m
}

// Send delivers msg. net/smtp has no cancellation, so ctx is only checked
// before dialing.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(msg.To) == 0 {
		return fmt.Errorf("send %q: no recipients", msg.Subject)
	}

	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.SMTPHost)
	body := BuildMessage(m.config, msg, m.now())

	if err := m.sendMail(m.config.SMTPHost+":"+m.config.SMTPPort, auth, m.config.FromEmail, msg.To, body); err != nil {
		return fmt.Errorf("smtp send to %s: %w", strings.Join(msg.To, ", "), err)
	}
	return nil
}

// BuildMessage renders msg as an RFC 5322 message with an HTML body.
func BuildMessage(config Config, msg Message, date time.Time) []byte {
	var b strings.Builder

	from := config.FromEmail
	if config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", config.FromName), config.FromEmail)
	}

	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&b, "Date: %s\r\n", date.Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)

	return []byte(b.String())
}

// GmailConfig returns a pre-configured Config for Gmail SMTP.
// Requires GMAIL_USER and GMAIL_APP_PASSWORD environment variables.
func GmailConfig() Config {
	return Config{
		SMTPHost:  "smtp.gmail.com",
		SMTPPort:  "587",
		Username:  os.Getenv("GMAIL_USER"),
		Password:  os.Getenv("GMAIL_APP_PASSWORD"),
		FromEmail: os.Getenv("GMAIL_USER"),
		FromName:  "Operantive Survey",
	}
}
