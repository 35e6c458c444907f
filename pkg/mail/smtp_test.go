package mail

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = Config{
	SMTPHost:  "smtp.example.com",
	SMTPPort:  "587",
	Username:  "bot@example.com",
	Password:  "secret",
	FromEmail: "bot@example.com",
	FromName:  "Survey Bot",
}

func TestBuildMessage(t *testing.T) {
	date := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	raw := string(BuildMessage(testConfig, Message{
		To:      []string{"hello@example.com"},
		ReplyTo: "visitor@example.com",
		Subject: "New Customer Discovery Response - Employee",
		HTML:    "<p>hi</p>",
	}, date))

	assert.Contains(t, raw, "From: Survey Bot <bot@example.com>\r\n")
	assert.Contains(t, raw, "To: hello@example.com\r\n")
	assert.Contains(t, raw, "Reply-To: visitor@example.com\r\n")
	assert.Contains(t, raw, "Subject: New Customer Discovery Response - Employee\r\n")
	assert.Contains(t, raw, "Date: Tue, 05 Mar 2024 10:00:00 +0000\r\n")
	assert.Contains(t, raw, "Content-Type: text/html; charset=UTF-8\r\n")
	assert.True(t, strings.HasSuffix(raw, "\r\n\r\n<p>hi</p>"))
}

func TestBuildMessageEncodesNonASCIISubject(t *testing.T) {
	raw := string(BuildMessage(testConfig, Message{To: []string{"a@b.com"}, Subject: "🔥 call"}, time.Now()))
	assert.Contains(t, raw, "Subject: =?utf-8?q?")
	assert.NotContains(t, raw, "🔥")
}

func TestSMTPMailerSend(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotBody []byte

	m := NewSMTPMailer(testConfig).WithSendFunc(func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotBody = addr, from, to, msg
		return nil
	})

	err := m.Send(context.Background(), Message{To: []string{"hello@example.com"}, Subject: "s", HTML: "<b>x</b>"})
	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "bot@example.com", gotFrom)
	assert.Equal(t, []string{"hello@example.com"}, gotTo)
	assert.Contains(t, string(gotBody), "<b>x</b>")
}

func TestSMTPMailerErrors(t *testing.T) {
	boom := errors.New("535 auth failed")
	m := NewSMTPMailer(testConfig).WithSendFunc(func(string, smtp.Auth, string, []string, []byte) error {
		return boom
	})

	err := m.Send(context.Background(), Message{To: []string{"hello@example.com"}})
	assert.ErrorIs(t, err, boom)

	err = m.Send(context.Background(), Message{})
	assert.ErrorContains(t, err, "no recipients")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Send(ctx, Message{To: []string{"a@b.com"}}), context.Canceled)
}
