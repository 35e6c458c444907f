package config

import (
	"strings"

	"github.com/zeromicro/go-zero/rest"

	"github.com/joeblew999/plat-survey/pkg/mail"
)

// Sink backends for Sheets.Backend.
const (
	BackendGoogle = "google"
	BackendXLSX   = "xlsx"
	BackendSQL    = "sql"
)

// Config holds the server configuration.
type Config struct {
	rest.RestConf

	Site      SiteConfig      `json:",optional"`
	Notify    NotifyConfig    `json:",optional"`
	SMTP      SMTPConfig      `json:",optional"`
	Sheets    SheetsConfig    `json:",optional"`
	Templates TemplatesConfig `json:",optional"`
	RateLimit RateLimitConfig `json:",optional"`
}

// SiteConfig holds landing page settings.
type SiteConfig struct {
	Title        string `json:",default=Operantive"`
	CalendarURL  string `json:",optional"`
	ContactEmail string `json:",default=hello@operantive.com"`
}

// NotifyConfig holds the operator inbox.
type NotifyConfig struct {
	To string `json:",default=hello@operantive.com"`
}

// Recipients splits To on commas.
func (n NotifyConfig) Recipients() []string {
	var out []string
	for _, addr := range strings.Split(n.To, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

// SMTPConfig holds SMTP email delivery settings.
type SMTPConfig struct {
	Host      string `json:",default=smtp.gmail.com"`
	Port      string `json:",default=587"`
	Username  string `json:",optional"`
	Password  string `json:",optional"`
	FromEmail string `json:",optional"`
	FromName  string `json:",default=Operantive Survey"`
}

// MailConfig converts to the transport configuration. The sender falls back
// to the login name as Gmail requires.
func (s SMTPConfig) MailConfig() mail.Config {
	from := s.FromEmail
	if from == "" {
		from = s.Username
	}
	return mail.Config{
		SMTPHost:  s.Host,
		SMTPPort:  s.Port,
		Username:  s.Username,
		Password:  s.Password,
		FromEmail: from,
		FromName:  s.FromName,
	}
}

// SheetsConfig selects and configures the row sink.
type SheetsConfig struct {
	Backend       string `json:",default=google,options=google|xlsx|sql"`
	SpreadsheetID string `json:",optional"`
	Range         string `json:",default=Responses!A:V"`

	// Service account credentials. CredentialsFile and Credentials (raw or
	// base64 JSON key) take precedence over the email/key pair.
	CredentialsFile     string `json:",optional"`
	Credentials         string `json:",optional"`
	ServiceAccountEmail string `json:",optional"`
	PrivateKey          string `json:",optional"`

	XLSXPath string    `json:",default=./.data/responses.xlsx"`
	SQL      SQLConfig `json:",optional"`
}

// SQLConfig holds the SQL sink connection.
type SQLConfig struct {
	Driver     string `json:",default=sqlite,options=sqlite|mysql"`
	DataSource string `json:",default=./.data/plat-survey.db"`
}

// TemplatesConfig holds template directory settings. Empty uses the
// embedded templates.
type TemplatesConfig struct {
	Dir string `json:",optional"`
}

// RateLimitConfig limits submissions per client address. Zero disables it.
type RateLimitConfig struct {
	PerMinute int `json:",default=10"`
	Burst     int `json:",default=5"`
	// TrustForwardedFor keys clients on X-Forwarded-For. Only enable behind a
	// proxy that overwrites the header.
	TrustForwardedFor bool `json:",optional"`
}
