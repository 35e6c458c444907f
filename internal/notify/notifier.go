// Package notify renders survey responses into the operator notification email
// and hands it to a mailer.
package notify

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/joeblew999/plat-survey/internal/survey"
	"github.com/joeblew999/plat-survey/pkg/mail"
	"github.com/joeblew999/plat-survey/pkg/mjml"
)

// TemplateName is the notification template, by file name without extension.
const TemplateName = "notification"

//go:embed templates/*.mjml
var templateFS embed.FS

// Mailer sends a rendered message.
type Mailer interface {
	Send(ctx context.Context, msg mail.Message) error
}

// Notifier emails each response to a fixed set of recipients.
type Notifier struct {
	renderer *mjml.Renderer
	mailer   Mailer
	to       []string
}

// NewRenderer returns a renderer holding the embedded templates. A non-empty
// dir overrides them with any .mjml files it contains.
func NewRenderer(dir string, opts ...mjml.RendererOption) (*mjml.Renderer, error) {
	r := mjml.NewRenderer(opts...).Funcs(template.FuncMap{"join": strings.Join})

	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, err
	}
	if err := r.LoadTemplatesFromFS(sub); err != nil {
		return nil, fmt.Errorf("load embedded templates: %w", err)
	}
	if dir != "" {
		if err := r.ReplaceTemplatesFromDir(dir); err != nil {
			return nil, fmt.Errorf("load templates from %s: %w", dir, err)
		}
	}
	if !r.HasTemplate(TemplateName) {
		return nil, fmt.Errorf("template %s not found", TemplateName)
	}
	return r, nil
}

// New creates a Notifier.
func New(renderer *mjml.Renderer, mailer Mailer, to ...string) *Notifier {
	return &Notifier{renderer: renderer, mailer: mailer, to: to}
}

// Rendered is a notification ready to send.
type Rendered struct {
	Subject string
	HTML    string
	// Issues are mail-client compatibility warnings. They never block sending.
	Issues []mail.Issue
}

// Render builds the subject and HTML body for r.
func (n *Notifier) Render(r survey.Response, now time.Time) (Rendered, error) {
	start := time.Now()
	view := BuildView(r, now)
	html, err := n.renderer.RenderTemplate(TemplateName, view)
	renderDuration.ObserveFloat(time.Since(start).Seconds(), TemplateName)
	if err != nil {
		return Rendered{}, err
	}
	return Rendered{Subject: view.Subject, HTML: html, Issues: mail.CheckHTML(html)}, nil
}

// Notify renders r and sends it. Replies go to the respondent when their
// address looks valid.
func (n *Notifier) Notify(ctx context.Context, r survey.Response, now time.Time) error {
	out, err := n.Render(r, now)
	if err != nil {
		return fmt.Errorf("render notification: %w", err)
	}
	for _, issue := range out.Issues {
		htmlIssues.Inc(issue.Rule)
		logx.WithContext(ctx).Infow("notification html issue",
			logx.Field("rule", issue.Rule),
			logx.Field("detail", issue.Message))
	}

	msg := mail.Message{To: n.to, Subject: out.Subject, HTML: out.HTML}
	if survey.ValidEmail(r.Email) {
		msg.ReplyTo = r.Email
	}
	if err := n.mailer.Send(ctx, msg); err != nil {
		emailsSent.Inc("error")
		return err
	}
	emailsSent.Inc("sent")
	return nil
}
