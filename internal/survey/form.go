package survey

import (
	"context"
	"fmt"
	"strings"
)

// Form is the in-progress survey as the visitor edits it. It mirrors the
// browser-side signals so the same rules can be applied on the server.
type Form struct {
	Response Response

	EmailError  string
	Submitting  bool
	Submitted   bool
	SubmitError string

	// ContactEmail is offered as a manual fallback when submission fails.
	ContactEmail string
}

// SendFunc delivers a completed response.
type SendFunc func(ctx context.Context, r Response) error

// SetField overwrites a text or select field. Editing the email re-runs the
// inline check, which never blocks typing.
func (f *Form) SetField(field, value string) error {
	if err := f.Response.Set(field, value); err != nil {
		return err
	}
	if field == "email" {
		f.checkEmail()
	}
	return nil
}

// Choose sets a choice field to a literal token. Switching role drops selected
// problems since each role has its own option set.
func (f *Form) Choose(field, token string) error {
	if q, ok := QuestionFor(field, f.Response.Role); ok && !q.Accepts(token) {
		return fmt.Errorf("%w: %q for %s", ErrInvalidToken, token, field)
	}
	prevRole := f.Response.Role
	if err := f.Response.Set(field, token); err != nil {
		return err
	}
	if field == "role" && token != prevRole {
		f.Response.BiggestProblems = nil
	}
	return nil
}

// Toggle flips membership of token in a multi-select field.
func (f *Form) Toggle(field, token string) error {
	if q, ok := QuestionFor(field, f.Response.Role); ok && !q.Accepts(token) {
		return fmt.Errorf("%w: %q for %s", ErrInvalidToken, token, field)
	}
	return f.Response.Toggle(field, token)
}

// Validate is the blocking pre-submit check.
func (f *Form) Validate() error {
	if strings.TrimSpace(f.Response.Name) == "" {
		return ErrNameRequired
	}
	if !ValidEmail(f.Response.Email) {
		f.EmailError = ErrInvalidEmail.Error()
		return ErrInvalidEmail
	}
	f.EmailError = ""
	return nil
}

// Submit validates and then hands the response to send exactly once. Nothing is
// sent when validation fails. A send failure leaves the form editable with a
// message pointing at the fallback contact address.
func (f *Form) Submit(ctx context.Context, send SendFunc) error {
	if f.Submitting || f.Submitted {
		return nil
	}
	if err := f.Validate(); err != nil {
		return err
	}

	f.Submitting = true
	f.SubmitError = ""
	err := send(ctx, f.Response)
	f.Submitting = false
	if err != nil {
		f.SubmitError = f.failureMessage()
		return err
	}

	f.Submitted = true
	return nil
}

func (f *Form) checkEmail() {
	if f.Response.Email != "" && !ValidEmail(f.Response.Email) {
		f.EmailError = ErrInvalidEmail.Error()
		return
	}
	f.EmailError = ""
}

func (f *Form) failureMessage() string {
	return FailureMessage(f.ContactEmail)
}

// FailureMessage is shown when a submission could not be delivered. It points
// at contactEmail as a manual fallback when one is configured.
func FailureMessage(contactEmail string) string {
	msg := "Something went wrong sending your answers. Please try again"
	if contactEmail != "" {
		return msg + " or email us at " + contactEmail + "."
	}
	return msg + "."
}
