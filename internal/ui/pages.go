package ui

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	h "maragu.dev/gomponents/html"

	"github.com/joeblew999/plat-survey/internal/config"
	"github.com/joeblew999/plat-survey/internal/survey"
)

const submitPath = "/ui/submit"

// Landing renders the marketing page with the embedded survey.
func Landing(site config.SiteConfig) g.Node {
	return Layout(site.Title,
		data.Signals(initialSignals()),

		h.Section(h.Class("hero"),
			h.H1(g.Text("Less chaos running your small business")),
			h.P(g.Text("We're talking to owners and staff about what makes day-to-day work harder than it should be. "+
				"Book a short call or answer a few quick questions.")),
			h.Div(h.Class("actions"),
				g.If(site.CalendarURL != "",
					h.A(h.Class("button"), h.Href(site.CalendarURL), h.Target("_blank"), h.Rel("noopener noreferrer"),
						g.Text("Schedule a call"),
					),
				),
				h.Button(h.Class("button secondary"), h.Type("button"),
					data.On("click", "$showSurvey = true"),
					data.Show("!$showSurvey"),
					g.Text("Take the survey"),
				),
			),
		),

		h.Section(h.ID("survey"), h.Class("survey"),
			data.Show("$showSurvey && !$submitted"),
			SurveyForm(site.ContactEmail),
		),

		h.Section(h.Class("survey thank-you"),
			data.Show("$submitted"),
			h.H2(g.Text("Thank you!")),
			h.P(g.Text("We got your answers and will be in touch if you asked for a call.")),
		),
	)
}

// SurveyForm renders every question from the schema. Role-specific questions
// are shown once the matching role is chosen. contactEmail is offered when a
// submit fails.
func SurveyForm(contactEmail string) g.Node {
	var nodes []g.Node
	for _, section := range survey.AllSections() {
		nodes = append(nodes, sectionNode(section))
	}

	return h.Form(
		data.On("submit", submitExpr()),
		data.On("datastar-fetch", fetchFailedExpr(contactEmail)),
		data.Attr("aria-busy", "$submitting"),
		g.Group(nodes),

		h.Button(h.Type("submit"),
			data.Attr("disabled", "$submitting"),
			h.Span(data.Show("!$submitting"), g.Text("Send my answers")),
			h.Span(data.Show("$submitting"),
				h.Span(h.Class("loading-spinner")),
				g.Text(" Sending..."),
			),
		),
		h.Div(h.Class("submit-error"), h.Role("alert"),
			data.Show("$submitError"),
			data.Text("$submitError"),
		),
	)
}

func sectionNode(s survey.Section) g.Node {
	var qs []g.Node
	for _, q := range s.Questions {
		qs = append(qs, questionNode(q))
	}
	roles := sectionRoles(s)
	return h.FieldSet(
		g.If(roles != nil, data.Show(roleCondition(roles))),
		h.H2(g.Text(s.Title)),
		g.Group(qs),
	)
}

func questionNode(q survey.Question) g.Node {
	id := "q-" + q.Field
	if len(q.Roles) > 0 {
		id += "-" + strings.Join(q.Roles, "-")
	}

	var input g.Node
	switch q.Kind {
	case survey.KindText:
		input = h.Input(h.ID(id), h.Type("text"), data.Bind(q.Field))
	case survey.KindEmail:
		input = g.Group{
			h.Input(h.ID(id), h.Type("email"), data.Bind(q.Field),
				data.On("input", emailCheckExpr()),
				data.Attr("aria-invalid", "!!$emailError"),
			),
			h.Div(h.Class("field-error"), data.Show("$emailError"), data.Text("$emailError")),
		}
	case survey.KindSelect:
		opts := []g.Node{h.Option(h.Value(""), g.Text("Choose one..."))}
		for _, o := range q.Options {
			opts = append(opts, h.Option(h.Value(o), g.Text(survey.ChoiceLabel(o))))
		}
		input = h.Select(h.ID(id), data.Bind(q.Field), g.Group(opts))
	case survey.KindMulti:
		input = choiceButtons(q, toggleExpr)
	default:
		input = choiceButtons(q, chooseExpr)
	}

	label := h.Label(h.For(id), g.Text(q.Prompt))
	if q.Kind == survey.KindChoice || q.Kind == survey.KindYesNo || q.Kind == survey.KindMulti {
		label = h.Span(h.Class("prompt"), g.Text(q.Prompt))
	}

	return h.Div(h.Class("question"),
		g.If(len(q.Roles) > 0, data.Show(roleCondition(q.Roles))),
		label,
		input,
	)
}

func choiceButtons(q survey.Question, onClick func(field, token string) string) g.Node {
	var buttons []g.Node
	for _, o := range q.Options {
		buttons = append(buttons, h.Button(h.Type("button"), h.Class("choice"),
			data.On("click", onClick(q.Field, o)),
			data.Class("selected", selectedExpr(q, o)),
			g.Text(survey.ChoiceLabel(o)),
		))
	}
	return h.Div(h.Class("choices"), g.Group(buttons))
}

func chooseExpr(field, token string) string {
	if field == "role" {
		return fmt.Sprintf("if ($role !== %[1]s) { $%[2]s = [] }; $role = %[1]s", jsString(token), survey.FieldBiggestProblems)
	}
	return fmt.Sprintf("$%s = %s", field, jsString(token))
}

func toggleExpr(field, token string) string {
	t := jsString(token)
	return fmt.Sprintf("$%[1]s = $%[1]s.includes(%[2]s) ? $%[1]s.filter(p => p !== %[2]s) : [...$%[1]s, %[2]s]", field, t)
}

func selectedExpr(q survey.Question, token string) string {
	if q.Kind == survey.KindMulti {
		return fmt.Sprintf("$%s.includes(%s)", q.Field, jsString(token))
	}
	return fmt.Sprintf("$%s === %s", q.Field, jsString(token))
}

// emailRegex is the shared email pattern as a JavaScript literal.
func emailRegex() string {
	return "/" + survey.EmailPattern + "/"
}

func emailCheckExpr() string {
	return fmt.Sprintf("$emailError = ($email && !%s.test($email)) ? %s : ''",
		emailRegex(), jsString(survey.ErrInvalidEmail.Error()))
}

// submitExpr re-checks the email and name before posting. Nothing is sent
// while either is invalid. The post is never retried.
func submitExpr() string {
	return fmt.Sprintf(`evt.preventDefault();
if (!%s.test($email)) { $emailError = %s }
else if (!$name.trim()) { $submitError = %s }
else { $emailError = ''; $submitError = ''; $submitting = true; @post('%s', {retry: 'never'}) };`,
		emailRegex(),
		jsString(survey.ErrInvalidEmail.Error()),
		jsString(survey.ErrNameRequired.Error()),
		submitPath,
	)
}

// fetchFailedExpr releases the form when a submit ends without a signal patch,
// as on a network error or a response that is not an event stream.
func fetchFailedExpr(contactEmail string) string {
	return fmt.Sprintf("if ($submitting && ['error', 'retries-failed', 'finished'].includes(evt.detail.type)) "+
		"{ $submitting = false; $submitError = %s }",
		jsString(survey.FailureMessage(contactEmail)))
}

func roleCondition(roles []string) string {
	if len(roles) == 0 {
		return "true"
	}
	conds := make([]string, len(roles))
	for i, r := range roles {
		conds[i] = "$role === " + jsString(r)
	}
	return strings.Join(conds, " || ")
}

// sectionRoles returns the roles a section is shown for, or nil when any of
// its questions is shared.
func sectionRoles(s survey.Section) []string {
	var roles []string
	for _, q := range s.Questions {
		if len(q.Roles) == 0 {
			return nil
		}
		for _, r := range q.Roles {
			if !contains(roles, r) {
				roles = append(roles, r)
			}
		}
	}
	return roles
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func jsString(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s) + "'"
}
