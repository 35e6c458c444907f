package notify

import (
	"time"

	"github.com/joeblew999/plat-survey/internal/survey"
)

const (
	notProvided = "Not provided"
	notAnswered = "Not answered"
	noProblems  = "None selected"

	// SubmittedAtLayout formats the footer timestamp.
	SubmittedAtLayout = "Jan 2, 2006, 3:04:05 PM MST"
)

// Line is one labelled answer.
type Line struct {
	Label string
	Value string
}

// Block is a titled group of answers. List holds multi-select answers
// rendered as bullets under ListLabel.
type Block struct {
	Title     string
	Answers   []Line
	ListLabel string
	List      []string
}

// View is the data the notification template renders.
type View struct {
	Subject     string
	Flags       []string
	Contact     []Line
	Sections    []Block
	WantsCall   bool
	SubmittedAt string
}

// BuildView lays out r for the operator. Role-specific sections come from the
// survey schema; anything other than the owner role is shown as an employee.
func BuildView(r survey.Response, now time.Time) View {
	role := survey.RoleEmployee
	if r.IsOwner() {
		role = survey.RoleOwner
	}

	v := View{
		Subject:     survey.Subject(r),
		Flags:       survey.PriorityFlags(r),
		WantsCall:   r.WantsCall(),
		SubmittedAt: now.UTC().Format(SubmittedAtLayout),
	}

	for _, section := range survey.Sections(role) {
		if section.Title == survey.SectionContact {
			v.Contact = contactLines(r, role, section.Questions)
			continue
		}

		block := Block{Title: section.Title}
		for _, q := range section.Questions {
			if q.Kind == survey.KindMulti {
				block.ListLabel = q.Summary
				block.List = problemLabels(r.BiggestProblems)
				continue
			}
			block.Answers = append(block.Answers, Line{Label: q.Summary, Value: answer(r.Field(q.Field))})
		}
		v.Sections = append(v.Sections, block)
	}

	return v
}

func contactLines(r survey.Response, role string, questions []survey.Question) []Line {
	lines := make([]Line, 0, len(questions))
	for _, q := range questions {
		value := r.Field(q.Field)
		switch q.Field {
		case "phone":
			if value == "" {
				value = notProvided
			}
		case "role":
			value = survey.ChoiceLabel(role)
		case "name", "email":
		default:
			if value == "" {
				value = notAnswered
			} else {
				value = survey.ChoiceLabel(value)
			}
		}
		lines = append(lines, Line{Label: q.Summary, Value: value})
	}
	return lines
}

func problemLabels(tokens survey.Tokens) []string {
	if len(tokens) == 0 {
		return []string{noProblems}
	}
	labels := make([]string, len(tokens))
	for i, t := range tokens {
		labels[i] = survey.ChoiceLabel(t)
	}
	return labels
}

func answer(value string) string {
	if value == "" {
		return notAnswered
	}
	return survey.FormatAnswer(value)
}
