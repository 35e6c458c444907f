package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(qs []Question) []string {
	out := make([]string, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.Field)
	}
	return out
}

func TestQuestionsByRole(t *testing.T) {
	owner := fields(Questions(RoleOwner))
	assert.Contains(t, owner, "employees")
	assert.Contains(t, owner, "worriedAboutLegal")
	assert.NotContains(t, owner, "stressfulMoments")

	employee := fields(Questions(RoleEmployee))
	assert.Contains(t, employee, "stressfulMoments")
	assert.NotContains(t, employee, "employees")
	assert.NotContains(t, employee, "hadLaborComplaint")

	shared := fields(Questions(""))
	assert.Contains(t, shared, "usesWhatsApp")
	assert.NotContains(t, shared, FieldBiggestProblems)
}

func TestEveryColumnIsAsked(t *testing.T) {
	asked := map[string]bool{}
	for _, q := range AllQuestions() {
		asked[q.Field] = true
	}
	for _, col := range Columns[1:] {
		assert.True(t, asked[col], col)
	}
}

func TestSectionsOrder(t *testing.T) {
	var titles []string
	for _, s := range Sections(RoleOwner) {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{
		SectionContact, SectionOperations, SectionLegal, SectionCommunication, SectionChallenges, SectionFollowUp,
	}, titles)

	for _, s := range Sections(RoleEmployee) {
		assert.NotEqual(t, SectionLegal, s.Title)
	}
}

func TestQuestionForRoleSpecificOptions(t *testing.T) {
	q, ok := QuestionFor(FieldBiggestProblems, RoleOwner)
	require.True(t, ok)
	assert.True(t, q.Accepts("cash-flow"))
	assert.False(t, q.Accepts("no-feedback"))

	q, ok = QuestionFor(FieldBiggestProblems, RoleEmployee)
	require.True(t, ok)
	assert.True(t, q.Accepts("no-feedback"))

	_, ok = QuestionFor(FieldBiggestProblems, "")
	assert.False(t, ok)
}

func TestChoiceLabel(t *testing.T) {
	assert.Equal(t, "⛽ Gas Station / Convenience Store", ChoiceLabel("gas-station"))
	assert.Equal(t, "💰 Cash flow and payments", ChoiceLabel("cash-flow"))
	assert.Equal(t, "something-else", ChoiceLabel("something-else"))

	for _, token := range append(append([]string{}, OwnerProblems...), EmployeeProblems...) {
		assert.NotEqual(t, token, ChoiceLabel(token), token)
	}
}

func TestFormatAnswer(t *testing.T) {
	assert.Equal(t, "✅ Yes", FormatAnswer(Yes))
	assert.Equal(t, "❌ No", FormatAnswer(No))
	assert.Equal(t, "1-5", FormatAnswer("1-5"))
}

func TestAllSections(t *testing.T) {
	var problems int
	var titles []string
	for _, s := range AllSections() {
		titles = append(titles, s.Title)
		for _, q := range s.Questions {
			if q.Field == FieldBiggestProblems {
				problems++
			}
		}
	}
	assert.Equal(t, 2, problems)
	assert.Equal(t, sectionOrder, titles)
}
