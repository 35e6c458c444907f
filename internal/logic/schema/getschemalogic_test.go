package schema

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeblew999/plat-survey/internal/survey"
	"github.com/joeblew999/plat-survey/internal/svc"
	"github.com/joeblew999/plat-survey/internal/types"
)

func fields(resp *types.SchemaResponse) []string {
	out := make([]string, 0, len(resp.Questions))
	for _, q := range resp.Questions {
		out = append(out, q.Field)
	}
	return out
}

func TestGetSchemaOwner(t *testing.T) {
	l := NewGetSchemaLogic(context.Background(), &svc.ServiceContext{})
	resp, err := l.GetSchema(&types.SchemaRequest{Role: survey.RoleOwner})
	require.NoError(t, err)

	assert.Equal(t, survey.RoleOwner, resp.Role)
	assert.Contains(t, fields(resp), "employees")
	assert.Contains(t, fields(resp), "hadLaborComplaint")
	assert.NotContains(t, fields(resp), "stressfulMoments")
	assert.Equal(t, survey.Columns, resp.Columns)

	for _, q := range resp.Questions {
		if q.Field == "business" {
			assert.Equal(t, types.SchemaOption{Value: "grocery", Label: "🛒 Grocery / Market"}, q.Options[4])
		}
	}
}

func TestGetSchemaUnknownRole(t *testing.T) {
	l := NewGetSchemaLogic(context.Background(), &svc.ServiceContext{})
	resp, err := l.GetSchema(&types.SchemaRequest{Role: "manager"})
	require.NoError(t, err)

	assert.Empty(t, resp.Role)
	got := fields(resp)
	assert.Contains(t, got, "role")
	assert.Contains(t, got, "usesWhatsApp")
	assert.NotContains(t, got, "employees")
	assert.NotContains(t, got, survey.FieldBiggestProblems)
}
