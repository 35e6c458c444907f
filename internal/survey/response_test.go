package survey

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseDecodesTokens(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Tokens
	}{
		{"array", `{"biggestProblems":["paperwork","training"]}`, Tokens{"paperwork", "training"}},
		{"single string", `{"biggestProblems":"paperwork"}`, Tokens{"paperwork"}},
		{"empty string", `{"biggestProblems":""}`, nil},
		{"null", `{"biggestProblems":null}`, nil},
		{"missing", `{}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Response
			require.NoError(t, json.Unmarshal([]byte(tt.body), &r))
			assert.Equal(t, tt.want, r.BiggestProblems)
		})
	}
}

func TestResponseRejectsNonStringTokens(t *testing.T) {
	var r Response
	assert.Error(t, json.Unmarshal([]byte(`{"biggestProblems":42}`), &r))
}

func TestResponseRejectsDelimiterInTokens(t *testing.T) {
	for _, body := range []string{
		`{"biggestProblems":["a;b","c"]}`,
		`{"biggestProblems":"a;b"}`,
		`{"biggestProblems":["paperwork",""]}`,
	} {
		var r Response
		assert.ErrorIs(t, json.Unmarshal([]byte(body), &r), ErrBadListToken, body)
	}

	var r Response
	assert.ErrorIs(t, r.Toggle(FieldBiggestProblems, "a;b"), ErrBadListToken)
	assert.Empty(t, r.BiggestProblems)
}

func TestTokensMarshalAsArray(t *testing.T) {
	b, err := json.Marshal(Response{})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"biggestProblems":[]`)
}

func TestFieldAndSet(t *testing.T) {
	var r Response
	require.NoError(t, r.Set("hadLegalIssue", Yes))
	assert.Equal(t, Yes, r.HadLegalIssue)
	assert.Equal(t, Yes, r.Field("hadLegalIssue"))
	assert.Equal(t, "", r.Field("nope"))

	err := r.Set("nope", "x")
	assert.ErrorIs(t, err, ErrUnknownField)

	// every column except the timestamp is addressable
	for _, col := range Columns[1:] {
		if col == FieldBiggestProblems {
			continue
		}
		require.NoError(t, r.Set(col, "v"), col)
		assert.Equal(t, "v", r.Field(col), col)
	}
}

func TestToggle(t *testing.T) {
	var r Response
	require.NoError(t, r.Toggle(FieldBiggestProblems, "paperwork"))
	require.NoError(t, r.Toggle(FieldBiggestProblems, "training"))
	assert.Equal(t, Tokens{"paperwork", "training"}, r.BiggestProblems)

	require.NoError(t, r.Toggle(FieldBiggestProblems, "paperwork"))
	assert.Equal(t, Tokens{"training"}, r.BiggestProblems)

	assert.ErrorIs(t, r.Toggle("name", "x"), ErrUnknownField)
}

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "Business Owner", Response{Role: RoleOwner}.RoleLabel())
	assert.Equal(t, "Employee", Response{Role: RoleEmployee}.RoleLabel())
	assert.Equal(t, "Employee", Response{}.RoleLabel())
}
