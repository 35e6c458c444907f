package survey

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormInlineEmailCheck(t *testing.T) {
	var f Form

	require.NoError(t, f.SetField("email", "a"))
	assert.NotEmpty(t, f.EmailError)

	require.NoError(t, f.SetField("email", "a@b.com"))
	assert.Empty(t, f.EmailError)

	require.NoError(t, f.SetField("email", ""))
	assert.Empty(t, f.EmailError, "empty email is not flagged while typing")
}

func TestFormChoose(t *testing.T) {
	var f Form
	require.NoError(t, f.Choose("role", RoleOwner))
	require.NoError(t, f.Toggle(FieldBiggestProblems, "paperwork"))
	assert.Equal(t, Tokens{"paperwork"}, f.Response.BiggestProblems)

	err := f.Toggle(FieldBiggestProblems, "no-feedback")
	assert.ErrorIs(t, err, ErrInvalidToken)

	require.NoError(t, f.Choose("role", RoleOwner))
	assert.Equal(t, Tokens{"paperwork"}, f.Response.BiggestProblems, "same role keeps selections")

	require.NoError(t, f.Choose("role", RoleEmployee))
	assert.Empty(t, f.Response.BiggestProblems)

	assert.ErrorIs(t, f.Choose("role", "boss"), ErrInvalidToken)
	require.NoError(t, f.Choose("usesWhatsApp", Yes))
	assert.Equal(t, Yes, f.Response.UsesWhatsApp)
}

func TestFormSubmitBlocksInvalidEmail(t *testing.T) {
	for _, email := range []string{"not-an-email", "a@b", "", "a.b@c"} {
		f := Form{Response: Response{Name: "A", Email: email}}
		calls := 0
		err := f.Submit(context.Background(), func(context.Context, Response) error {
			calls++
			return nil
		})
		assert.ErrorIs(t, err, ErrInvalidEmail, email)
		assert.Zero(t, calls, email)
		assert.NotEmpty(t, f.EmailError)
		assert.False(t, f.Submitted)
	}
}

func TestFormSubmitRequiresName(t *testing.T) {
	f := Form{Response: Response{Name: "  ", Email: "a@b.com"}}
	err := f.Submit(context.Background(), func(context.Context, Response) error {
		t.Fatal("send must not be called")
		return nil
	})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestFormSubmitSuccess(t *testing.T) {
	f := Form{Response: Response{Name: "A", Email: "a@b.com", Role: RoleOwner}}
	var got Response
	calls := 0
	err := f.Submit(context.Background(), func(_ context.Context, r Response) error {
		calls++
		assert.True(t, f.Submitting)
		got = r
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, f.Response, got)
	assert.True(t, f.Submitted)
	assert.False(t, f.Submitting)

	// a submitted form does not send again
	require.NoError(t, f.Submit(context.Background(), func(context.Context, Response) error {
		calls++
		return nil
	}))
	assert.Equal(t, 1, calls)
}

func TestFormSubmitFailureIsRetryable(t *testing.T) {
	f := Form{Response: Response{Name: "A", Email: "a@b.com"}, ContactEmail: "hello@operantive.com"}
	boom := errors.New("boom")

	err := f.Submit(context.Background(), func(context.Context, Response) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, f.Submitted)
	assert.False(t, f.Submitting)
	assert.Contains(t, f.SubmitError, "hello@operantive.com")

	require.NoError(t, f.Submit(context.Background(), func(context.Context, Response) error { return nil }))
	assert.True(t, f.Submitted)
	assert.Empty(t, f.SubmitError)
}

func TestFailureMessage(t *testing.T) {
	assert.Equal(t, "Something went wrong sending your answers. Please try again or email us at hello@operantive.com.",
		FailureMessage("hello@operantive.com"))
	assert.Equal(t, "Something went wrong sending your answers. Please try again.", FailureMessage(""))
}
