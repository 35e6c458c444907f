package errorx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleCodeError(t *testing.T) {
	code, body := Handle(context.Background(), ErrTooManyRequests("slow down"))
	assert.Equal(t, http.StatusTooManyRequests, code)

	b, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"slow down"}`, string(b))
}

func TestHandleUntypedError(t *testing.T) {
	code, body := Handle(context.Background(), errors.New("dial tcp: refused"))
	assert.Equal(t, http.StatusInternalServerError, code)

	b, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Failed to process submission"}`, string(b))
}

func TestCodeErrorMessage(t *testing.T) {
	assert.Equal(t, "slow down", ErrTooManyRequests("slow down").Error())

	var ce *CodeError
	require.True(t, errors.As(ErrInternal(MsgSubmissionFailed), &ce))
	assert.Equal(t, http.StatusInternalServerError, ce.Code)
}
