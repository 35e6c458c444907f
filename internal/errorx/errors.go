package errorx

import (
	"context"
	"net/http"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// MsgSubmissionFailed is the only failure message clients ever see.
const MsgSubmissionFailed = "Failed to process submission"

// CodeError is a typed error that carries an HTTP status code.
// Logic functions return these so the global error handler can map
// them to the correct HTTP response.
type CodeError struct {
	Code int    `json:"-"`
	Msg  string `json:"error"`
}

func (e *CodeError) Error() string {
	return e.Msg
}

// ErrTooManyRequests returns a 429 error.
func ErrTooManyRequests(msg string) error {
	return &CodeError{Code: http.StatusTooManyRequests, Msg: msg}
}

// ErrInternal returns a 500 error.
func ErrInternal(msg string) error {
	return &CodeError{Code: http.StatusInternalServerError, Msg: msg}
}

// Handle maps err to a status code and a {"error": msg} body. Untyped
// errors are logged and hidden behind the generic submission message.
func Handle(ctx context.Context, err error) (int, any) {
	switch e := err.(type) {
	case *CodeError:
		return e.Code, &CodeError{Code: e.Code, Msg: e.Msg}
	default:
		logx.WithContext(ctx).Errorf("unexpected error: %v", err)
		return http.StatusInternalServerError, &CodeError{
			Code: http.StatusInternalServerError,
			Msg:  MsgSubmissionFailed,
		}
	}
}

// RegisterErrorHandler installs Handle as the global httpx error handler.
func RegisterErrorHandler() {
	httpx.SetErrorHandlerCtx(Handle)
}
