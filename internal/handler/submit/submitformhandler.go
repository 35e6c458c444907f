// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package submit

import (
	"encoding/json"
	"net/http"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"

	"github.com/joeblew999/plat-survey/internal/errorx"
	"github.com/joeblew999/plat-survey/internal/logic/submit"
	"github.com/joeblew999/plat-survey/internal/svc"
	"github.com/joeblew999/plat-survey/internal/types"
)

const maxBodyBytes = 64 << 10

// SubmitFormHandler decodes the body itself: every survey field is optional,
// which httpx.Parse would reject.
func SubmitFormHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SubmitFormRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
			logx.WithContext(r.Context()).Errorf("decode submission: %v", err)
			httpx.ErrorCtx(r.Context(), w, errorx.ErrInternal(errorx.MsgSubmissionFailed))
			return
		}

		l := submit.NewSubmitFormLogic(r.Context(), svcCtx)
		resp, err := l.SubmitForm(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
