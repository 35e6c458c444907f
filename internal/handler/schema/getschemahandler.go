// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package schema

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"github.com/joeblew999/plat-survey/internal/logic/schema"
	"github.com/joeblew999/plat-survey/internal/svc"
	"github.com/joeblew999/plat-survey/internal/types"
)

func GetSchemaHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SchemaRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := schema.NewGetSchemaLogic(r.Context(), svcCtx)
		resp, err := l.GetSchema(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
