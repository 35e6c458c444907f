// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package schema

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/joeblew999/plat-survey/internal/survey"
	"github.com/joeblew999/plat-survey/internal/svc"
	"github.com/joeblew999/plat-survey/internal/types"
)

type GetSchemaLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetSchemaLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetSchemaLogic {
	return &GetSchemaLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// GetSchema lists the questions asked for req.Role. Unknown roles get the
// questions shared by every role, which include the role question itself.
func (l *GetSchemaLogic) GetSchema(req *types.SchemaRequest) (resp *types.SchemaResponse, err error) {
	role := req.Role
	if role != survey.RoleOwner && role != survey.RoleEmployee {
		role = ""
	}

	qs := survey.Questions(role)
	resp = &types.SchemaResponse{
		Role:      role,
		Questions: make([]types.SchemaQuestion, 0, len(qs)),
		Columns:   survey.Columns,
	}

	for _, q := range qs {
		sq := types.SchemaQuestion{
			Field:    q.Field,
			Prompt:   q.Prompt,
			Summary:  q.Summary,
			Kind:     string(q.Kind),
			Section:  q.Section,
			Required: q.Required,
		}
		for _, opt := range q.Options {
			sq.Options = append(sq.Options, types.SchemaOption{Value: opt, Label: survey.ChoiceLabel(opt)})
		}
		resp.Questions = append(resp.Questions, sq)
	}

	return resp, nil
}
