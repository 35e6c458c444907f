// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package submit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/joeblew999/plat-survey/internal/errorx"
	"github.com/joeblew999/plat-survey/internal/survey"
	"github.com/joeblew999/plat-survey/internal/svc"
	"github.com/joeblew999/plat-survey/internal/types"
)

const (
	stepNotify = "notify"
	stepRecord = "record"
)

type SubmitFormLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSubmitFormLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SubmitFormLogic {
	ctx = logx.ContextWithFields(ctx, logx.Field("submission_id", uuid.NewString()))
	return &SubmitFormLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SubmitForm emails the response to the operator and then appends it to the
// sheet. The first failing step aborts; clients only ever see the generic
// failure message.
func (l *SubmitFormLogic) SubmitForm(req *types.SubmitFormRequest) (resp *types.SubmitFormResponse, err error) {
	start := time.Now()
	r := *req
	role := roleLabel(r)

	if err := l.run(r); err != nil {
		l.Errorw("submission failed",
			logx.Field("role", role),
			logx.Field("error", err.Error()),
		)
		submissionsTotal.Inc(role, "error")
		submitDuration.ObserveFloat(time.Since(start).Seconds(), "error")
		return nil, errorx.ErrInternal(errorx.MsgSubmissionFailed)
	}

	l.Infow("submission recorded",
		logx.Field("role", role),
		logx.Field("wants_call", r.WantsCall()),
		logx.Field("flags", len(survey.PriorityFlags(r))),
		logx.Field("duration", time.Since(start).String()),
	)
	submissionsTotal.Inc(role, "ok")
	submitDuration.ObserveFloat(time.Since(start).Seconds(), "ok")

	return &types.SubmitFormResponse{Success: true}, nil
}

// Send adapts the logic to survey.SendFunc.
func Send(svcCtx *svc.ServiceContext) survey.SendFunc {
	return func(ctx context.Context, r survey.Response) error {
		_, err := NewSubmitFormLogic(ctx, svcCtx).SubmitForm(&r)
		return err
	}
}

func (l *SubmitFormLogic) run(r survey.Response) error {
	now := l.svcCtx.Now()

	if err := l.svcCtx.Notifier.Notify(l.ctx, r, now); err != nil {
		stepFailures.Inc(stepNotify)
		return fmt.Errorf("send notification: %w", err)
	}

	if err := l.svcCtx.Recorder.Append(l.ctx, survey.Row(r, now)); err != nil {
		stepFailures.Inc(stepRecord)
		return fmt.Errorf("append row: %w", err)
	}

	return nil
}

func roleLabel(r survey.Response) string {
	if r.IsOwner() {
		return survey.RoleOwner
	}
	return survey.RoleEmployee
}
