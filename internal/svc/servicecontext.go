// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/rest"

	"github.com/joeblew999/plat-survey/internal/config"
	"github.com/joeblew999/plat-survey/internal/middleware"
	"github.com/joeblew999/plat-survey/internal/survey"
)

// Notifier emails a response to the operator.
type Notifier interface {
	Notify(ctx context.Context, r survey.Response, now time.Time) error
}

// Recorder appends a mapped row to the response sheet.
type Recorder interface {
	Append(ctx context.Context, row []string) error
}

type ServiceContext struct {
	Config    config.Config
	Notifier  Notifier
	Recorder  Recorder
	Now       func() time.Time
	RateLimit rest.Middleware
	// Limiter backs RateLimit; routes that need their own rejection use HandleWith.
	Limiter *middleware.RateLimitMiddleware
}

func NewServiceContext(c config.Config, notifier Notifier, recorder Recorder) (*ServiceContext, error) {
	limiter, err := middleware.NewRateLimitMiddleware(c.RateLimit)
	if err != nil {
		return nil, err
	}

	return &ServiceContext{
		Config:    c,
		Notifier:  notifier,
		Recorder:  recorder,
		Now:       time.Now,
		RateLimit: limiter.Handle,
		Limiter:   limiter,
	}, nil
}
