package server

import (
	"context"
	"fmt"
	"net/http"

	gomjml "github.com/preslavrachev/gomjml/mjml"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"
	"github.com/zeromicro/go-zero/core/proc"
	"github.com/zeromicro/go-zero/core/prometheus"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/rest"

	"github.com/joeblew999/plat-survey/internal/config"
	"github.com/joeblew999/plat-survey/internal/errorx"
	"github.com/joeblew999/plat-survey/internal/handler"
	"github.com/joeblew999/plat-survey/internal/logic/submit"
	"github.com/joeblew999/plat-survey/internal/notify"
	"github.com/joeblew999/plat-survey/internal/record"
	"github.com/joeblew999/plat-survey/internal/svc"
	"github.com/joeblew999/plat-survey/internal/ui"
	"github.com/joeblew999/plat-survey/pkg/mail"
	"github.com/joeblew999/plat-survey/pkg/mjml"
)

// Server wraps the survey site and its API.
type Server struct {
	config config.Config
	group  *service.ServiceGroup
}

// New creates a new server instance.
func New(c config.Config) (*Server, error) {
	// Register global error handler for proper HTTP status codes
	errorx.RegisterErrorHandler()

	// Enable go-zero prometheus metrics (required for metric.CounterVec/HistogramVec to record)
	prometheus.Enable()

	// Template loading and sink setup are independent
	var renderer *mjml.Renderer
	var sink *record.Sink

	err := mr.Finish(
		func() error {
			var e error
			renderer, e = notify.NewRenderer(c.Templates.Dir)
			return e
		},
		func() error {
			var e error
			sink, e = record.Open(context.Background(), c.Sheets)
			return e
		},
	)
	if err != nil {
		if sink != nil {
			sink.Close()
		}
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}

	mailer := mail.NewSMTPMailer(c.SMTP.MailConfig())
	notifier := notify.New(renderer, mailer, c.Notify.Recipients()...)

	svcCtx, err := svc.NewServiceContext(c, notifier, sink)
	if err != nil {
		sink.Close()
		return nil, err
	}

	srv, err := rest.NewServer(c.RestConf)
	if err != nil {
		sink.Close()
		return nil, fmt.Errorf("failed to create server: %w", err)
	}
	register(srv, svcCtx)

	proc.AddShutdownListener(func() {
		logx.Infow("Closing response sink", logx.Field("backend", sink.Name))
		if err := sink.Close(); err != nil {
			logx.Errorf("close sink: %v", err)
		}
	})
	proc.AddShutdownListener(func() {
		gomjml.StopASTCacheCleanup()
	})

	group := service.NewServiceGroup()
	group.Add(srv)

	logx.Infow("plat-survey server configured",
		logx.Field("addr", fmt.Sprintf("http://%s:%d", c.Host, c.Port)),
		logx.Field("sink", sink.Name),
		logx.Field("notify", c.Notify.To),
		logx.Field("templates", templatesSource(c.Templates.Dir)),
		logx.Field("rate_limit_per_minute", c.RateLimit.PerMinute),
	)

	return &Server{config: c, group: group}, nil
}

// register mounts the UI, the JSON API, and the metrics endpoint.
func register(srv *rest.Server, svcCtx *svc.ServiceContext) {
	uiHandlers := ui.NewHandlers(svcCtx.Config.Site, submit.Send(svcCtx))
	srv.AddRoutes(uiHandlers.Routes())
	srv.AddRoutes(
		rest.WithMiddlewares([]rest.Middleware{svcCtx.Limiter.HandleWith(uiHandlers.Throttled)}, uiHandlers.SSERoutes()...),
		rest.WithSSE(),
	)

	handler.RegisterHandlers(srv, svcCtx)

	srv.AddRoute(rest.Route{
		Method:  http.MethodGet,
		Path:    "/metrics",
		Handler: promhttp.Handler().ServeHTTP,
	})
}

func templatesSource(dir string) string {
	if dir == "" {
		return "embedded"
	}
	return dir
}

// Start starts all services. Blocks until shutdown signal.
func (s *Server) Start() {
	s.group.Start()
}

// Stop stops all services.
func (s *Server) Stop() {
	s.group.Stop()
}
