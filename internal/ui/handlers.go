package ui

import (
	"errors"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"

	"github.com/joeblew999/plat-survey/internal/config"
	"github.com/joeblew999/plat-survey/internal/survey"
)

// Handlers provides HTTP handlers for the UI.
type Handlers struct {
	site config.SiteConfig
	send survey.SendFunc
}

// NewHandlers creates new UI handlers. send delivers a validated response.
func NewHandlers(site config.SiteConfig, send survey.SendFunc) *Handlers {
	return &Handlers{site: site, send: send}
}

// Routes returns the page routes for registration with rest.Server.
func (h *Handlers) Routes() []rest.Route {
	return []rest.Route{
		{Method: http.MethodGet, Path: "/", Handler: h.handleLanding},
	}
}

// SSERoutes returns the Datastar routes (require rest.WithSSE option).
func (h *Handlers) SSERoutes() []rest.Route {
	return []rest.Route{
		{Method: http.MethodPost, Path: submitPath, Handler: h.handleSubmit},
	}
}

func (h *Handlers) handleLanding(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := Landing(h.site).Render(w); err != nil {
		logx.WithContext(r.Context()).Errorf("render landing: %v", err)
	}
}

func (h *Handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var s formSignals
	if err := datastar.ReadSignals(r, &s); err != nil {
		logx.WithContext(r.Context()).Errorf("read signals: %v", err)
		h.patch(w, r, map[string]any{
			"submitting":  false,
			"submitError": h.failureMessage(),
		})
		return
	}

	// The client raises submitting before posting; the server is the one sending.
	form := survey.Form{
		Response:     s.Response,
		Submitted:    s.Submitted,
		ContactEmail: h.site.ContactEmail,
	}

	err := form.Submit(r.Context(), h.send)
	switch {
	case errors.Is(err, survey.ErrNameRequired):
		form.SubmitError = err.Error()
	case err != nil && form.SubmitError == "" && form.EmailError == "":
		form.SubmitError = h.failureMessage()
	}

	h.patch(w, r, map[string]any{
		"submitting":  false,
		"submitted":   form.Submitted,
		"submitError": form.SubmitError,
		"emailError":  form.EmailError,
	})
}

// Throttled answers a rate-limited submit with a signal patch, since the
// browser only leaves its sending state on one.
func (h *Handlers) Throttled(w http.ResponseWriter, r *http.Request) {
	logx.WithContext(r.Context()).Infow("survey submit throttled",
		logx.Field("path", r.URL.Path))
	h.patch(w, r, map[string]any{
		"submitting":  false,
		"submitError": h.failureMessage(),
	})
}

func (h *Handlers) failureMessage() string {
	return survey.FailureMessage(h.site.ContactEmail)
}

func (h *Handlers) patch(w http.ResponseWriter, r *http.Request, signals map[string]any) {
	sse := datastar.NewSSE(w, r)
	if err := sse.MarshalAndPatchSignals(signals); err != nil {
		logx.WithContext(r.Context()).Errorf("datastar patch signals: %v", err)
	}
}
