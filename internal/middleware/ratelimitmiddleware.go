package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/collection"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
	"golang.org/x/time/rate"

	"github.com/joeblew999/plat-survey/internal/config"
	"github.com/joeblew999/plat-survey/internal/errorx"
)

const msgTooManyRequests = "Too many submissions, please try again later"

// RateLimitMiddleware limits requests per client address with a token bucket.
type RateLimitMiddleware struct {
	limit        rate.Limit
	burst        int
	trustForward bool
	limiters     *collection.Cache
}

// NewRateLimitMiddleware returns a limiter, or nil when c.PerMinute is zero.
func NewRateLimitMiddleware(c config.RateLimitConfig) (*RateLimitMiddleware, error) {
	if c.PerMinute <= 0 {
		return nil, nil
	}
	burst := c.Burst
	if burst <= 0 {
		burst = 1
	}

	cache, err := collection.NewCache(10*time.Minute, collection.WithName("ratelimit"))
	if err != nil {
		return nil, err
	}

	return &RateLimitMiddleware{
		limit:        rate.Every(time.Minute / time.Duration(c.PerMinute)),
		burst:        burst,
		trustForward: c.TrustForwardedFor,
		limiters:     cache,
	}, nil
}

// Handle answers limited requests with 429 {"error": ...}.
func (m *RateLimitMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return m.HandleWith(func(w http.ResponseWriter, r *http.Request) {
		httpx.ErrorCtx(r.Context(), w, errorx.ErrTooManyRequests(msgTooManyRequests))
	})(next)
}

// HandleWith returns a middleware that hands limited requests to reject.
// A nil limiter lets everything through.
func (m *RateLimitMiddleware) HandleWith(reject http.HandlerFunc) rest.Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		if m == nil {
			return next
		}

		return func(w http.ResponseWriter, r *http.Request) {
			if !m.limiter(m.clientIP(r)).Allow() {
				reject(w, r)
				return
			}
			next(w, r)
		}
	}
}

// clientIP is the peer address without its port. The first X-Forwarded-For
// entry is used only behind a trusted proxy, since clients can set it freely.
func (m *RateLimitMiddleware) clientIP(r *http.Request) string {
	addr := r.RemoteAddr
	if m.trustForward {
		addr = httpx.GetRemoteAddr(r)
		if first, _, found := strings.Cut(addr, ","); found {
			return strings.TrimSpace(first)
		}
	}
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

func (m *RateLimitMiddleware) limiter(addr string) *rate.Limiter {
	v, _ := m.limiters.Take(addr, func() (any, error) {
		return rate.NewLimiter(m.limit, m.burst), nil
	})
	return v.(*rate.Limiter)
}
