package middleware

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// NewRateLimiter returns a middleware that enforces a per-client token
// bucket on POST requests: r tokens per second with the given burst. Reads
// are never limited — the dashboard polls freely; only submissions are
// throttled. Clients over the limit receive 429 Too Many Requests.
//
// Clients are keyed by r.RemoteAddr, so wire this after chimiddleware.RealIP
// to key on the real client IP rather than the proxy's.
func NewRateLimiter(r rate.Limit, burst int) func(http.Handler) http.Handler {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limiterFor := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[key]
		if !ok {
			l = rate.NewLimiter(r, burst)
			limiters[key] = l
		}
		return l
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.Method != http.MethodPost {
				next.ServeHTTP(w, req)
				return
			}
			if !limiterFor(clientKey(req.RemoteAddr)).Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}

// clientKey strips the ephemeral port so every connection from one client
// shares a limiter. RealIP may have already replaced RemoteAddr with a bare
// IP, in which case it is used as-is.
func clientKey(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
