package http

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-page-guard/internal/guard"
	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/internal/utils"
)

// withRateLimit counts the request against the caller's window. Callers are
// keyed by user id once authenticated and by remote IP otherwise. A rejected
// request gets 429 with Retry-After set to the seconds left in the window.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := callerKey(r)

		allowed := h.limiter.Allow(key)
		win, _ := h.limiter.Window(key)

		remaining := max(h.limiter.MaxAttempts()-win.Count, 0)
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(h.limiter.MaxAttempts()))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			wait := win.ResetAt.Sub(h.limiter.Now()).Seconds()
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(max(wait, 1)))))

			logger.FromRequest(r).Warn().Str("caller", key).Msg("api rate limit exceeded")
			writeError(w, r, guard.ErrRateLimited)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func callerKey(r *http.Request) string {
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		return "api:user:" + strconv.FormatInt(userID, 10)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "api:ip:" + host
}
