package contact

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	// submissionWindow is the sliding window the per-IP limit applies to.
	submissionWindow = time.Hour

	limiterCleanupInterval = 10 * time.Minute
)

// submissionLimiter caps contact form submissions per IP inside a
// sliding window. State is in-memory; a restart resets the counters,
// which is acceptable for a single-instance portfolio site.
type submissionLimiter struct {
	mu     sync.Mutex
	byIP   map[string][]time.Time
	limit  int
	window time.Duration
}

func newSubmissionLimiter(limit int) *submissionLimiter {
	l := &submissionLimiter{
		byIP:   make(map[string][]time.Time),
		limit:  limit,
		window: submissionWindow,
	}
	go l.cleanup()
	return l
}

func (l *submissionLimiter) cleanup() {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()
	for range ticker.C {
		l.mu.Lock()
		cutoff := time.Now().Add(-l.window)
		for ip, times := range l.byIP {
			kept := prune(times, cutoff)
			if len(kept) == 0 {
				delete(l.byIP, ip)
			} else {
				l.byIP[ip] = kept
			}
		}
		l.mu.Unlock()
	}
}

// allow records a submission attempt and reports whether it is within
// the limit.
func (l *submissionLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	kept := prune(l.byIP[ip], now.Add(-l.window))

	if len(kept) >= l.limit {
		l.byIP[ip] = kept
		return false
	}

	l.byIP[ip] = append(kept, now)
	return true
}

func prune(times []time.Time, cutoff time.Time) []time.Time {
	var kept []time.Time
	for _, t := range times {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

func (h *Handler) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := extractIP(r)
		if !h.limiter.allow(ip) {
			h.log.Infof("Rate limit hit for %s", ip)
			w.Header().Set("Retry-After", strconv.Itoa(int(submissionWindow.Seconds())))
			h.jsonResponse(w, http.StatusTooManyRequests, map[string]string{"error": "too many submissions, try again later"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// corsMiddleware answers preflights for the contact form. Only POST is
// ever allowed; the origin list comes from configuration, and an empty
// list means a same-origin deployment where the header never matters.
func (h *Handler) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" && h.isAllowedOrigin(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Add("Vary", "Origin")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) isAllowedOrigin(origin string) bool {
	if len(h.allowedOrigins) == 0 {
		return true
	}
	for _, allowed := range h.allowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

// extractIP picks the client address for rate limiting: proxy headers
// first, then the socket address.
func extractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
