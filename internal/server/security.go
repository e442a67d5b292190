package server

import (
	"crypto/subtle"
	"encoding/json"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/JellyBot_Go/internal/logger"
	"github.com/osse101/JellyBot_Go/internal/metrics"
)

// AuthMiddleware requires the shared API key on every route except PublicPaths.
// The bot processes are the only expected callers.
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	want := []byte(apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			got := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(got), want) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := extractIP(r, trustedProxies)
			failures := detector.RecordFailedAuth(ip)
			metrics.HTTPRequestsRejected.WithLabelValues(metrics.ReasonUnauthorized).Inc()

			log := logger.FromContext(r.Context())
			log.Warn(LogMsgAuthFailed,
				"path", r.URL.Path,
				"has_key", got != "",
				"ip", ip,
				"failures_in_window", failures)
			if failures >= FailedAuthAlertCount {
				log.Warn(SecurityAlertFailedAuth, "ip", ip, "count", failures)
			}

			writeError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		})
	}
}

func isPublicPath(path string) bool {
	return slices.ContainsFunc(PublicPaths, func(p string) bool {
		return path == p || strings.HasPrefix(path, p+"/")
	})
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes.
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ipWindow counts one client's traffic within its DetectorWindow.
type ipWindow struct {
	requests   int
	failedAuth int
}

// SuspiciousActivityDetector keeps per-IP counters for a fixed window that
// starts at the client's first request. Entries expire with the window, and at
// most MaxTrackedClients are held so a scan cannot grow memory without bound.
type SuspiciousActivityDetector struct {
	mu      sync.Mutex
	windows *expirable.LRU[string, *ipWindow]
}

// NewSuspiciousActivityDetector creates an empty detector.
func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		windows: expirable.NewLRU[string, *ipWindow](MaxTrackedClients, nil, DetectorWindow),
	}
}

// caller holds s.mu
func (s *SuspiciousActivityDetector) window(ip string) *ipWindow {
	if w, ok := s.windows.Get(ip); ok {
		return w
	}
	w := &ipWindow{}
	s.windows.Add(ip, w)
	return w
}

// RecordFailedAuth counts a rejected key and returns the failures so far in the window.
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.window(ip)
	w.failedAuth++
	return w.failedAuth
}

// RecordRequest counts a request and reports whether the client is still under
// MaxRequestsPerWindow.
func (s *SuspiciousActivityDetector) RecordRequest(ip string) (count int, allowed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.window(ip)
	w.requests++
	return w.requests, w.requests <= MaxRequestsPerWindow
}

// SecurityLoggingMiddleware rejects clients over the request budget.
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)
			count, ok := detector.RecordRequest(ip)
			if !ok {
				metrics.HTTPRequestsRejected.WithLabelValues(metrics.ReasonRateLimited).Inc()
				if count%HighRateLogEvery == 0 {
					logger.FromContext(r.Context()).Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", count)
				}
				writeError(w, http.StatusTooManyRequests, ErrMsgTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the client address. X-Forwarded-For is read only when the
// direct peer is a trusted proxy, and then only its rightmost hop.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if !slices.Contains(trustedProxies, remoteIP) {
		return remoteIP
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

// SecurityHeadersMiddleware sets the hardening headers on every response.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for name, value := range SecurityHeaders {
				h.Set(name, value)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// writeError matches the {"error": "..."} body the API handlers send.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set(HeaderContentTypeJSON, ContentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
