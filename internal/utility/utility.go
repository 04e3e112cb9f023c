package utility

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// GetRealIP is a helper function to get the user's real IP address
// It checks proxy headers first.
func GetRealIP(c echo.Context) string {
	// "client, proxy1, proxy2"
	if xForwardedFor := c.Request().Header.Get("X-Forwarded-For"); xForwardedFor != "" {
		ips := strings.Split(xForwardedFor, ",")
		if firstIP := strings.TrimSpace(ips[0]); firstIP != "" {
			return firstIP
		}
	}

	if xRealIP := c.Request().Header.Get("X-Real-IP"); xRealIP != "" {
		return xRealIP
	}

	return c.RealIP()
}

// GenerateSecureToken returns length random bytes, hex encoded.
func GenerateSecureToken(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// IPRateLimiter hands out one token bucket per client IP. Buckets of IPs
// that went quiet expire from the cache.
type IPRateLimiter struct {
	buckets *cache.Cache
	limit   rate.Limit
	burst   int
}

// NewIPRateLimiter allows perMinute requests per IP with the given burst.
// A non-positive perMinute disables limiting.
func NewIPRateLimiter(perMinute, burst int) *IPRateLimiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	if burst < 1 {
		burst = 1
	}
	return &IPRateLimiter{
		buckets: cache.New(15*time.Minute, 30*time.Minute),
		limit:   limit,
		burst:   burst,
	}
}

// Allow consumes a token for ip.
func (l *IPRateLimiter) Allow(ip string) bool {
	return l.bucket(ip).Allow()
}

func (l *IPRateLimiter) bucket(ip string) *rate.Limiter {
	if v, found := l.buckets.Get(ip); found {
		// touch so active clients keep their bucket
		l.buckets.SetDefault(ip, v)
		return v.(*rate.Limiter)
	}
	limiter := rate.NewLimiter(l.limit, l.burst)
	if err := l.buckets.Add(ip, limiter, cache.DefaultExpiration); err != nil {
		// lost a race with another request from the same IP
		if v, found := l.buckets.Get(ip); found {
			return v.(*rate.Limiter)
		}
	}
	return limiter
}
