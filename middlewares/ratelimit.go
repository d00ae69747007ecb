package middlewares

import (
	"sync"
	"time"

	"github.com/Fatima-Benaya/2nConv-ELLW/pkg/resp"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Buckets idle longer than this are dropped on the next sweep, so the
// per-IP map does not grow with every client that ever connected.
const (
	limiterIdleTTL = 3 * time.Minute
	sweepEvery     = time.Minute
)

type clientLimiter struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

type ipRateLimiter struct {
	mu        sync.Mutex
	perMinute int
	buckets   map[string]*clientLimiter
	lastSweep time.Time
}

func newIPRateLimiter(perMinute int) *ipRateLimiter {
	return &ipRateLimiter{
		perMinute: perMinute,
		buckets:   make(map[string]*clientLimiter),
	}
}

func (l *ipRateLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= sweepEvery {
		l.sweep(now)
		l.lastSweep = now
	}

	b, ok := l.buckets[ip]
	if !ok {
		b = &clientLimiter{lim: rate.NewLimiter(rate.Limit(l.perMinute)/60, l.perMinute)}
		l.buckets[ip] = b
	}
	b.lastSeen = now
	return b.lim.AllowN(now, 1)
}

// sweep drops buckets not seen for limiterIdleTTL. Caller holds the lock.
func (l *ipRateLimiter) sweep(now time.Time) {
	for ip, b := range l.buckets {
		if now.Sub(b.lastSeen) >= limiterIdleTTL {
			delete(l.buckets, ip)
		}
	}
}

// RateLimit caps each client IP at perMinute requests for the route group
// it is attached to. Buckets refill continuously and allow a full burst.
func RateLimit(perMinute int) gin.HandlerFunc {
	limiter := newIPRateLimiter(perMinute)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP(), time.Now()) {
			resp.TooManyRequests(c, "Too many requests, try again later.")
			c.Abort()
			return
		}
		c.Next()
	}
}
