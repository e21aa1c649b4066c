package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/2beens/fitcoach/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=middleware_test

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

// RateLimit rejects requests whose key (as returned by keyFn) ran out of tokens.
func RateLimit(
	rateLimiter RequestRateLimiter,
	keyFn func(r *http.Request) string,
	metricsManager *metrics.Manager,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, retryAfter, err := rateLimiter.Allow(r.Context(), keyFn(r))
			if err != nil {
				log.Errorf("rate limit [%s]: %s", r.URL.Path, err)
				http.Error(w, "rate limit internal error", http.StatusInternalServerError)
				return
			}

			if allowed {
				next.ServeHTTP(w, r)
				return
			}

			if metricsManager != nil {
				metricsManager.CounterRateLimitedRequests.Inc()
			}
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(math.Ceil(retryAfter.Seconds()))))
			http.Error(
				w,
				fmt.Sprintf("retry after %.0f seconds", math.Ceil(retryAfter.Seconds())),
				http.StatusTooManyRequests,
			)
		})
	}
}

const (
	limiterPruneThreshold = 1024
	limiterIdleTimeout    = 30 * time.Minute
)

type keyedLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// PerMinuteLimiter is an in-memory token bucket per key.
type PerMinuteLimiter struct {
	mutex         sync.Mutex
	allowedPerMin int
	limiters      map[string]*keyedLimiter
	now           func() time.Time
}

func NewPerMinuteLimiter(allowedPerMin int) *PerMinuteLimiter {
	return &PerMinuteLimiter{
		allowedPerMin: allowedPerMin,
		limiters:      make(map[string]*keyedLimiter),
		now:           time.Now,
	}
}

func (l *PerMinuteLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	if l.allowedPerMin <= 0 {
		return false, 0, fmt.Errorf("invalid limit: %d per minute", l.allowedPerMin)
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	now := l.now()
	if len(l.limiters) >= limiterPruneThreshold {
		l.prune(now)
	}

	kl, ok := l.limiters[key]
	if !ok {
		kl = &keyedLimiter{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.allowedPerMin)), l.allowedPerMin),
		}
		l.limiters[key] = kl
	}
	kl.lastSeen = now

	reservation := kl.limiter.ReserveN(now, 1)
	if !reservation.OK() {
		return false, 0, fmt.Errorf("limiter burst too small for key %s", key)
	}
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return false, delay, nil
	}

	return true, 0, nil
}

func (l *PerMinuteLimiter) prune(now time.Time) {
	for key, kl := range l.limiters {
		if now.Sub(kl.lastSeen) > limiterIdleTimeout {
			delete(l.limiters, key)
		}
	}
}
