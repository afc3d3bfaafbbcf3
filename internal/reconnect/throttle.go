// Package reconnect gates reconnect attempts to remote device proxies so
// that a flapping device cannot cause a connection storm.
//
// The package does not reconnect anything itself: device hooks ask the
// [Throttle] before each attempt and skip or wait as told.
package reconnect

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/devconf/internal/logger"
	"golang.org/x/time/rate"
)

// IntervalSource supplies the minimum spacing between reconnect attempts.
// *config.Store implements it.
type IntervalSource interface {
	ProxyReconnectInterval() time.Duration
}

type deviceLimiter struct {
	interval time.Duration
	limiter  *rate.Limiter
}

// Throttle keeps one limiter per device. The interval is read from the
// source on every call, so a reloaded configuration applies to the next
// attempt.
type Throttle struct {
	source IntervalSource

	mu      sync.Mutex
	devices map[string]*deviceLimiter

	logger *logger.Logger
}

// NewThrottle returns a Throttle reading its interval from source.
func NewThrottle(source IntervalSource, log *logger.Logger) *Throttle {
	return &Throttle{
		source:  source,
		devices: make(map[string]*deviceLimiter),
		logger:  log.WithComponent("reconnect-throttle"),
	}
}

// Allow reports whether a reconnect attempt to device may start now. The
// first attempt for a device is always allowed.
func (t *Throttle) Allow(device string) bool {
	allowed := t.limiterFor(device).Allow()
	if !allowed {
		t.logger.Debug().Str("device", device).Msg("reconnect attempt throttled")
	}
	return allowed
}

// Wait blocks until a reconnect attempt to device may start or ctx is done.
func (t *Throttle) Wait(ctx context.Context, device string) error {
	if err := t.limiterFor(device).Wait(ctx); err != nil {
		return fmt.Errorf("waiting for reconnect slot of %s: %w", device, err)
	}
	return nil
}

// Forget drops the state kept for device, e.g. after the proxy was removed.
func (t *Throttle) Forget(device string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.devices, device)
}

func (t *Throttle) limiterFor(device string) *rate.Limiter {
	interval := t.source.ProxyReconnectInterval()

	t.mu.Lock()
	defer t.mu.Unlock()

	d, ok := t.devices[device]
	if !ok {
		d = &deviceLimiter{interval: interval, limiter: rate.NewLimiter(limitFor(interval), 1)}
		t.devices[device] = d
		return d.limiter
	}

	if d.interval != interval {
		d.interval = interval
		d.limiter.SetLimit(limitFor(interval))
		t.logger.Debug().Str("device", device).Dur("interval", interval).Msg("reconnect interval changed")
	}
	return d.limiter
}

func limitFor(interval time.Duration) rate.Limit {
	if interval <= 0 {
		return rate.Inf
	}
	return rate.Every(interval)
}
