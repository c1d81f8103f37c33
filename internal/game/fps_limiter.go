package game

import (
	"time"

	"typer3d/internal/config"
)

// IdleFPS caps the frame rate while the scene is paused or over.
const IdleFPS = 30

// spinWindow is how early the limiter stops sleeping and starts spinning.
const spinWindow = 200 * time.Microsecond

// FPSLimiter provides high-precision frame rate limiting
type FPSLimiter struct {
	next  time.Time
	limit func() int
}

// NewFPSLimiter follows config.GetFPSLimit.
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{limit: config.GetFPSLimit}
}

// Target returns the frame period for the current limit, or 0 when unlimited.
func (f *FPSLimiter) Target(idle bool) time.Duration {
	limit := f.limit()
	if idle && (limit <= 0 || limit > IdleFPS) {
		limit = IdleFPS
	}
	if limit <= 0 {
		return 0
	}
	return time.Second / time.Duration(limit)
}

// Wait blocks until the next frame is due.
func (f *FPSLimiter) Wait(idle bool) {
	target := f.Target(idle)
	if target == 0 {
		f.next = time.Time{}
		return
	}

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}

	// Resync after a hitch instead of racing to catch up
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
