package summarizer

import (
	"context"
	"sync"
	"time"
)

// pacer spaces backend calls by a fixed interval to stay under provider
// requests-per-minute ceilings. The interval is global, not per caller, so
// the spacing holds even if slides are processed concurrently.
type pacer struct {
	mu    sync.Mutex
	delay time.Duration
	next  time.Time
}

func newPacer(delay time.Duration) *pacer {
	return &pacer{delay: delay}
}

// wait blocks until the caller's reserved slot arrives. The first call
// passes through immediately.
func (p *pacer) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return nil
	}

	p.mu.Lock()
	now := time.Now()
	slot := p.next
	if slot.Before(now) {
		slot = now
	}
	p.next = slot.Add(p.delay)
	p.mu.Unlock()

	d := time.Until(slot)
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
