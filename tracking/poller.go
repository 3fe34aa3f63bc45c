package tracking

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval matches the tracking view's refresh cadence.
const DefaultInterval = 5 * time.Second

// Poller re-fetches an order's status on a fixed interval for as long as a
// tracking view is open. Start and Stop are explicit; Stop must leave no
// goroutine or ticker behind.
type Poller struct {
	// Interval defaults to DefaultInterval when zero.
	Interval time.Duration
	// Fetch produces the next status.
	Fetch func(ctx context.Context) (Status, error)
	// OnUpdate receives every fetch result, including errors.
	OnUpdate func(Status, error)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Start begins polling: one immediate fetch, then one per interval. Calling
// Start while running is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)
		p.poll(ctx)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.poll(ctx)
			}
		}
	}(p.done)
}

// Stop cancels polling and waits for the polling goroutine to exit.
// Safe to call more than once.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (p *Poller) poll(ctx context.Context) {
	status, err := p.Fetch(ctx)
	if ctx.Err() != nil {
		return
	}
	if p.OnUpdate != nil {
		p.OnUpdate(status, err)
	}
}
