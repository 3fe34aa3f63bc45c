package tracking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// collector gathers poller updates safely across goroutines.
type collector struct {
	mu      sync.Mutex
	updates []Status
	errs    []error
}

func (c *collector) onUpdate(s Status, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.errs = append(c.errs, err)
		return
	}
	c.updates = append(c.updates, s)
}

func (c *collector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.updates) + len(c.errs)
}

func TestPoller_FetchesImmediatelyThenOnInterval(t *testing.T) {
	var c collector
	p := &Poller{
		Interval: 10 * time.Millisecond,
		Fetch: func(context.Context) (Status, error) {
			return Status{Order_id: "ORD-0001-AA", Current_step: 2}, nil
		},
		OnUpdate: c.onUpdate,
	}

	p.Start(context.Background())
	defer p.Stop()

	deadline := time.After(2 * time.Second)
	for c.count() < 3 {
		select {
		case <-deadline:
			t.Fatalf("got %d updates before deadline, want at least 3", c.count())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestPoller_StopHaltsUpdates(t *testing.T) {
	var c collector
	p := &Poller{
		Interval: 5 * time.Millisecond,
		Fetch: func(context.Context) (Status, error) {
			return Status{}, nil
		},
		OnUpdate: c.onUpdate,
	}

	p.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	p.Stop()

	n := c.count()
	if n == 0 {
		t.Fatal("no updates before Stop")
	}
	time.Sleep(30 * time.Millisecond)
	if got := c.count(); got != n {
		t.Errorf("updates after Stop: %d -> %d", n, got)
	}
}

func TestPoller_StopIsIdempotent(t *testing.T) {
	p := &Poller{
		Interval: time.Millisecond,
		Fetch:    func(context.Context) (Status, error) { return Status{}, nil },
	}
	p.Start(context.Background())
	p.Stop()
	p.Stop() // must not panic or block

	// and the poller can be started again
	p.Start(context.Background())
	p.Stop()
}

func TestPoller_StopWithoutStart(t *testing.T) {
	p := &Poller{Fetch: func(context.Context) (Status, error) { return Status{}, nil }}
	p.Stop()
}

func TestPoller_DeliversErrors(t *testing.T) {
	var c collector
	p := &Poller{
		Interval: 5 * time.Millisecond,
		Fetch: func(context.Context) (Status, error) {
			return Status{}, ErrTrackingUnavailable
		},
		OnUpdate: c.onUpdate,
	}

	p.Start(context.Background())
	defer p.Stop()

	deadline := time.After(2 * time.Second)
	for {
		c.mu.Lock()
		n := len(c.errs)
		c.mu.Unlock()
		if n > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("no error delivered")
		case <-time.After(2 * time.Millisecond):
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !errors.Is(c.errs[0], ErrTrackingUnavailable) {
		t.Errorf("err = %v, want ErrTrackingUnavailable", c.errs[0])
	}
}

func TestPoller_ParentContextCancelStopsPolling(t *testing.T) {
	var c collector
	p := &Poller{
		Interval: 5 * time.Millisecond,
		Fetch:    func(context.Context) (Status, error) { return Status{}, nil },
		OnUpdate: c.onUpdate,
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	time.Sleep(15 * time.Millisecond)
	cancel()
	time.Sleep(15 * time.Millisecond)

	n := c.count()
	time.Sleep(30 * time.Millisecond)
	if got := c.count(); got != n {
		t.Errorf("updates after parent cancel: %d -> %d", n, got)
	}
	p.Stop()
}
