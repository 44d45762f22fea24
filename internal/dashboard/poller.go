package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Poller owns the market-data refresh timer. At most one poll loop is
// running at any instant: selecting a symbol always stops the previous
// loop before starting the next one.
type Poller struct {
	interval time.Duration
	fetch    func(ctx context.Context, symbol string)

	mu     sync.Mutex
	cancel context.CancelFunc

	logger *logrus.Logger
}

func NewPoller(
	interval time.Duration,
	fetch func(ctx context.Context, symbol string),
	logger *logrus.Logger,
) *Poller {
	return &Poller{
		interval: interval,
		fetch:    fetch,
		logger:   logger,
	}
}

// Select switches the poll loop to symbol: the running loop, if any, is
// cancelled first, then a new loop fetches immediately and keeps fetching
// every interval. An empty symbol just stops polling.
func (p *Poller) Select(symbol string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	if symbol == "" {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel

	p.logger.WithField("symbol", symbol).Debug("poll started")

	go p.loop(ctx, symbol)
}

// Clear stops any running poll loop without fetching.
func (p *Poller) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
}

// Active reports whether a poll loop is currently running.
func (p *Poller) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.cancel != nil
}

func (p *Poller) stopLocked() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

func (p *Poller) loop(ctx context.Context, symbol string) {
	p.fetch(ctx, symbol)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.WithField("symbol", symbol).Debug("poll stopped")
			return
		case <-ticker.C:
			p.fetch(ctx, symbol)
		}
	}
}
