package engine

import (
	"context"
	"time"
)

// DefaultPollInterval is a tuning constant, not a contract.
const DefaultPollInterval = 5 * time.Second

// IdleMonitor periodically asks the handle to evict itself. It is owned by
// the process lifecycle: Run returns when the context is canceled, without
// evicting synchronously at shutdown.
type IdleMonitor struct {
	handle   *Handle
	interval time.Duration
}

func NewIdleMonitor(handle *Handle, interval time.Duration) *IdleMonitor {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &IdleMonitor{handle: handle, interval: interval}
}

func (m *IdleMonitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.handle.EvictIfIdle(time.Now())
		}
	}
}
