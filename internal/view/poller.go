// Package view implements the polling contract the displays use to obtain
// fresh snapshots of the order store. The kitchen, cashier and delivery
// displays poll every 5s; the monitor every 3s.
package view

import (
	"context"
	"time"

	"github.com/Jaomarks/eternapdv/internal/order"
)

// Source produces atomic snapshots for a display. The in-process store and
// the HTTP client used by remote displays both satisfy it.
type Source interface {
	Snapshot(order.Filter) (order.Snapshot, error)
}

// Poller re-fetches one filtered snapshot on a fixed cadence. It is
// stateless between ticks; any "last seen" diffing belongs to the caller.
type Poller struct {
	src      Source
	filter   order.Filter
	interval time.Duration
}

func NewPoller(src Source, f order.Filter, interval time.Duration) *Poller {
	return &Poller{src: src, filter: f, interval: interval}
}

// Poll fetches one snapshot.
func (p *Poller) Poll() (order.Snapshot, error) {
	return p.src.Snapshot(p.filter)
}

// Run calls fn with a fresh snapshot immediately and then once per
// interval, until ctx is done. A fetch error is delivered to fn with a
// zero snapshot; the loop keeps going.
func (p *Poller) Run(ctx context.Context, fn func(order.Snapshot, error)) {
	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		fn(p.Poll())
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}
