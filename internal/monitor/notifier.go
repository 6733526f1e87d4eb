// Package monitor implements the ready-order announcement logic of the
// monitor display: diff consecutive ready snapshots, alert exactly once
// per order.
package monitor

import (
	"sync"
	"time"

	"github.com/Jaomarks/eternapdv/internal/order"
)

// Alerter plays the ready chime.
type Alerter interface {
	Play()
}

const (
	// The callout stays fully visible for 3s and fades out for 1s,
	// matching the overlay timing of the display.
	CalloutVisible = 3 * time.Second
	CalloutExit    = 1 * time.Second
)

// CalloutState is the phase of the visual announcement.
type CalloutState int

const (
	CalloutNone CalloutState = iota
	CalloutShowing
	CalloutLeaving
)

// Callout names the customer and order being announced.
type Callout struct {
	Order   order.Order
	ShownAt time.Time
}

// Notifier detects orders that became ready since the previous poll and
// drives one alert per order. previousReady is private diff state: run one
// Notifier per monitor display, never share instances.
type Notifier struct {
	mu        sync.Mutex
	alerter   Alerter
	sound     bool
	prevReady map[int]struct{}
	callout   *Callout
	now       func() time.Time
}

func NewNotifier(a Alerter) *Notifier {
	return &Notifier{
		alerter:   a,
		sound:     true,
		prevReady: make(map[int]struct{}),
		now:       time.Now,
	}
}

// Observe processes one ready-status snapshot and returns the order to
// announce this tick, or nil. When several orders became ready in the same
// poll interval only the first in creation order is announced; the rest
// are absorbed into the seen set without an alert. An absorbed id never
// comes back, so no order is announced twice.
func (n *Notifier) Observe(snap order.Snapshot) *order.Order {
	n.mu.Lock()
	defer n.mu.Unlock()

	current := make(map[int]struct{}, len(snap.Orders))
	var announce *order.Order
	for i := range snap.Orders {
		o := snap.Orders[i]
		current[o.ID] = struct{}{}
		if _, seen := n.prevReady[o.ID]; seen {
			continue
		}
		if announce == nil || o.ID < announce.ID {
			cp := o
			announce = &cp
		}
	}
	// Replace unconditionally, alert or not.
	n.prevReady = current

	if announce == nil {
		return nil
	}
	if n.sound && n.alerter != nil {
		n.alerter.Play()
	}
	n.callout = &Callout{Order: *announce, ShownAt: n.now()}
	return announce
}

// CalloutAt reports the announcement on screen at time t and its phase.
func (n *Notifier) CalloutAt(t time.Time) (Callout, CalloutState) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.callout == nil {
		return Callout{}, CalloutNone
	}
	elapsed := t.Sub(n.callout.ShownAt)
	switch {
	case elapsed < CalloutVisible:
		return *n.callout, CalloutShowing
	case elapsed < CalloutVisible+CalloutExit:
		return *n.callout, CalloutLeaving
	default:
		n.callout = nil
		return Callout{}, CalloutNone
	}
}

// SetSound toggles the audio alert. Turning the sound on fires one test
// chime immediately, independent of the poll cycle.
func (n *Notifier) SetSound(enabled bool) {
	n.mu.Lock()
	wasOff := !n.sound
	n.sound = enabled
	a := n.alerter
	n.mu.Unlock()

	if enabled && wasOff && a != nil {
		a.Play()
	}
}

func (n *Notifier) SoundEnabled() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sound
}
