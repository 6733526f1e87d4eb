package monitor

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/Jaomarks/eternapdv/internal/order"
)

type countingAlerter struct {
	mu    sync.Mutex
	plays int
}

func (c *countingAlerter) Play() {
	c.mu.Lock()
	c.plays++
	c.mu.Unlock()
}

func (c *countingAlerter) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.plays
}

func readySnap(ids ...int) order.Snapshot {
	snap := order.Snapshot{TakenAt: time.Now()}
	for _, id := range ids {
		snap.Orders = append(snap.Orders, order.Order{ID: id, Status: order.StatusReady, CustomerName: "Cliente"})
	}
	return snap
}

func TestObserve_AnnouncesEachOrderExactlyOnce(t *testing.T) {
	a := &countingAlerter{}
	n := NewNotifier(a)

	// tick 1: nada pronto
	if got := n.Observe(readySnap()); got != nil {
		t.Fatalf("anunciou %d sem pedido pronto", got.ID)
	}
	// tick 2: pedido 1 fica pronto
	got := n.Observe(readySnap(1))
	if got == nil || got.ID != 1 {
		t.Fatalf("tick 2: %+v", got)
	}
	// ticks seguintes: 1 continua pronto, sem novo anúncio
	for i := 0; i < 3; i++ {
		if got := n.Observe(readySnap(1)); got != nil {
			t.Fatalf("pedido 1 anunciado de novo no tick %d", i+3)
		}
	}
	if a.count() != 1 {
		t.Fatalf("alertas=%d, esperava 1", a.count())
	}
}

func TestObserve_TwoReadyInSameTick_OnlyFirstAnnounced(t *testing.T) {
	a := &countingAlerter{}
	n := NewNotifier(a)

	n.Observe(readySnap())
	got := n.Observe(readySnap(2, 3))
	if got == nil || got.ID != 2 {
		t.Fatalf("anunciado=%+v, esperava pedido 2", got)
	}
	// o pedido 3 foi absorvido: nunca mais é "novo"
	if got := n.Observe(readySnap(2, 3)); got != nil {
		t.Fatalf("pedido %d anunciado tardiamente", got.ID)
	}
	if a.count() != 1 {
		t.Fatalf("alertas=%d, esperava 1", a.count())
	}
}

func TestObserve_DeliveredOrderLeavesSeenSet(t *testing.T) {
	n := NewNotifier(nil)

	n.Observe(readySnap(1))
	// entregue: some do snapshot de prontos
	n.Observe(readySnap())
	// um pedido novo com outro id é anunciado normalmente
	if got := n.Observe(readySnap(5)); got == nil || got.ID != 5 {
		t.Fatalf("got=%+v", got)
	}
}

func TestCalloutAt_Phases(t *testing.T) {
	n := NewNotifier(nil)
	base := time.Date(2025, 4, 7, 12, 0, 0, 0, time.UTC)
	n.now = func() time.Time { return base }

	n.Observe(readySnap(1))

	if c, st := n.CalloutAt(base.Add(time.Second)); st != CalloutShowing || c.Order.ID != 1 {
		t.Fatalf("1s: state=%v callout=%+v", st, c)
	}
	if _, st := n.CalloutAt(base.Add(3500 * time.Millisecond)); st != CalloutLeaving {
		t.Fatalf("3.5s: state=%v, esperava saindo", st)
	}
	if _, st := n.CalloutAt(base.Add(4500 * time.Millisecond)); st != CalloutNone {
		t.Fatalf("4.5s: state=%v, esperava limpo", st)
	}
	// depois de limpo, continua limpo
	if _, st := n.CalloutAt(base.Add(10 * time.Second)); st != CalloutNone {
		t.Fatalf("10s: state=%v", st)
	}
}

func TestSetSound_MuteSuppressesAlert_UnmuteFiresTestChime(t *testing.T) {
	a := &countingAlerter{}
	n := NewNotifier(a)

	n.SetSound(false)
	n.Observe(readySnap(1))
	if a.count() != 0 {
		t.Fatalf("alerta tocou mutado: %d", a.count())
	}

	n.SetSound(true) // dispara um chime de teste na hora
	if a.count() != 1 {
		t.Fatalf("alertas=%d, esperava 1 chime de teste", a.count())
	}
	// reativar som já ativo não toca de novo
	n.SetSound(true)
	if a.count() != 1 {
		t.Fatalf("alertas=%d após SetSound redundante", a.count())
	}
}

func TestBell_WritesOneBellPerTone(t *testing.T) {
	var buf bytes.Buffer
	Bell{W: &buf, Delay: time.Millisecond}.Play()
	if got := buf.String(); got != "\a\a\a" {
		t.Fatalf("saída=%q", got)
	}
}
