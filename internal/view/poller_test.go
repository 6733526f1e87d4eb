package view

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Jaomarks/eternapdv/internal/order"
	"github.com/shopspring/decimal"
)

func newStoreWithOrders(t *testing.T, n int) *order.Store {
	t.Helper()
	s := order.NewStore()
	table := 5
	for i := 0; i < n; i++ {
		_, err := s.CreateOrder(order.CreateRequest{
			Lines:        []order.CreateLine{{MenuItemID: "1", Name: "X-Burger", Price: decimal.RequireFromString("18.90"), Quantity: 1}},
			CustomerName: "Cliente",
			TableNumber:  &table,
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func TestPoll_FiltersByStatus(t *testing.T) {
	s := newStoreWithOrders(t, 3)
	if _, err := s.UpdateStatus(2, order.StatusPreparing); err != nil {
		t.Fatal(err)
	}

	p := NewPoller(s, order.Filter{Status: order.StatusPreparing}, time.Second)
	snap, err := p.Poll()
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Orders) != 1 || snap.Orders[0].ID != 2 {
		t.Fatalf("snapshot=%+v", snap.Orders)
	}
	if snap.TakenAt.IsZero() {
		t.Fatal("snapshot sem timestamp")
	}
}

func TestRun_TicksUntilCancelled(t *testing.T) {
	s := newStoreWithOrders(t, 1)
	p := NewPoller(s, order.Filter{Status: order.StatusPending}, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	got := make(chan order.Snapshot, 16)
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Run(ctx, func(snap order.Snapshot, err error) {
			if err != nil {
				t.Error(err)
				return
			}
			got <- snap
		})
	}()

	for i := 0; i < 3; i++ {
		select {
		case snap := <-got:
			if len(snap.Orders) != 1 {
				t.Errorf("tick %d: %d pedidos", i, len(snap.Orders))
			}
		case <-time.After(time.Second):
			t.Fatal("poller parou de entregar snapshots")
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run não retornou após cancel")
	}
}

type failingSource struct{ err error }

func (f failingSource) Snapshot(order.Filter) (order.Snapshot, error) {
	return order.Snapshot{}, f.err
}

func TestRun_KeepsGoingAfterFetchError(t *testing.T) {
	wantErr := errors.New("api fora do ar")
	p := NewPoller(failingSource{err: wantErr}, order.Filter{Status: order.StatusReady}, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan error, 16)
	go p.Run(ctx, func(_ order.Snapshot, err error) { calls <- err })

	for i := 0; i < 2; i++ {
		select {
		case err := <-calls:
			if !errors.Is(err, wantErr) {
				t.Fatalf("err=%v", err)
			}
		case <-time.After(time.Second):
			t.Fatal("loop morreu após erro de fetch")
		}
	}
}
