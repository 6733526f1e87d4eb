package order

import "testing"

func TestCanTransition_ExhaustiveTable(t *testing.T) {
	all := []Status{StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled}
	allowed := map[[2]Status]bool{
		{StatusPending, StatusPreparing}: true,
		{StatusPreparing, StatusReady}:   true,
		{StatusReady, StatusDelivered}:   true,
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]Status{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s)=%v, esperava %v", from, to, got, want)
			}
		}
	}
}

func TestCanTransition_UnknownStatus(t *testing.T) {
	if CanTransition(Status("foo"), StatusPreparing) {
		t.Fatal("status desconhecido aceito")
	}
	if CanTransition(StatusPending, Status("foo")) {
		t.Fatal("destino desconhecido aceito")
	}
}

func TestTerminal(t *testing.T) {
	for st, want := range map[Status]bool{
		StatusPending:   false,
		StatusPreparing: false,
		StatusReady:     false,
		StatusDelivered: true,
		StatusCancelled: true,
	} {
		if got := Terminal(st); got != want {
			t.Errorf("Terminal(%s)=%v, esperava %v", st, got, want)
		}
	}
}
