package order

// transitions is the single source of truth for legal status changes:
// kitchen starts prep, kitchen finishes prep, staff confirms hand-off.
// Anything missing here is rejected, including every edge touching
// cancelled and any backward move.
var transitions = map[Status]Status{
	StatusPending:   StatusPreparing,
	StatusPreparing: StatusReady,
	StatusReady:     StatusDelivered,
}

// CanTransition reports whether the (from, to) pair is in the table.
func CanTransition(from, to Status) bool {
	next, ok := transitions[from]
	return ok && next == to
}

// Terminal reports whether no transition leaves s.
func Terminal(s Status) bool {
	_, ok := transitions[s]
	return !ok
}
