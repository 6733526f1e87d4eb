package order

import "fmt"

// ValidationError rejects a malformed order submission. The store is left
// unchanged.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "invalid order: " + e.Reason }

// NotFoundError reports an order id absent from the store.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("order %d not found", e.ID) }

// InvalidTransitionError reports a status change not permitted by the
// transition table.
type InvalidTransitionError struct {
	From, To Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition %s -> %s", e.From, e.To)
}
