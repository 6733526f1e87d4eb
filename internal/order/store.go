package order

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// CreateLine is the submission shape of one line, already resolved against
// the menu (price and name captured at order time).
type CreateLine struct {
	MenuItemID string
	Name       string
	Price      decimal.Decimal
	Quantity   int
	Notes      string
}

// CreateRequest carries everything needed to open an order.
type CreateRequest struct {
	Lines           []CreateLine
	CustomerName    string
	CustomerCPF     string
	IsDelivery      bool
	TableNumber     *int
	DeliveryAddress *string
}

// Filter selects the subset of orders a display renders.
type Filter struct {
	Status Status
	// Delivery narrows by fulfillment mode when non-nil.
	Delivery *bool
}

// Snapshot is an atomic read of the store taken at a single instant.
type Snapshot struct {
	TakenAt time.Time `json:"taken_at"`
	Orders  []Order   `json:"orders"`
}

// Store owns every order in the process. One instance is created at
// startup and injected into each collaborator; all access goes through the
// mutex, so writes are serialized and every read observes a state that
// existed at one instant.
type Store struct {
	mu     sync.Mutex
	seq    int
	orders []*Order
	now    func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// CreateOrder validates req, assigns the next id, computes the total and
// appends the order with status pending. It returns a copy of the stored
// order.
func (s *Store) CreateOrder(req CreateRequest) (Order, error) {
	if err := validate(req); err != nil {
		return Order{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	now := s.now()
	o := &Order{
		ID:              s.seq,
		Status:          StatusPending,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerCPF:     req.CustomerCPF,
		IsDelivery:      req.IsDelivery,
		TableNumber:     req.TableNumber,
		DeliveryAddress: req.DeliveryAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	total := decimal.Zero
	for i, ln := range req.Lines {
		line := Line{
			ID:         fmt.Sprintf("%d-%d", o.ID, i+1),
			MenuItemID: ln.MenuItemID,
			Name:       ln.Name,
			Price:      ln.Price,
			Quantity:   ln.Quantity,
			Notes:      ln.Notes,
		}
		o.Lines = append(o.Lines, line)
		total = total.Add(ln.Price.Mul(decimal.NewFromInt(int64(ln.Quantity))))
	}
	o.Total = total

	s.orders = append(s.orders, o)
	return o.clone(), nil
}

func validate(req CreateRequest) error {
	if len(req.Lines) == 0 {
		return &ValidationError{Reason: "order has no items"}
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return &ValidationError{Reason: "customer name is required"}
	}
	for _, ln := range req.Lines {
		if ln.Quantity < 1 {
			return &ValidationError{Reason: fmt.Sprintf("item %q: quantity must be at least 1", ln.MenuItemID)}
		}
		if ln.Price.IsNegative() {
			return &ValidationError{Reason: fmt.Sprintf("item %q: negative price", ln.MenuItemID)}
		}
	}

	hasTable := req.TableNumber != nil
	hasAddr := req.DeliveryAddress != nil && strings.TrimSpace(*req.DeliveryAddress) != ""
	switch {
	case hasTable && hasAddr:
		return &ValidationError{Reason: "table number and delivery address are mutually exclusive"}
	case !hasTable && !hasAddr:
		return &ValidationError{Reason: "either a table number or a delivery address is required"}
	case req.IsDelivery && !hasAddr:
		return &ValidationError{Reason: "delivery order without delivery address"}
	case !req.IsDelivery && !hasTable:
		return &ValidationError{Reason: "dine-in order without table number"}
	}
	return nil
}

// UpdateStatus applies one transition from the table in transitions.go and
// refreshes UpdatedAt. On any error the order is left untouched.
func (s *Store) UpdateStatus(id int, to Status) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.find(id)
	if o == nil {
		return Order{}, &NotFoundError{ID: id}
	}
	if !CanTransition(o.Status, to) {
		return Order{}, &InvalidTransitionError{From: o.Status, To: to}
	}
	o.Status = to
	o.UpdatedAt = s.now()
	return o.clone(), nil
}

// GetOrder returns a copy of one order.
func (s *Store) GetOrder(id int) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.find(id)
	if o == nil {
		return Order{}, &NotFoundError{ID: id}
	}
	return o.clone(), nil
}

// ListByStatus returns copies of the orders with the given status, in
// creation order (ascending id).
func (s *Store) ListByStatus(st Status) []Order {
	snap, _ := s.Snapshot(Filter{Status: st})
	return snap.Orders
}

// ListByStatusAndMode additionally narrows by fulfillment mode, used by
// the delivery and monitor displays.
func (s *Store) ListByStatusAndMode(st Status, delivery bool) []Order {
	snap, _ := s.Snapshot(Filter{Status: st, Delivery: &delivery})
	return snap.Orders
}

// Snapshot takes an atomic filtered read. The orders slice holds
// independent copies; the error is always nil here and exists for parity
// with remote Sources.
func (s *Store) Snapshot(f Filter) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{TakenAt: s.now(), Orders: []Order{}}
	for _, o := range s.orders {
		if o.Status != f.Status {
			continue
		}
		if f.Delivery != nil && o.IsDelivery != *f.Delivery {
			continue
		}
		snap.Orders = append(snap.Orders, o.clone())
	}
	return snap, nil
}

func (s *Store) find(id int) *Order {
	for _, o := range s.orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}
