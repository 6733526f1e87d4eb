package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status of an order in its lifecycle.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	// StatusCancelled exists for external systems that set it directly.
	// No transition into or out of it is accepted (see transitions.go).
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Line is one menu item inside an order. Name and Price are copied from
// the menu at order time, so later catalog edits never change past orders.
type Line struct {
	ID         string          `json:"id"`
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	Notes      string          `json:"notes,omitempty"`
}

// Order is a customer's full request. Exactly one of TableNumber and
// DeliveryAddress is set, matching IsDelivery.
type Order struct {
	ID              int             `json:"id"`
	Lines           []Line          `json:"items"`
	Status          Status          `json:"status"`
	Total           decimal.Decimal `json:"total"`
	CustomerName    string          `json:"customer_name"`
	CustomerCPF     string          `json:"customer_cpf,omitempty"`
	TableNumber     *int            `json:"table_number,omitempty"`
	IsDelivery      bool            `json:"is_delivery"`
	DeliveryAddress *string         `json:"delivery_address,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// clone returns an independent copy: displays never share mutable state
// with the store.
func (o *Order) clone() Order {
	cp := *o
	cp.Lines = append([]Line(nil), o.Lines...)
	if o.TableNumber != nil {
		n := *o.TableNumber
		cp.TableNumber = &n
	}
	if o.DeliveryAddress != nil {
		a := *o.DeliveryAddress
		cp.DeliveryAddress = &a
	}
	return cp
}
