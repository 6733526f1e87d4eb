package order

// CreateOrderItem is one cart item as submitted by the totem or caixa.
// swagger:model CreateOrderItem
type CreateOrderItem struct {
	MenuItemID string `json:"menu_item_id" example:"1"`
	Quantity   int    `json:"quantity"     example:"2"`
	Notes      string `json:"notes,omitempty" example:"Sem cebola"`
}

// CreateOrderRequest is the order submission payload.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	CustomerName    string            `json:"customer_name" example:"João Silva"`
	CustomerCPF     string            `json:"customer_cpf,omitempty" example:"123.456.789-00"`
	IsDelivery      bool              `json:"is_delivery"`
	TableNumber     *int              `json:"table_number,omitempty" example:"5"`
	DeliveryAddress *string           `json:"delivery_address,omitempty" example:"Rua das Flores, 123"`
	Items           []CreateOrderItem `json:"items"`
}

// UpdateStatusRequest is the status-change payload.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status Status `json:"status" example:"preparing"`
}
