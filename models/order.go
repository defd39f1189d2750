package models

import "time"

const (
	OrderStatusReceived  = "received"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusServed    = "served"
)

const (
	OrderTypeDineIn   = "dine-in"
	OrderTypeTakeout  = "takeout"
	OrderTypeDelivery = "delivery"
)

// OrderStatuses lists the board columns in presentation order.
var OrderStatuses = []string{
	OrderStatusReceived,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusServed,
}

func IsOrderStatus(s string) bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func IsOrderType(s string) bool {
	return s == OrderTypeDineIn || s == OrderTypeTakeout || s == OrderTypeDelivery
}

type Order struct {
	ID              int         `json:"id"`
	OrderNumber     string      `json:"order_number"`
	CustomerName    string      `json:"customer_name"`
	TableNumber     string      `json:"table_number"`
	OrderType       string      `json:"order_type"`
	Status          string      `json:"status"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"total_amount"`
	SpecialRequests string      `json:"special_requests,omitempty"`
	CustomerID      *int        `json:"customer_id,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID              int     `json:"id"`
	OrderID         int     `json:"order_id"`
	MenuItemID      int     `json:"menu_item_id"`
	MenuItemName    string  `json:"menu_item_name"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	SpecialRequests string  `json:"special_requests,omitempty"`
}

// Elapsed is the age of an order on the board, measured from its last mutation.
type Elapsed struct {
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}
