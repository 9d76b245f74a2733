package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the display vocabulary for order states. The backend's
// "cancelled" maps to "rejected" on this side.
type OrderStatus string

const (
	// OrderStatusPending indicates an order awaiting supplier action.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusAccepted indicates an order accepted by the supplier.
	OrderStatusAccepted OrderStatus = "accepted"
	// OrderStatusRejected indicates a rejected or cancelled order.
	OrderStatusRejected OrderStatus = "rejected"
	// OrderStatusCompleted indicates a fulfilled order.
	OrderStatusCompleted OrderStatus = "completed"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// OrderItem is a single line of a display-shaped order.
type OrderItem struct {
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
}

// Order is the display-shaped order.
type Order struct {
	ID           string
	ConsumerID   string
	ConsumerName string
	SupplierID   string
	Items        []OrderItem
	TotalAmount  decimal.Decimal
	Status       OrderStatus
	CreatedAt    time.Time
}
