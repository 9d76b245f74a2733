package entity

import "time"

// Supplier is the display-shaped business profile of a supplier.
// OwnerID is not echoed by the backend profile endpoints; the session layer
// fills it in from the current user when it derives this shape.
type Supplier struct {
	ID           string
	Name         string
	Description  string
	OwnerID      string
	ContactEmail string
	ContactPhone string
	Address      string
	CreatedAt    time.Time
}
