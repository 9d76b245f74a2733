package entity

import "time"

// LinkStatus is the display vocabulary for supplier/consumer link requests.
// It differs slightly from the wire vocabulary: the backend says "accepted"
// and "removed" where the display side says "approved" and "rejected".
type LinkStatus string

const (
	// LinkStatusPending indicates a link request awaiting review.
	LinkStatusPending LinkStatus = "pending"
	// LinkStatusApproved indicates an accepted link request.
	LinkStatusApproved LinkStatus = "approved"
	// LinkStatusRejected indicates a removed or declined link request.
	LinkStatusRejected LinkStatus = "rejected"
	// LinkStatusBlocked indicates a blocked counterparty.
	LinkStatusBlocked LinkStatus = "blocked"
)

// String returns the string representation of the LinkStatus.
func (s LinkStatus) String() string {
	return string(s)
}

// LinkRequest is the display-shaped supplier/consumer link.
type LinkRequest struct {
	ID          string
	UserID      string // Consumer-side party of the link.
	UserName    string
	UserEmail   string
	SupplierID  string
	Status      LinkStatus
	RequestedAt time.Time
	ReviewedAt  *time.Time
}
