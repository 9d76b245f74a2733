package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the display-shaped catalog item.
// Price is the display price: the discounted price when one is present,
// otherwise the base price. Discount is a percentage derived from the two.
type Product struct {
	ID                string
	Name              string
	Description       string
	CategoryID        string
	Price             decimal.Decimal  // Display price.
	OriginalPrice     decimal.Decimal  // Base price before any discount.
	DiscountPrice     *decimal.Decimal // Discounted price when present.
	Discount          decimal.Decimal  // Discount percentage, zero when no discount.
	Unit              string
	Stock             int
	SupplierID        string
	ImageURL          string
	LeadTime          string
	DeliveryAvailable bool
	PickupAvailable   bool
	CreatedAt         time.Time
}
