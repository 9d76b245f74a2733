// Package mapper translates backend wire shapes into the display-oriented
// entities. All functions are pure and total: absent optional fields map to
// defined fallbacks and no input makes them fail.
package mapper

import (
	"fmt"
	"strconv"

	"orderflow/internal/api"
	"orderflow/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// User maps an account record. Display roles are restricted to owner and
// manager; anything else clamps to owner, preserving the behavior the UI
// relies on.
func User(u *api.UserResponse) *entity.User {
	role := entity.Role(u.Role)
	if role != entity.RoleOwner && role != entity.RoleManager {
		role = entity.RoleOwner
	}

	supplierID := ""
	if u.SupplierID != nil {
		supplierID = strconv.FormatInt(*u.SupplierID, 10)
	}

	return &entity.User{
		ID:         strconv.FormatInt(u.ID, 10),
		Email:      u.Email,
		Name:       u.FullName,
		Role:       role,
		SupplierID: supplierID,
		CreatedAt:  u.CreatedAt,
	}
}

// Supplier maps a business profile. OwnerID is left empty; the session
// layer fills it in from the current user because the backend does not echo
// the ownership reference.
func Supplier(s *api.SupplierResponse) *entity.Supplier {
	return &entity.Supplier{
		ID:           strconv.FormatInt(s.ID, 10),
		Name:         s.CompanyName,
		Description:  deref(s.Description),
		OwnerID:      "",
		ContactEmail: s.Email,
		ContactPhone: deref(s.Phone),
		Address:      deref(s.Address),
		CreatedAt:    s.CreatedAt,
	}
}

// Product maps a catalog item. The display price is the discounted price
// when one is present, otherwise the base price; the discount percentage is
// derived as (base - discounted) / base * 100 and is zero without a
// discount or with a zero base price.
func Product(p *api.ProductResponse) *entity.Product {
	price := p.Price
	discount := decimal.Zero
	if p.DiscountPrice != nil {
		price = *p.DiscountPrice
		if p.Price.IsPositive() {
			discount = p.Price.Sub(*p.DiscountPrice).Div(p.Price).Mul(hundred)
		}
	}

	available := p.IsAvailable

	return &entity.Product{
		ID:                strconv.FormatInt(p.ID, 10),
		Name:              p.Name,
		Description:       p.Description,
		CategoryID:        deref(p.Category),
		Price:             price,
		OriginalPrice:     p.Price,
		DiscountPrice:     p.DiscountPrice,
		Discount:          discount,
		Unit:              p.Unit,
		Stock:             int(p.StockQuantity.IntPart()),
		SupplierID:        strconv.FormatInt(p.SupplierID, 10),
		ImageURL:          deref(p.ImageURL),
		LeadTime:          "24 hours",
		DeliveryAvailable: available,
		PickupAvailable:   available,
		CreatedAt:         p.CreatedAt,
	}
}

// Link maps a supplier/consumer link, renaming the wire status vocabulary
// into the display one: "accepted" becomes "approved" and "removed" becomes
// "rejected"; any other value passes through unchanged. Consumer name and
// email are display conveniences the link payload does not carry, so absent
// values fall back to a placeholder name and an empty email.
func Link(l *api.LinkResponse, consumerName, consumerEmail string) *entity.LinkRequest {
	if consumerName == "" {
		consumerName = fmt.Sprintf("Consumer %d", l.ConsumerID)
	}

	return &entity.LinkRequest{
		ID:          strconv.FormatInt(l.ID, 10),
		UserID:      strconv.FormatInt(l.ConsumerID, 10),
		UserName:    consumerName,
		UserEmail:   consumerEmail,
		SupplierID:  strconv.FormatInt(l.SupplierID, 10),
		Status:      LinkStatus(l.Status),
		RequestedAt: l.RequestedAt,
		ReviewedAt:  l.RespondedAt,
	}
}

// LinkStatus renames one wire link status into the display vocabulary.
func LinkStatus(status string) entity.LinkStatus {
	switch status {
	case api.LinkStatusAccepted:
		return entity.LinkStatusApproved
	case api.LinkStatusRemoved:
		return entity.LinkStatusRejected
	default:
		return entity.LinkStatus(status)
	}
}

// Order maps an order, renaming the wire status "cancelled" into the
// display status "rejected". Product names are not part of the order
// payload and are left empty for the presentation layer to fill.
func Order(o *api.OrderResponse, consumerName string) *entity.Order {
	if consumerName == "" {
		consumerName = fmt.Sprintf("Consumer %d", o.ConsumerID)
	}

	items := make([]entity.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, entity.OrderItem{
			ProductID: strconv.FormatInt(item.ProductID, 10),
			Quantity:  item.Quantity,
			Price:     item.UnitPrice,
		})
	}

	return &entity.Order{
		ID:           strconv.FormatInt(o.ID, 10),
		ConsumerID:   strconv.FormatInt(o.ConsumerID, 10),
		ConsumerName: consumerName,
		SupplierID:   strconv.FormatInt(o.SupplierID, 10),
		Items:        items,
		TotalAmount:  o.Total,
		Status:       OrderStatus(o.Status),
		CreatedAt:    o.CreatedAt,
	}
}

// OrderStatus renames one wire order status into the display vocabulary.
func OrderStatus(status string) entity.OrderStatus {
	if status == "cancelled" {
		return entity.OrderStatusRejected
	}

	return entity.OrderStatus(status)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
