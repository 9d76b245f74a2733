package mapper

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderflow/internal/api"
	"orderflow/internal/domain/entity"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func dp(value string) *decimal.Decimal {
	v := d(value)

	return &v
}

func TestUserMapsIdentifiersToStrings(t *testing.T) {
	supplierID := int64(42)
	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	user := User(&api.UserResponse{
		ID:         17,
		Email:      "m@acme.example",
		FullName:   "Acme Manager",
		Role:       "manager",
		SupplierID: &supplierID,
		CreatedAt:  created,
	})

	assert.Equal(t, "17", user.ID)
	assert.Equal(t, "42", user.SupplierID)
	assert.Equal(t, entity.RoleManager, user.Role)
	assert.Equal(t, "Acme Manager", user.Name)
	assert.Equal(t, created, user.CreatedAt)
}

func TestUserUnknownRoleClampsToOwner(t *testing.T) {
	for _, role := range []string{"sales_representative", "consumer", "admin", ""} {
		user := User(&api.UserResponse{ID: 1, Role: role})
		assert.Equal(t, entity.RoleOwner, user.Role, role)
	}
}

func TestUserWithoutSupplierHasEmptySupplierID(t *testing.T) {
	user := User(&api.UserResponse{ID: 1, Role: "owner"})
	assert.Empty(t, user.SupplierID)
}

func TestSupplierOptionalFieldsFallBackToEmpty(t *testing.T) {
	supplier := Supplier(&api.SupplierResponse{
		ID:          9,
		CompanyName: "Nomad Foods",
		Email:       "hello@nomad.example",
	})

	assert.Equal(t, "9", supplier.ID)
	assert.Equal(t, "Nomad Foods", supplier.Name)
	assert.Equal(t, "hello@nomad.example", supplier.ContactEmail)
	assert.Empty(t, supplier.Description)
	assert.Empty(t, supplier.ContactPhone)
	assert.Empty(t, supplier.Address)
	assert.Empty(t, supplier.OwnerID)
}

func TestProductDiscountPercentage(t *testing.T) {
	product := Product(&api.ProductResponse{
		ID:            5,
		Name:          "Flour 1kg",
		SupplierID:    9,
		Price:         d("100"),
		DiscountPrice: dp("80"),
		Unit:          "kg",
		StockQuantity: d("12.7"),
		IsAvailable:   true,
	})

	assert.True(t, product.Price.Equal(d("80")), product.Price.String())
	assert.True(t, product.OriginalPrice.Equal(d("100")))
	assert.True(t, product.Discount.Equal(d("20")), product.Discount.String())
	assert.Equal(t, 12, product.Stock)
	assert.Equal(t, "24 hours", product.LeadTime)
	assert.True(t, product.DeliveryAvailable)
	assert.True(t, product.PickupAvailable)
}

func TestProductWithoutDiscount(t *testing.T) {
	product := Product(&api.ProductResponse{
		ID:            5,
		Price:         d("49.90"),
		StockQuantity: d("3"),
	})

	assert.True(t, product.Price.Equal(d("49.90")))
	assert.True(t, product.Discount.IsZero())
	assert.Nil(t, product.DiscountPrice)
}

func TestProductZeroBasePriceYieldsZeroDiscount(t *testing.T) {
	product := Product(&api.ProductResponse{
		ID:            5,
		Price:         d("0"),
		DiscountPrice: dp("0"),
	})

	assert.True(t, product.Discount.IsZero())
}

func TestLinkStatusRenames(t *testing.T) {
	assert.Equal(t, entity.LinkStatusApproved, LinkStatus(api.LinkStatusAccepted))
	assert.Equal(t, entity.LinkStatusRejected, LinkStatus(api.LinkStatusRemoved))
	assert.Equal(t, entity.LinkStatusPending, LinkStatus(api.LinkStatusPending))
	assert.Equal(t, entity.LinkStatusBlocked, LinkStatus(api.LinkStatusBlocked))
}

func TestLinkConsumerNameFallback(t *testing.T) {
	requested := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)

	link := Link(&api.LinkResponse{
		ID:          11,
		SupplierID:  9,
		ConsumerID:  31,
		Status:      api.LinkStatusAccepted,
		RequestedAt: requested,
	}, "", "")

	assert.Equal(t, "11", link.ID)
	assert.Equal(t, "31", link.UserID)
	assert.Equal(t, "Consumer 31", link.UserName)
	assert.Empty(t, link.UserEmail)
	assert.Equal(t, entity.LinkStatusApproved, link.Status)
	assert.Nil(t, link.ReviewedAt)
}

func TestOrderCancelledBecomesRejected(t *testing.T) {
	order := Order(&api.OrderResponse{
		ID:         3,
		SupplierID: 9,
		ConsumerID: 31,
		Status:     "cancelled",
		Total:      d("250"),
		Items: []api.OrderItemResponse{
			{ProductID: 5, Quantity: d("2.5"), UnitPrice: d("100")},
		},
	}, "Cafe Aruzhan")

	assert.Equal(t, entity.OrderStatusRejected, order.Status)
	assert.Equal(t, "Cafe Aruzhan", order.ConsumerName)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "5", order.Items[0].ProductID)
	assert.True(t, order.Items[0].Quantity.Equal(d("2.5")))
	assert.True(t, order.TotalAmount.Equal(d("250")))
}

func TestOrderStatusPassthrough(t *testing.T) {
	for _, status := range []string{"pending", "accepted", "completed"} {
		assert.Equal(t, entity.OrderStatus(status), OrderStatus(status))
	}
}
