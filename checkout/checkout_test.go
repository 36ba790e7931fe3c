package checkout

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electrohub/storefront-api/models"
)

func cartWith(prices ...float64) []models.CartItem {
	cart := make([]models.CartItem, len(prices))
	for i, price := range prices {
		cart[i] = models.CartItem{
			Product:  models.Product{ID: string(rune('a' + i)), Name: "Item", Price: price},
			Quantity: 1,
		}
	}
	return cart
}

func testAddress() models.Address {
	return models.Address{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Street:   "123 Tech Avenue",
		City:     "San Francisco",
		State:    "CA",
		Zip:      "94103",
		Phone:    "+1 (555) 000-0000",
	}
}

func TestCalculateExampleOrder(t *testing.T) {
	// 49.99 + 129.99 crosses the free-shipping threshold.
	totals := Calculate(cartWith(49.99, 129.99))

	assert.Equal(t, 179.98, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Shipping)
	assert.Equal(t, 14.40, totals.Tax)
	assert.Equal(t, 194.38, totals.Total)
}

func TestCalculateFlatShippingBelowThreshold(t *testing.T) {
	totals := Calculate(cartWith(49.99))

	assert.Equal(t, 49.99, totals.Subtotal)
	assert.Equal(t, 15.0, totals.Shipping)
	assert.Equal(t, 4.0, totals.Tax) // 3.9992 rounds up
	assert.Equal(t, 68.99, totals.Total)
}

func TestCalculateHonorsQuantity(t *testing.T) {
	cart := cartWith(25.00)
	cart[0].Quantity = 4

	totals := Calculate(cart)
	assert.Equal(t, 100.0, totals.Subtotal)
	assert.Equal(t, 15.0, totals.Shipping, "100 exactly is not free shipping")
	assert.Equal(t, 8.0, totals.Tax)
	assert.Equal(t, 123.0, totals.Total)
}

func TestBuildRejectsEmptyCart(t *testing.T) {
	_, err := Build(nil, testAddress(), "card", nil)
	require.ErrorIs(t, err, ErrEmptyCart)

	_, err = Build([]models.CartItem{}, testAddress(), "card", nil)
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestBuildOrderShape(t *testing.T) {
	addr := testAddress()
	order, err := Build(cartWith(49.99, 129.99), addr, "card", nil)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^EH-\d{6}$`), order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.False(t, order.Date.IsZero())
	assert.Equal(t, "Jane Doe", order.CustomerName)
	assert.Equal(t, "jane@example.com", order.CustomerEmail)
	assert.Equal(t, addr, order.BillingAddress)
	assert.Equal(t, addr, order.ShippingAddress, "billing mirrors the single address form")
	assert.Equal(t, "card", order.PaymentMethod)
	assert.Equal(t, 194.38, order.Total)
}

func TestBuildSnapshotsCart(t *testing.T) {
	cart := cartWith(10.00)
	order, err := Build(cart, testAddress(), "card", nil)
	require.NoError(t, err)

	cart[0].Quantity = 50
	assert.Equal(t, 1, order.Items[0].Quantity, "order items must not alias the live cart")
}

func TestBuildRetriesTakenOrderIDs(t *testing.T) {
	calls := 0
	taken := func(id string) bool {
		calls++
		return calls == 1 // veto the first draw only
	}

	order, err := Build(cartWith(10.00), testAddress(), "card", taken)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Regexp(t, regexp.MustCompile(`^EH-\d{6}$`), order.ID)
}

func TestBuildGivesUpWhenAllIDsTaken(t *testing.T) {
	_, err := Build(cartWith(10.00), testAddress(), "card", func(string) bool { return true })
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyCart)
}
