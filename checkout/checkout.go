// Package checkout builds immutable orders from a cart snapshot, a
// completed address and a payment method.
package checkout

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/electrohub/storefront-api/models"
)

// ErrEmptyCart is returned when an order is requested with no items.
// Navigation keeps checkout unreachable with an empty cart, so hitting
// this means a caller bug rather than a user mistake.
var ErrEmptyCart = errors.New("cannot place an order with an empty cart")

const (
	// FreeShippingThreshold is the subtotal above which shipping is free.
	FreeShippingThreshold = 100.0
	// FlatShippingRate applies below the free-shipping threshold.
	FlatShippingRate = 15.0
	// TaxRate is the flat 8% tax applied to the subtotal.
	TaxRate = 0.08

	idAttempts = 8
)

// Totals are the derived amounts of an order, rounded to cents.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Calculate derives the totals for a cart. Shipping is a flat 15.00
// unless the subtotal exceeds 100.
func Calculate(cart []models.CartItem) Totals {
	var subtotal float64
	for _, item := range cart {
		subtotal += item.Price * float64(item.Quantity)
	}
	subtotal = roundCents(subtotal)

	shipping := FlatShippingRate
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}
	tax := roundCents(subtotal * TaxRate)

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    roundCents(subtotal + shipping + tax),
	}
}

// Build produces a pending order from the cart. The items are an
// independent snapshot, the billing address mirrors the single address
// form, and taken (optional) vetoes already-used order ids so a random
// collision retries instead of overwriting history.
func Build(cart []models.CartItem, address models.Address, paymentMethod string, taken func(id string) bool) (models.Order, error) {
	if len(cart) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	id, err := newOrderID(taken)
	if err != nil {
		return models.Order{}, err
	}

	totals := Calculate(cart)
	return models.Order{
		ID:              id,
		Items:           models.CloneCart(cart),
		Subtotal:        totals.Subtotal,
		Tax:             totals.Tax,
		Shipping:        totals.Shipping,
		Total:           totals.Total,
		Status:          models.OrderStatusPending,
		Date:            time.Now().UTC(),
		CustomerName:    address.FullName,
		CustomerEmail:   address.Email,
		BillingAddress:  address,
		ShippingAddress: address,
		PaymentMethod:   paymentMethod,
	}, nil
}

// newOrderID draws "EH-" plus six random digits, retrying on collision.
func newOrderID(taken func(string) bool) (string, error) {
	for i := 0; i < idAttempts; i++ {
		id := fmt.Sprintf("EH-%06d", 100000+rand.Intn(900000))
		if taken == nil || !taken(id) {
			return id, nil
		}
	}
	return "", errors.New("could not allocate a unique order id")
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
