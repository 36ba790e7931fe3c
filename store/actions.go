package store

import "github.com/electrohub/storefront-api/models"

// Action is the closed set of state transitions. The unexported marker
// keeps the union sealed so the reducer's switch stays exhaustive: a new
// action variant forces a compile-visible change here and a case there.
type Action interface {
	isAction()
}

// AddToCart appends the product with quantity 1, or bumps the quantity
// of the existing cart item for the same product id.
type AddToCart struct {
	Product models.Product
}

// RemoveFromCart deletes the matching cart item. Unknown ids are a
// benign no-op.
type RemoveFromCart struct {
	ProductID string
}

// UpdateQuantity sets the item's quantity, clamped to a minimum of 1.
// It never deletes; RemoveFromCart is the deletion path.
type UpdateQuantity struct {
	ProductID string
	Quantity  int
}

// ClearCart empties the cart.
type ClearCart struct{}

// SetUser replaces the session identity. A nil user clears it. The
// store persists or removes the saved session as a side effect.
type SetUser struct {
	User *models.User
}

// Logout clears the session identity and the persisted record.
type Logout struct{}

// ToggleWishlist flips the product id in or out of the wishlist set.
type ToggleWishlist struct {
	ProductID string
}

// PlaceOrder prepends a fully built order to the history and removes
// the ordered quantities from the cart in the same transition. Totals
// are the order builder's job; the reducer stores the payload as-is.
type PlaceOrder struct {
	Order models.Order
}

func (AddToCart) isAction()      {}
func (RemoveFromCart) isAction() {}
func (UpdateQuantity) isAction() {}
func (ClearCart) isAction()      {}
func (SetUser) isAction()        {}
func (Logout) isAction()         {}
func (ToggleWishlist) isAction() {}
func (PlaceOrder) isAction()     {}
