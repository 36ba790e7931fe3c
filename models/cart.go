package models

// CartItem is a catalog product plus the quantity selected by the
// shopper. The cart holds at most one item per product id and a
// quantity never drops below 1 (removal is the deletion path).
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// CloneCart returns an independent copy of a cart slice.
func CloneCart(cart []CartItem) []CartItem {
	if cart == nil {
		return nil
	}
	out := make([]CartItem, len(cart))
	copy(out, cart)
	return out
}
