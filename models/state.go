package models

// State is everything a shopping session owns: the cart (insertion
// order), the signed-in user if any, placed orders (newest first) and
// the wishlist product ids (unique, insertion order).
type State struct {
	Cart     []CartItem `json:"cart"`
	User     *User      `json:"user,omitempty"`
	Orders   []Order    `json:"orders"`
	Wishlist []string   `json:"wishlist"`
}

// Clone returns a deep-enough copy: all collections are independent
// slices so a caller holding a snapshot never observes later mutation.
func (s State) Clone() State {
	out := State{
		Cart:     CloneCart(s.Cart),
		Orders:   append([]Order(nil), s.Orders...),
		Wishlist: append([]string(nil), s.Wishlist...),
	}
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	return out
}
