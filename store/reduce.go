package store

import "github.com/electrohub/storefront-api/models"

// reduce computes the next state from the current one and a single
// action. It is a pure function: the input state is never mutated and
// the result shares no slices with it.
func reduce(state models.State, action Action) models.State {
	next := state.Clone()

	switch a := action.(type) {
	case AddToCart:
		for i := range next.Cart {
			if next.Cart[i].ID == a.Product.ID {
				next.Cart[i].Quantity++
				return next
			}
		}
		next.Cart = append(next.Cart, models.CartItem{Product: a.Product, Quantity: 1})

	case RemoveFromCart:
		kept := next.Cart[:0]
		for _, item := range next.Cart {
			if item.ID != a.ProductID {
				kept = append(kept, item)
			}
		}
		next.Cart = kept

	case UpdateQuantity:
		for i := range next.Cart {
			if next.Cart[i].ID == a.ProductID {
				next.Cart[i].Quantity = max(1, a.Quantity)
				break
			}
		}

	case ClearCart:
		next.Cart = nil

	case SetUser:
		next.User = copyUser(a.User)

	case Logout:
		next.User = nil

	case ToggleWishlist:
		for i, id := range next.Wishlist {
			if id == a.ProductID {
				next.Wishlist = append(next.Wishlist[:i], next.Wishlist[i+1:]...)
				return next
			}
		}
		next.Wishlist = append(next.Wishlist, a.ProductID)

	case PlaceOrder:
		next.Orders = append([]models.Order{a.Order}, next.Orders...)
		// Remove exactly what the order snapshot took. Lines added or
		// incremented after the snapshot keep their remainder.
		ordered := make(map[string]int, len(a.Order.Items))
		for _, item := range a.Order.Items {
			ordered[item.ID] = item.Quantity
		}
		kept := next.Cart[:0]
		for _, item := range next.Cart {
			if remaining := item.Quantity - ordered[item.ID]; remaining > 0 {
				item.Quantity = remaining
				kept = append(kept, item)
			}
		}
		if len(kept) == 0 {
			kept = nil
		}
		next.Cart = kept
	}

	return next
}

func copyUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
