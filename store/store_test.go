package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electrohub/storefront-api/kvstore"
	"github.com/electrohub/storefront-api/models"
)

func product(id string, price float64) models.Product {
	return models.Product{ID: id, Name: "Product " + id, Price: price, Category: models.CategoryMobile}
}

func TestAddToCartAccumulatesQuantity(t *testing.T) {
	s := New(kvstore.NewMemory())

	for i := 0; i < 3; i++ {
		s.Apply(AddToCart{Product: product("1", 49.99)})
	}
	s.Apply(AddToCart{Product: product("2", 129.99)})

	state := s.State()
	require.Len(t, state.Cart, 2)
	assert.Equal(t, "1", state.Cart[0].ID)
	assert.Equal(t, 3, state.Cart[0].Quantity)
	assert.Equal(t, "2", state.Cart[1].ID)
	assert.Equal(t, 1, state.Cart[1].Quantity)
}

func TestAddToCartPreservesInsertionOrder(t *testing.T) {
	s := New(kvstore.NewMemory())

	s.Apply(AddToCart{Product: product("a", 1)})
	s.Apply(AddToCart{Product: product("b", 2)})
	s.Apply(AddToCart{Product: product("a", 1)})
	s.Apply(AddToCart{Product: product("c", 3)})

	state := s.State()
	require.Len(t, state.Cart, 3)
	assert.Equal(t, "a", state.Cart[0].ID)
	assert.Equal(t, "b", state.Cart[1].ID)
	assert.Equal(t, "c", state.Cart[2].ID)
}

func TestRemoveFromCartIsNoOpForUnknownID(t *testing.T) {
	s := New(kvstore.NewMemory())
	s.Apply(AddToCart{Product: product("1", 10)})

	state := s.Apply(RemoveFromCart{ProductID: "nope"})
	require.Len(t, state.Cart, 1)

	state = s.Apply(RemoveFromCart{ProductID: "1"})
	assert.Empty(t, state.Cart)
}

func TestUpdateQuantityClampsToOne(t *testing.T) {
	s := New(kvstore.NewMemory())
	s.Apply(AddToCart{Product: product("1", 10)})

	for _, q := range []int{0, -5, -1} {
		state := s.Apply(UpdateQuantity{ProductID: "1", Quantity: q})
		assert.Equal(t, 1, state.Cart[0].Quantity, "quantity %d should clamp to 1", q)
	}

	state := s.Apply(UpdateQuantity{ProductID: "1", Quantity: 7})
	assert.Equal(t, 7, state.Cart[0].Quantity)

	// Unknown id: no-op, no new line appears.
	state = s.Apply(UpdateQuantity{ProductID: "ghost", Quantity: 4})
	require.Len(t, state.Cart, 1)
}

func TestToggleWishlistIsItsOwnInverse(t *testing.T) {
	s := New(kvstore.NewMemory())

	state := s.Apply(ToggleWishlist{ProductID: "3"})
	assert.Equal(t, []string{"3"}, state.Wishlist)

	state = s.Apply(ToggleWishlist{ProductID: "5"})
	assert.Equal(t, []string{"3", "5"}, state.Wishlist)

	state = s.Apply(ToggleWishlist{ProductID: "3"})
	assert.Equal(t, []string{"5"}, state.Wishlist)

	state = s.Apply(ToggleWishlist{ProductID: "5"})
	assert.Empty(t, state.Wishlist)
}

func TestPlaceOrderClearsCartAndPrepends(t *testing.T) {
	s := New(kvstore.NewMemory())
	s.Apply(AddToCart{Product: product("1", 49.99)})
	s.Apply(AddToCart{Product: product("2", 129.99)})

	first := models.Order{ID: "EH-111111", Items: models.CloneCart(s.State().Cart)}
	state := s.Apply(PlaceOrder{Order: first})

	assert.Empty(t, state.Cart)
	require.Len(t, state.Orders, 1)

	s.Apply(AddToCart{Product: product("3", 9.99)})
	second := models.Order{ID: "EH-222222", Items: models.CloneCart(s.State().Cart)}
	state = s.Apply(PlaceOrder{Order: second})

	require.Len(t, state.Orders, 2)
	assert.Equal(t, "EH-222222", state.Orders[0].ID, "newest order comes first")
	assert.Equal(t, "EH-111111", state.Orders[1].ID)
}

func TestPlaceOrderKeepsAdditionsMadeAfterSnapshot(t *testing.T) {
	s := New(kvstore.NewMemory())
	s.Apply(AddToCart{Product: product("1", 49.99)})
	snapshot := models.CloneCart(s.State().Cart)

	// The cart changes while payment for the snapshot settles.
	s.Apply(AddToCart{Product: product("1", 49.99)})
	s.Apply(AddToCart{Product: product("2", 129.99)})

	state := s.Apply(PlaceOrder{Order: models.Order{ID: "EH-444444", Items: snapshot}})

	require.Len(t, state.Cart, 2)
	assert.Equal(t, "1", state.Cart[0].ID)
	assert.Equal(t, 1, state.Cart[0].Quantity, "only the ordered quantity leaves the cart")
	assert.Equal(t, "2", state.Cart[1].ID)
	assert.Equal(t, 1, state.Cart[1].Quantity)
}

func TestPlacedOrderIsASnapshot(t *testing.T) {
	s := New(kvstore.NewMemory())
	s.Apply(AddToCart{Product: product("1", 49.99)})

	order := models.Order{ID: "EH-333333", Items: models.CloneCart(s.State().Cart)}
	s.Apply(PlaceOrder{Order: order})

	// Mutate the cart afterwards; the stored order must not change.
	s.Apply(AddToCart{Product: product("1", 49.99)})
	s.Apply(AddToCart{Product: product("1", 49.99)})

	stored := s.State().Orders[0]
	require.Len(t, stored.Items, 1)
	assert.Equal(t, 1, stored.Items[0].Quantity)
}

func TestSetUserPersistsAndLogoutClears(t *testing.T) {
	kv := kvstore.NewMemory()
	s := New(kv)

	user := models.User{ID: "user-1", Name: "jane", Email: "jane@example.com", Role: models.RoleUser}
	s.Apply(SetUser{User: &user})

	raw, ok := kv.Get(sessionKey)
	require.True(t, ok)
	var saved models.User
	require.NoError(t, json.Unmarshal([]byte(raw), &saved))
	assert.Equal(t, user, saved)

	// A fresh store over the same kv restores the identity.
	restored := New(kv)
	require.NotNil(t, restored.State().User)
	assert.Equal(t, "jane@example.com", restored.State().User.Email)

	s.Apply(Logout{})
	_, ok = kv.Get(sessionKey)
	assert.False(t, ok)
	assert.Nil(t, s.State().User)
}

func TestSetUserNilClearsPersistedIdentity(t *testing.T) {
	kv := kvstore.NewMemory()
	s := New(kv)

	user := models.User{ID: "user-2", Email: "x@y.com", Role: models.RoleUser}
	s.Apply(SetUser{User: &user})
	state := s.Apply(SetUser{User: nil})

	assert.Nil(t, state.User)
	_, ok := kv.Get(sessionKey)
	assert.False(t, ok)
}

func TestCorruptPersistedSessionIsDiscarded(t *testing.T) {
	kv := kvstore.NewMemory()
	require.NoError(t, kv.Set(sessionKey, "{not json"))

	s := New(kv)
	assert.Nil(t, s.State().User, "bad session data must yield no signed-in user")
}

func TestStateSnapshotIsIndependent(t *testing.T) {
	s := New(kvstore.NewMemory())
	s.Apply(AddToCart{Product: product("1", 10)})

	snapshot := s.State()
	snapshot.Cart[0].Quantity = 99

	assert.Equal(t, 1, s.State().Cart[0].Quantity)
}
