package cart

import (
	"testing"

	"inkpress/models"

	"github.com/stretchr/testify/require"
)

func product(id, name string) models.Product {
	return models.Product{ProductID: id, Name: name, Slug: id, BasePrice: 1}
}

func TestTotalsRecomputedAfterEveryMutation(t *testing.T) {
	c := New()

	require.NoError(t, c.AddItem(product("p1", "Business Cards"), 2, nil, 10.00))
	require.NoError(t, c.AddItem(product("p2", "Flyers"), 1, nil, 5.50))

	require.Equal(t, 3, c.TotalItems())
	require.InDelta(t, 25.50, c.TotalPrice(), 1e-9)

	require.NoError(t, c.UpdateQuantity("p2", 4))
	require.Equal(t, 6, c.TotalItems())
	require.InDelta(t, 42.00, c.TotalPrice(), 1e-9)

	c.RemoveItem("p1")
	require.Equal(t, 4, c.TotalItems())
	require.InDelta(t, 22.00, c.TotalPrice(), 1e-9)
}

func TestAddItemMergesQuantities(t *testing.T) {
	c := New()

	require.NoError(t, c.AddItem(product("p1", "Posters"), 1, map[string]any{"size": "A2"}, 12.00))
	// a re-add merges quantity but keeps the original snapshot
	require.NoError(t, c.AddItem(product("p1", "Posters"), 2, map[string]any{"size": "A1"}, 99.00))

	items := c.Items()
	require.Len(t, items, 1)
	require.Equal(t, 3, items[0].Quantity)
	require.InDelta(t, 12.00, items[0].Price, 1e-9)
	require.Equal(t, "A2", items[0].Customization["size"])
	require.InDelta(t, 36.00, c.TotalPrice(), 1e-9)
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	c := New()

	require.ErrorIs(t, c.AddItem(product("p1", "Stickers"), 0, nil, 3.00), ErrQuantity)
	require.ErrorIs(t, c.AddItem(product("p1", "Stickers"), -2, nil, 3.00), ErrQuantity)
	require.Empty(t, c.Items())
}

func TestUpdateQuantityRejectsNonPositive(t *testing.T) {
	c := New()

	require.NoError(t, c.AddItem(product("p1", "Banners"), 2, nil, 20.00))

	require.ErrorIs(t, c.UpdateQuantity("p1", 0), ErrQuantity)
	require.ErrorIs(t, c.UpdateQuantity("p1", -1), ErrQuantity)

	// the entry is untouched, never below 1
	items := c.Items()
	require.Len(t, items, 1)
	require.Equal(t, 2, items[0].Quantity)
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	c := New()

	require.NoError(t, c.UpdateQuantity("ghost", 3))
	require.Empty(t, c.Items())
	require.Zero(t, c.TotalItems())
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(product("p1", "Leaflets"), 1, nil, 2.00))

	c.RemoveItem("ghost")
	require.Len(t, c.Items(), 1)
}

func TestClearZeroesDerivedReads(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(product("p1", "Booklets"), 3, nil, 7.25))

	c.Clear()

	require.Empty(t, c.Items())
	require.Zero(t, c.TotalItems())
	require.Zero(t, c.TotalPrice())
}

func TestStoreIsolatesSessions(t *testing.T) {
	s := NewStore()

	a := s.Get("session-a")
	b := s.Get("session-b")
	require.NotSame(t, a, b)

	require.NoError(t, a.AddItem(product("p1", "Cards"), 1, nil, 10.00))
	require.Zero(t, b.TotalItems())

	// same session id yields the same cart
	require.Same(t, a, s.Get("session-a"))

	s.Drop("session-a")
	require.Zero(t, s.Get("session-a").TotalItems())
}
