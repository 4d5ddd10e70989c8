package cart

import (
	"context"
	"testing"

	"bakehouse/models"
	"bakehouse/stash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	jollof = models.Product{
		ID: 2, Name: "Jollof Rice", Category: models.CategoryAfrican, Price: 65000,
		AddOns: []models.AddOn{
			{ID: 4, Name: "Extra Chicken", Price: 18000},
			{ID: 5, Name: "Fried Plantain", Price: 8000},
		},
	}
	cake = models.Product{
		ID: 7, Name: "Birthday Cake", Category: models.CategoryBakery, Price: 250000,
		Variants: []models.ProductVariant{
			{ID: 3, Name: "Large (10 inch)", Price: 450000},
		},
	}
)

func newTestStore() (*Store, context.Context) {
	return NewStore(stash.NewMemory(), 1), context.Background()
}

func TestAddComputesLineTotal(t *testing.T) {
	s, ctx := newTestStore()

	item, err := s.Add(ctx, "s1", jollof, 2, []models.AddOn{jollof.AddOns[0]}, nil)
	require.NoError(t, err)
	// (65000 + 18000) × 2
	assert.Equal(t, 166000, item.TotalPrice)

	variant := cake.Variants[0]
	item, err = s.Add(ctx, "s1", cake, 1, nil, &variant)
	require.NoError(t, err)
	assert.Equal(t, 450000, item.TotalPrice, "variant price overrides base price")
}

func TestAddRejectsLowQuantity(t *testing.T) {
	s, ctx := newTestStore()

	_, err := s.Add(ctx, "s1", jollof, 0, nil, nil)
	assert.ErrorIs(t, err, ErrQuantityTooLow)
	assert.Empty(t, s.Items(ctx, "s1"))
}

func TestDuplicateAddsStaySeparateLines(t *testing.T) {
	s, ctx := newTestStore()

	_, err := s.Add(ctx, "s1", jollof, 1, nil, nil)
	require.NoError(t, err)
	_, err = s.Add(ctx, "s1", jollof, 1, nil, nil)
	require.NoError(t, err)

	assert.Len(t, s.Items(ctx, "s1"), 2)
	assert.Equal(t, 2, s.ItemCount(ctx, "s1"))
}

func TestTotalsAcrossMutations(t *testing.T) {
	s, ctx := newTestStore()

	_, err := s.Add(ctx, "s1", jollof, 2, nil, nil)
	require.NoError(t, err)
	_, err = s.Add(ctx, "s1", cake, 1, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 2*65000+250000, s.Total(ctx, "s1"))
	assert.Equal(t, 3, s.ItemCount(ctx, "s1"))

	require.NoError(t, s.UpdateQuantity(ctx, "s1", 0, 3))
	assert.Equal(t, 3*65000+250000, s.Total(ctx, "s1"))
	assert.Equal(t, 4, s.ItemCount(ctx, "s1"))

	require.NoError(t, s.Remove(ctx, "s1", 1))
	assert.Equal(t, 3*65000, s.Total(ctx, "s1"))
	assert.Equal(t, 3, s.ItemCount(ctx, "s1"))

	// invariant: total always equals the sum of recomputed line totals
	sum := 0
	for _, item := range s.Items(ctx, "s1") {
		recomputed := item
		recomputed.Recompute()
		assert.Equal(t, recomputed.TotalPrice, item.TotalPrice)
		sum += item.TotalPrice
	}
	assert.Equal(t, sum, s.Total(ctx, "s1"))
}

func TestUpdateQuantityBelowOneIsNoOp(t *testing.T) {
	s, ctx := newTestStore()

	_, err := s.Add(ctx, "s1", jollof, 2, nil, nil)
	require.NoError(t, err)
	before := s.Items(ctx, "s1")

	require.NoError(t, s.UpdateQuantity(ctx, "s1", 0, 0))
	require.NoError(t, s.UpdateQuantity(ctx, "s1", 0, -5))

	assert.Equal(t, before, s.Items(ctx, "s1"))
}

func TestUpdateQuantityRecomputesFromOwnBasePrice(t *testing.T) {
	s, ctx := newTestStore()

	variant := cake.Variants[0]
	_, err := s.Add(ctx, "s1", cake, 1, nil, &variant)
	require.NoError(t, err)

	require.NoError(t, s.UpdateQuantity(ctx, "s1", 0, 2))
	assert.Equal(t, 2*450000, s.Items(ctx, "s1")[0].TotalPrice)
}

func TestRemoveOutOfRangeIsNoOp(t *testing.T) {
	s, ctx := newTestStore()

	_, err := s.Add(ctx, "s1", jollof, 1, nil, nil)
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, "s1", 5))
	require.NoError(t, s.Remove(ctx, "s1", -1))
	assert.Len(t, s.Items(ctx, "s1"), 1)
}

func TestClear(t *testing.T) {
	s, ctx := newTestStore()

	_, err := s.Add(ctx, "s1", jollof, 1, nil, nil)
	require.NoError(t, err)
	require.NoError(t, s.Clear(ctx, "s1"))

	assert.Empty(t, s.Items(ctx, "s1"))
	assert.Zero(t, s.Total(ctx, "s1"))
}

func TestSessionsAreIndependent(t *testing.T) {
	s, ctx := newTestStore()

	_, err := s.Add(ctx, "s1", jollof, 1, nil, nil)
	require.NoError(t, err)

	assert.Empty(t, s.Items(ctx, "s2"))
}

func TestReloadReproducesCartInOrder(t *testing.T) {
	blob := stash.NewMemory()
	ctx := context.Background()

	s := NewStore(blob, 1)
	_, err := s.Add(ctx, "s1", cake, 1, nil, nil)
	require.NoError(t, err)
	_, err = s.Add(ctx, "s1", jollof, 3, []models.AddOn{jollof.AddOns[1]}, nil)
	require.NoError(t, err)

	// a fresh store over the same blob simulates a page reload
	reloaded := NewStore(blob, 1)
	items := reloaded.Items(ctx, "s1")
	require.Len(t, items, 2)
	assert.Equal(t, "Birthday Cake", items[0].Product.Name)
	assert.Equal(t, "Jollof Rice", items[1].Product.Name)
	assert.Equal(t, s.Items(ctx, "s1"), items)
}

func TestCorruptStateLoadsAsEmptyCart(t *testing.T) {
	blob := stash.NewMemory()
	ctx := context.Background()
	require.NoError(t, blob.Save(ctx, "cart:s1", []byte("{not json")))

	s := NewStore(blob, 1)
	assert.Empty(t, s.Items(ctx, "s1"))

	// and the cart is usable again after the next mutation
	_, err := s.Add(ctx, "s1", jollof, 1, nil, nil)
	require.NoError(t, err)
	assert.Len(t, s.Items(ctx, "s1"), 1)
}
