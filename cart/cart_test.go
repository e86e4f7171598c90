package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shawarma-shop/models"
)

func product(name string, price float64) models.Product {
	return models.Product{
		ID:    primitive.NewObjectID(),
		Name:  name,
		Price: price,
	}
}

func TestReduceAddItem(t *testing.T) {
	shawarma := product("Chicken Shawarma", 55)
	falafel := product("Falafel Wrap", 40)

	state := Reduce(State{}, Action{Kind: AddItem, Product: shawarma})
	require.Len(t, state.Items, 1)
	assert.Equal(t, 1, state.Items[0].Quantity)

	state = Reduce(state, Action{Kind: AddItem, Product: falafel})
	require.Len(t, state.Items, 2)

	// adding the same product again bumps its quantity instead of
	// duplicating the entry
	state = Reduce(state, Action{Kind: AddItem, Product: shawarma})
	require.Len(t, state.Items, 2)
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.Equal(t, 1, state.Items[1].Quantity)
}

func TestReduceSetQuantity(t *testing.T) {
	shawarma := product("Chicken Shawarma", 55)
	state := Reduce(State{}, Action{Kind: AddItem, Product: shawarma})

	state = Reduce(state, Action{Kind: SetQuantity, ProductID: shawarma.ID.Hex(), Quantity: 5})
	require.Len(t, state.Items, 1)
	assert.Equal(t, 5, state.Items[0].Quantity)
}

func TestReduceSetQuantityZeroRemovesEntry(t *testing.T) {
	shawarma := product("Chicken Shawarma", 55)
	falafel := product("Falafel Wrap", 40)

	state := Reduce(State{}, Action{Kind: AddItem, Product: shawarma})
	state = Reduce(state, Action{Kind: AddItem, Product: falafel})

	zeroed := Reduce(state, Action{Kind: SetQuantity, ProductID: shawarma.ID.Hex(), Quantity: 0})
	removed := Reduce(state, Action{Kind: RemoveItem, ProductID: shawarma.ID.Hex()})

	assert.Equal(t, removed, zeroed)
	require.Len(t, zeroed.Items, 1)
	assert.Equal(t, falafel.ID, zeroed.Items[0].Product.ID)

	negative := Reduce(state, Action{Kind: SetQuantity, ProductID: shawarma.ID.Hex(), Quantity: -3})
	assert.Equal(t, removed, negative)
}

func TestReduceRemoveMissingProductIsNoop(t *testing.T) {
	shawarma := product("Chicken Shawarma", 55)
	state := Reduce(State{}, Action{Kind: AddItem, Product: shawarma})

	next := Reduce(state, Action{Kind: RemoveItem, ProductID: primitive.NewObjectID().Hex()})
	assert.Equal(t, state.Items, next.Items)
}

func TestReduceClear(t *testing.T) {
	state := Reduce(State{}, Action{Kind: AddItem, Product: product("Chicken Shawarma", 55)})
	state = Reduce(state, Action{Kind: AddItem, Product: product("Falafel Wrap", 40)})

	state = Reduce(state, Action{Kind: Clear})
	assert.Empty(t, state.Items)
	assert.Zero(t, state.Subtotal())
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	shawarma := product("Chicken Shawarma", 55)
	state := Reduce(State{}, Action{Kind: AddItem, Product: shawarma})

	_ = Reduce(state, Action{Kind: AddItem, Product: shawarma})
	_ = Reduce(state, Action{Kind: SetQuantity, ProductID: shawarma.ID.Hex(), Quantity: 9})
	_ = Reduce(state, Action{Kind: RemoveItem, ProductID: shawarma.ID.Hex()})

	require.Len(t, state.Items, 1)
	assert.Equal(t, 1, state.Items[0].Quantity)
}

func TestSubtotalRecomputedFromEntries(t *testing.T) {
	shawarma := product("Chicken Shawarma", 55)
	falafel := product("Falafel Wrap", 40)

	state := Reduce(State{}, Action{Kind: AddItem, Product: shawarma})
	state = Reduce(state, Action{Kind: AddItem, Product: falafel})
	state = Reduce(state, Action{Kind: AddItem, Product: falafel})
	assert.Equal(t, 135.0, state.Subtotal())

	state = Reduce(state, Action{Kind: SetQuantity, ProductID: falafel.ID.Hex(), Quantity: 1})
	assert.Equal(t, 95.0, state.Subtotal())

	state = Reduce(state, Action{Kind: RemoveItem, ProductID: shawarma.ID.Hex()})
	assert.Equal(t, 40.0, state.Subtotal())
}
