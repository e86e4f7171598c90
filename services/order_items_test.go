package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shawarma-shop/cart"
	"shawarma-shop/models"
)

func TestOrderItemsFromCart(t *testing.T) {
	id := primitive.NewObjectID()
	entries := []cart.Entry{
		{Product: models.Product{ID: id, Name: "Falafel Wrap", Price: 40}, Quantity: 2},
	}

	items, err := OrderItemsFromCart(entries)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.OrderItem{
		ProductID: id.Hex(),
		Name:      "Falafel Wrap",
		Quantity:  2,
		Price:     40,
	}, items[0])
}

func TestOrderItemsFromCartPreservesOrder(t *testing.T) {
	entries := []cart.Entry{
		{Product: models.Product{ID: primitive.NewObjectID(), Name: "Chicken Shawarma", Price: 55}, Quantity: 1},
		{Product: models.Product{ID: primitive.NewObjectID(), Name: "Fries Box", Price: 25}, Quantity: 3},
	}

	items, err := OrderItemsFromCart(entries)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Chicken Shawarma", items[0].Name)
	assert.Equal(t, "Fries Box", items[1].Name)
}

func TestOrderItemsFromCartRejectsBadEntries(t *testing.T) {
	valid := cart.Entry{
		Product:  models.Product{ID: primitive.NewObjectID(), Name: "Falafel Wrap", Price: 40},
		Quantity: 1,
	}

	tests := []struct {
		name    string
		entries []cart.Entry
		wantErr error
	}{
		{"empty cart", nil, ErrNoItems},
		{"zero product id", []cart.Entry{{Product: models.Product{Name: "Ghost"}, Quantity: 1}}, ErrMissingProductID},
		{"zero quantity", []cart.Entry{{Product: valid.Product, Quantity: 0}}, ErrInvalidQuantity},
		{"bad entry after good one", []cart.Entry{valid, {Product: valid.Product, Quantity: -1}}, ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := OrderItemsFromCart(tt.entries)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidation(err))
			assert.Nil(t, items)
		})
	}
}
