package services

import (
	"shawarma-shop/cart"
	"shawarma-shop/models"
)

var (
	ErrNoItems          = validationErr("order must have at least one item")
	ErrMissingProductID = validationErr("cart entry product is missing an id")
	ErrInvalidQuantity  = validationErr("cart entry quantity must be at least 1")
)

// OrderItemsFromCart converts cart entries into the canonical order item
// shape the persistence layer accepts. Prices and names are copied, so the
// resulting items are snapshots that survive later product edits.
func OrderItemsFromCart(entries []cart.Entry) ([]models.OrderItem, error) {
	if len(entries) == 0 {
		return nil, ErrNoItems
	}

	items := make([]models.OrderItem, 0, len(entries))
	for _, e := range entries {
		if e.Product.ID.IsZero() {
			return nil, ErrMissingProductID
		}
		if e.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		items = append(items, models.OrderItem{
			ProductID: e.Product.ID.Hex(),
			Name:      e.Product.Name,
			Quantity:  e.Quantity,
			Price:     e.Product.Price,
		})
	}
	return items, nil
}
