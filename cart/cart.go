// Package cart holds the session shopping cart as a small state machine:
// a tagged action type consumed by a pure transition function. Keeping the
// transitions side-effect free makes every cart invariant directly testable.
package cart

import "shawarma-shop/models"

type ActionKind int

const (
	AddItem ActionKind = iota
	SetQuantity
	RemoveItem
	Clear
)

type Action struct {
	Kind      ActionKind
	Product   models.Product // AddItem
	ProductID string         // SetQuantity, RemoveItem
	Quantity  int            // SetQuantity
}

// Entry pairs a live product with a quantity. Quantities are always >= 1:
// a transition that would drop an entry to zero removes it instead.
type Entry struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// State is an ordered collection of entries, unique per product id.
type State struct {
	Items []Entry `json:"items"`
}

// Subtotal is recomputed from the current entries on every call, so it can
// never go stale relative to the items.
func (s State) Subtotal() float64 {
	var total float64
	for _, e := range s.Items {
		total += e.Product.Price * float64(e.Quantity)
	}
	return total
}

// Reduce applies one action and returns the next state. The input state is
// never mutated; entry slices are copied before changing.
func Reduce(s State, a Action) State {
	switch a.Kind {
	case AddItem:
		id := a.Product.ID.Hex()
		for i, e := range s.Items {
			if e.Product.ID.Hex() == id {
				items := make([]Entry, len(s.Items))
				copy(items, s.Items)
				items[i].Quantity++
				return State{Items: items}
			}
		}
		items := make([]Entry, len(s.Items), len(s.Items)+1)
		copy(items, s.Items)
		return State{Items: append(items, Entry{Product: a.Product, Quantity: 1})}

	case SetQuantity:
		if a.Quantity <= 0 {
			return Reduce(s, Action{Kind: RemoveItem, ProductID: a.ProductID})
		}
		items := make([]Entry, len(s.Items))
		copy(items, s.Items)
		for i := range items {
			if items[i].Product.ID.Hex() == a.ProductID {
				items[i].Quantity = a.Quantity
			}
		}
		return State{Items: items}

	case RemoveItem:
		items := make([]Entry, 0, len(s.Items))
		for _, e := range s.Items {
			if e.Product.ID.Hex() != a.ProductID {
				items = append(items, e)
			}
		}
		return State{Items: items}

	case Clear:
		return State{}
	}

	return s
}
