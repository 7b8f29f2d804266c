package app

import (
	"fmt"
	"slices"

	"github.com/dwikikusuma/shoping-generics/internal/cart/domain"
	catalog "github.com/dwikikusuma/shoping-generics/internal/catalog/domain"
)

var (
	ErrProductNotFound = fmt.Errorf("%w: product not found", catalog.ErrInvalidArgument)
	ErrInvalidQuantity = fmt.Errorf("%w: quantity must be greater than 0", catalog.ErrInvalidArgument)
)

// AddToCart returns a new cart with quantity more of product. An existing item
// for the same product id is bumped in place of appending a second one. The
// input cart is left untouched.
func AddToCart[T catalog.Product](cart domain.Cart[T], product *T, quantity int) (domain.Cart[T], error) {
	if product == nil {
		return nil, ErrProductNotFound
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	id := (*product).Base().ID
	idx := slices.IndexFunc(cart, func(it domain.Item[T]) bool {
		return it.Product.Base().ID == id
	})

	if idx >= 0 {
		out := slices.Clone(cart)
		out[idx].Quantity += quantity
		return out, nil
	}

	out := make(domain.Cart[T], len(cart), len(cart)+1)
	copy(out, cart)
	return append(out, domain.Item[T]{Product: *product, Quantity: quantity}), nil
}

func CalculateTotal[T catalog.Product](cart domain.Cart[T]) float64 {
	var total float64
	for _, it := range cart {
		total += it.Product.Base().Price * float64(it.Quantity)
	}
	return total
}

// Lines breaks the cart down per item, in cart order.
func Lines[T catalog.Product](cart domain.Cart[T]) []domain.Line {
	lines := make([]domain.Line, 0, len(cart))
	for _, it := range cart {
		p := it.Product.Base()
		lines = append(lines, domain.Line{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  it.Quantity,
			UnitPrice: p.Price,
			LineTotal: p.Price * float64(it.Quantity),
		})
	}
	return lines
}
