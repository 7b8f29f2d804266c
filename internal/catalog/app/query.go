package app

import (
	"fmt"
	"iter"
	"slices"

	"github.com/dwikikusuma/shoping-generics/internal/catalog/domain"
)

var (
	ErrNotASequence  = fmt.Errorf("%w: expected an array of products", domain.ErrInvalidArgument)
	ErrNegativePrice = fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidArgument)
)

// FindProduct returns a copy of the first product with the given id, or nil
// when there is none.
func FindProduct[T domain.Product](products []T, id int64) (*T, error) {
	return FindProductIn(slices.Values(products), id)
}

// FindProductIn is FindProduct over an arbitrary sequence. A nil sequence is
// rejected with ErrNotASequence.
func FindProductIn[T domain.Product](products iter.Seq[T], id int64) (*T, error) {
	if products == nil {
		return nil, ErrNotASequence
	}

	for p := range products {
		if p.Base().ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

// OfKind keeps the items whose concrete type is V, in order.
func OfKind[V domain.Variant](items []domain.Variant) []V {
	out := make([]V, 0, len(items))
	for _, it := range items {
		if v, ok := it.(V); ok {
			out = append(out, v)
		}
	}
	return out
}

func FilterByPrice[T domain.Product](products []T, maxPrice float64) ([]T, error) {
	if maxPrice < 0 {
		return nil, ErrNegativePrice
	}

	out := make([]T, 0, len(products))
	for _, p := range products {
		if p.Base().Price <= maxPrice {
			out = append(out, p)
		}
	}
	return out, nil
}
