package domain

import catalog "github.com/dwikikusuma/shoping-generics/internal/catalog/domain"

type Item[T catalog.Product] struct {
	Product  T   `json:"product"`
	Quantity int `json:"quantity"`
}

// Cart holds at most one item per product id. AddToCart keeps that true; the
// type alone does not.
type Cart[T catalog.Product] []Item[T]

type Line struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}
