package domain

type BaseProduct struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

func (p BaseProduct) Base() BaseProduct { return p }

// Product is satisfied by BaseProduct and by every type that embeds it.
type Product interface {
	Base() BaseProduct
}

type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryBook        Category = "book"
)

// Variant is the closed set of catalog item kinds. The category is fixed by
// the concrete type.
type Variant interface {
	Product
	Category() Category
	variant()
}

type Electronics struct {
	BaseProduct
	WarrantyMonths int `json:"warrantyMonths"`
}

type Clothing struct {
	BaseProduct
	Size     string `json:"size"`
	Material string `json:"material"`
}

type Book struct {
	BaseProduct
	Author string `json:"author"`
	Pages  int    `json:"pages"`
}

func (Electronics) Category() Category { return CategoryElectronics }
func (Clothing) Category() Category    { return CategoryClothing }
func (Book) Category() Category        { return CategoryBook }

func (Electronics) variant() {}
func (Clothing) variant()    {}
func (Book) variant()        {}
