package main

import (
	_ "embed"
	"log/slog"
	"os"

	cartapp "github.com/dwikikusuma/shoping-generics/internal/cart/app"
	cartdomain "github.com/dwikikusuma/shoping-generics/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/shoping-generics/internal/catalog/app"
	"github.com/dwikikusuma/shoping-generics/internal/catalog/domain"
	"github.com/dwikikusuma/shoping-generics/pkg/config"
	"github.com/dwikikusuma/shoping-generics/pkg/logger"
	"github.com/shopspring/decimal"
)

//go:embed catalog.json
var seedCatalog []byte

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "shop", Env: cfg.AppEnv, Level: cfg.LogLevel})

	items, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		log.Error("catalog load failed", slog.Any("err", err), slog.String("file", cfg.CatalogFile))
		os.Exit(1)
	}
	log.Debug("catalog loaded", slog.Int("items", len(items)))

	if err := run(log, cfg, items); err != nil {
		log.Error("demo failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func loadCatalog(path string) ([]domain.Variant, error) {
	data := seedCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		data = b
	}
	return domain.DecodeCatalog(data)
}

func run(log *slog.Logger, cfg config.Config, items []domain.Variant) error {
	electronics := catalogapp.OfKind[domain.Electronics](items)
	books := catalogapp.OfKind[domain.Book](items)

	phone, err := catalogapp.FindProduct(electronics, cfg.LookupID)
	if err != nil {
		return err
	}
	if phone != nil {
		log.Info("product found", slog.Any("product", *phone))
	} else {
		log.Info("product not found", slog.Int64("id", cfg.LookupID))
	}

	cheap, err := catalogapp.FilterByPrice(append(variants(electronics), variants(books)...), cfg.MaxPrice)
	if err != nil {
		return err
	}
	log.Info("filtered by price", slog.Float64("max_price", cfg.MaxPrice), slog.Any("products", cheap))

	var cart cartdomain.Cart[domain.Variant]
	if cart, err = cartapp.AddToCart(cart, widen(phone), 1); err != nil {
		return err
	}
	if cart, err = cartapp.AddToCart(cart, widen(first(books)), 2); err != nil {
		return err
	}

	for _, line := range cartapp.Lines(cart) {
		log.Info("cart line",
			slog.Int64("product_id", line.ProductID),
			slog.String("name", line.Name),
			slog.Int("quantity", line.Quantity),
			slog.String("line_total", decimal.NewFromFloat(line.LineTotal).StringFixed(2)),
		)
	}

	total := cartapp.CalculateTotal(cart)
	log.Info("cart total", slog.String("total", decimal.NewFromFloat(total).StringFixed(2)))
	return nil
}

func variants[V domain.Variant](vs []V) []domain.Variant {
	out := make([]domain.Variant, 0, len(vs))
	for _, v := range vs {
		out = append(out, v)
	}
	return out
}

func widen[V domain.Variant](p *V) *domain.Variant {
	if p == nil {
		return nil
	}
	var v domain.Variant = *p
	return &v
}

func first[T any](s []T) *T {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}
