package service

import (
	"context"

	"github.com/google/uuid"

	cartservice "shopfront_backend/internal/cart/service"
	catalogservice "shopfront_backend/internal/catalog/service"
	"shopfront_backend/internal/shop/domain"
)

// CatalogProductSource adapts the catalog service to the popup's ProductSource.
type CatalogProductSource struct {
	catalog *catalogservice.Service
}

// NewCatalogProductSource wraps the catalog service.
func NewCatalogProductSource(catalog *catalogservice.Service) *CatalogProductSource {
	return &CatalogProductSource{catalog: catalog}
}

// ProductByHandle fetches the product and maps it to the popup's view.
func (s *CatalogProductSource) ProductByHandle(ctx context.Context, handle string) (domain.Product, error) {
	product, err := s.catalog.GetProductByHandle(ctx, handle)
	if err != nil {
		return domain.Product{}, err
	}

	variants := make([]domain.Variant, len(product.Variants))
	for i, variant := range product.Variants {
		variants[i] = domain.Variant{
			ID:    variant.ID.String(),
			Color: variant.Color,
			Size:  variant.Size,
		}
	}

	description := ""
	if product.Description != nil {
		description = *product.Description
	}

	return domain.Product{
		Handle:      product.Handle,
		Title:       product.Title,
		Description: description,
		PriceCents:  product.PriceCents,
		Variants:    variants,
	}, nil
}

// CartServiceGateway adapts the cart service to the popup's CartGateway.
type CartServiceGateway struct {
	cart *cartservice.Service
}

// NewCartServiceGateway wraps the cart service.
func NewCartServiceGateway(cart *cartservice.Service) *CartServiceGateway {
	return &CartServiceGateway{cart: cart}
}

// AddLine writes one cart line and reports the resulting item count.
func (g *CartServiceGateway) AddLine(ctx context.Context, cartID uuid.UUID, variantID string, quantity int) (CartAddResult, error) {
	snapshot, err := g.cart.AddLine(ctx, cartID, variantID, quantity)
	if err != nil {
		return CartAddResult{}, err
	}
	return CartAddResult{ItemCount: snapshot.ItemCount}, nil
}

// ItemCount reads the current cart size.
func (g *CartServiceGateway) ItemCount(ctx context.Context, cartID uuid.UUID) (int, error) {
	snapshot, err := g.cart.Snapshot(ctx, cartID)
	if err != nil {
		return 0, err
	}
	return snapshot.ItemCount, nil
}

var (
	_ ProductSource = (*CatalogProductSource)(nil)
	_ CartGateway   = (*CartServiceGateway)(nil)
)
