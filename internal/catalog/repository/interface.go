package repository

import (
	"context"

	"github.com/google/uuid"
)

// Product represents a sellable storefront product.
type Product struct {
	ID          uuid.UUID `db:"id"`
	Handle      string    `db:"handle"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	PriceCents  int64     `db:"price_cents"`
	CreatedAt   string    `db:"created_at"`
	UpdatedAt   string    `db:"updated_at"`
}

// Variant represents one purchasable color/size combination of a product.
// Position preserves the merchant's listed order; lookups and "first variant"
// bundle picks depend on it.
type Variant struct {
	ID        uuid.UUID `db:"id"`
	ProductID uuid.UUID `db:"product_id"`
	Color     string    `db:"color"`
	Size      string    `db:"size"`
	Position  int       `db:"position"`
}

// ProductWithVariants bundles a product and its ordered variant list.
type ProductWithVariants struct {
	Product
	Variants []Variant
}

// VariantParams describes one variant when creating or replacing a listing.
type VariantParams struct {
	Color string
	Size  string
}

// CreateProductParams contains data for creating a product.
type CreateProductParams struct {
	Handle      string
	Title       string
	Description *string
	PriceCents  int64
	Variants    []VariantParams
}

// UpdateProductParams contains data for updating a product.
type UpdateProductParams struct {
	ID          uuid.UUID
	Title       *string
	Description *string
	PriceCents  *int64
}

// ListProductsParams defines filters for listing products.
type ListProductsParams struct {
	Search string
	Offset int
	Limit  int
}

// Repository defines catalog persistence operations.
type Repository interface {
	GetProductByHandle(ctx context.Context, handle string) (ProductWithVariants, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (ProductWithVariants, error)
	ListProducts(ctx context.Context, params ListProductsParams) ([]Product, int, error)
	CreateProduct(ctx context.Context, params CreateProductParams) (ProductWithVariants, error)
	UpdateProduct(ctx context.Context, params UpdateProductParams) (Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ReplaceVariants(ctx context.Context, productID uuid.UUID, variants []VariantParams) ([]Variant, error)
}
