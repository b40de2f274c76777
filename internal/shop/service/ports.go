package service

import (
	"context"

	"github.com/google/uuid"

	"shopfront_backend/internal/shop/domain"
)

// ProductSource is the read-only product lookup the popup depends on.
type ProductSource interface {
	ProductByHandle(ctx context.Context, handle string) (domain.Product, error)
}

// CartAddResult reports the outcome of one successful cart write.
type CartAddResult struct {
	ItemCount int
}

// CartGateway is the cart capability the orchestrator submits through.
// AddLine is safe to call twice in sequence; each call adds a line or
// increments its quantity. ItemCount is a read-only snapshot used for the
// badge, never for decision logic.
type CartGateway interface {
	AddLine(ctx context.Context, cartID uuid.UUID, variantID string, quantity int) (CartAddResult, error)
	ItemCount(ctx context.Context, cartID uuid.UUID) (int, error)
}
