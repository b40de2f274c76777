package repository

import (
	"context"

	"github.com/google/uuid"

	"shopfront_backend/internal/cart/domain"
)

// Store defines cart persistence. Get returns a fresh empty cart when the
// shopper has no stored cart yet.
type Store interface {
	Get(ctx context.Context, cartID uuid.UUID) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, cartID uuid.UUID) error
}
