package service

import (
	"context"

	"github.com/google/uuid"

	"shopfront_backend/internal/cart/domain"
	"shopfront_backend/internal/cart/repository"
	"shopfront_backend/internal/cart/transport"
	"shopfront_backend/platform/apperr"
	"shopfront_backend/platform/logger"
)

// Service provides cart business logic. It is the cart gateway the quick-shop
// popup submits through, and also backs the cart HTTP endpoints.
type Service struct {
	store repository.Store
	log   *logger.Logger
}

// New creates a new cart service.
func New(store repository.Store, log *logger.Logger) *Service {
	return &Service{store: store, log: log}
}

// AddLine adds quantity of a variant to the shopper's cart and returns the
// updated snapshot. Safe to call repeatedly; each call increments the line.
func (s *Service) AddLine(ctx context.Context, cartID uuid.UUID, variantID string, quantity int) (transport.CartSnapshotResponse, error) {
	if variantID == "" {
		return transport.CartSnapshotResponse{}, apperr.Validation("variant id is required")
	}
	if quantity < 1 {
		return transport.CartSnapshotResponse{}, apperr.Validation("quantity must be at least 1")
	}

	cart, err := s.store.Get(ctx, cartID)
	if err != nil {
		s.log.CartError("get", cartID.String(), err)
		return transport.CartSnapshotResponse{}, apperr.Wrap(apperr.KindUnavailable, "cart is unavailable", err)
	}

	cart.AddLine(variantID, quantity)

	if err := s.store.Save(ctx, cart); err != nil {
		s.log.CartError("save", cartID.String(), err)
		return transport.CartSnapshotResponse{}, apperr.Wrap(apperr.KindUnavailable, "cart is unavailable", err)
	}

	s.log.CartWrite(cartID.String(), variantID, quantity, cart.ItemCount())
	return toSnapshot(cart), nil
}

// Snapshot returns the shopper's current cart contents. Read-only; used for
// the cart badge, never for decision logic.
func (s *Service) Snapshot(ctx context.Context, cartID uuid.UUID) (transport.CartSnapshotResponse, error) {
	cart, err := s.store.Get(ctx, cartID)
	if err != nil {
		s.log.CartError("get", cartID.String(), err)
		return transport.CartSnapshotResponse{}, apperr.Wrap(apperr.KindUnavailable, "cart is unavailable", err)
	}
	return toSnapshot(cart), nil
}

// Clear empties the shopper's cart.
func (s *Service) Clear(ctx context.Context, cartID uuid.UUID) error {
	if err := s.store.Delete(ctx, cartID); err != nil {
		s.log.CartError("delete", cartID.String(), err)
		return apperr.Wrap(apperr.KindUnavailable, "cart is unavailable", err)
	}
	return nil
}

func toSnapshot(cart *domain.Cart) transport.CartSnapshotResponse {
	lines := make([]transport.LineResponse, len(cart.Lines))
	for i, line := range cart.Lines {
		lines[i] = transport.LineResponse{VariantID: line.VariantID, Quantity: line.Quantity}
	}
	return transport.CartSnapshotResponse{
		CartID:    cart.ID,
		Lines:     lines,
		ItemCount: cart.ItemCount(),
	}
}
