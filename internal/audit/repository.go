package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists bundle-add failure records.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates the audit repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// InsertBundleAddFailure stores one failure record.
func (r *Repository) InsertBundleAddFailure(ctx context.Context, cartID uuid.UUID, targetHandle, reason string) error {
	query := `
		INSERT INTO bundle_add_failures (cart_id, target_handle, reason)
		VALUES ($1, $2, $3)`

	if _, err := r.pool.Exec(ctx, query, cartID, targetHandle, reason); err != nil {
		return fmt.Errorf("insert bundle add failure: %w", err)
	}
	return nil
}
