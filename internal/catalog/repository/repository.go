package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shopfront_backend/platform/apperr"
)

const productNotFoundMessage = "product not found"

// Repo implements the catalog repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// GetProductByHandle retrieves a product and its ordered variants by handle.
func (r *Repo) GetProductByHandle(ctx context.Context, handle string) (ProductWithVariants, error) {
	query := `
		SELECT id, handle, title, description, price_cents, created_at, updated_at
		FROM shop_products
		WHERE handle = $1`

	product, err := r.scanProduct(ctx, query, handle)
	if err != nil {
		return ProductWithVariants{}, err
	}

	variants, err := r.listVariants(ctx, product.ID)
	if err != nil {
		return ProductWithVariants{}, err
	}

	return ProductWithVariants{Product: product, Variants: variants}, nil
}

// GetProductByID retrieves a product and its ordered variants by ID.
func (r *Repo) GetProductByID(ctx context.Context, id uuid.UUID) (ProductWithVariants, error) {
	query := `
		SELECT id, handle, title, description, price_cents, created_at, updated_at
		FROM shop_products
		WHERE id = $1`

	product, err := r.scanProduct(ctx, query, id)
	if err != nil {
		return ProductWithVariants{}, err
	}

	variants, err := r.listVariants(ctx, product.ID)
	if err != nil {
		return ProductWithVariants{}, err
	}

	return ProductWithVariants{Product: product, Variants: variants}, nil
}

// ListProducts lists products with search and pagination.
func (r *Repo) ListProducts(ctx context.Context, params ListProductsParams) ([]Product, int, error) {
	whereClauses := []string{"TRUE"}
	args := []interface{}{}

	if params.Search != "" {
		args = append(args, "%"+strings.ToLower(params.Search)+"%")
		whereClauses = append(whereClauses, fmt.Sprintf("(LOWER(title) LIKE $%d OR LOWER(handle) LIKE $%d)", len(args), len(args)))
	}

	where := strings.Join(whereClauses, " AND ")

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM shop_products WHERE %s", where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	args = append(args, params.Limit, params.Offset)
	listQuery := fmt.Sprintf(`
		SELECT id, handle, title, description, price_cents, created_at, updated_at
		FROM shop_products
		WHERE %s
		ORDER BY title ASC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		product, err := scanProductFields(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	return products, total, nil
}

// CreateProduct inserts a product and its variant list in one transaction.
func (r *Repo) CreateProduct(ctx context.Context, params CreateProductParams) (ProductWithVariants, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return ProductWithVariants{}, fmt.Errorf("begin create product: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO shop_products (handle, title, description, price_cents)
		VALUES ($1, $2, $3, $4)
		RETURNING id, handle, title, description, price_cents, created_at, updated_at`

	product, err := scanProductFields(tx.QueryRow(ctx, query, params.Handle, params.Title, params.Description, params.PriceCents))
	if err != nil {
		if isUniqueViolation(err) {
			return ProductWithVariants{}, apperr.Conflict("product handle already exists")
		}
		return ProductWithVariants{}, fmt.Errorf("create product: %w", err)
	}

	variants, err := insertVariants(ctx, tx, product.ID, params.Variants)
	if err != nil {
		return ProductWithVariants{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return ProductWithVariants{}, fmt.Errorf("commit create product: %w", err)
	}

	return ProductWithVariants{Product: product, Variants: variants}, nil
}

// UpdateProduct updates a product's listing fields.
func (r *Repo) UpdateProduct(ctx context.Context, params UpdateProductParams) (Product, error) {
	query := `
		UPDATE shop_products
		SET title = COALESCE($2, title),
			description = COALESCE($3, description),
			price_cents = COALESCE($4, price_cents),
			updated_at = now()
		WHERE id = $1
		RETURNING id, handle, title, description, price_cents, created_at, updated_at`

	product, err := scanProductFields(r.pool.QueryRow(ctx, query, params.ID, params.Title, params.Description, params.PriceCents))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, apperr.NotFound(productNotFoundMessage)
		}
		return Product{}, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

// DeleteProduct deletes a product; variants cascade.
func (r *Repo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM shop_products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(productNotFoundMessage)
	}
	return nil
}

// ReplaceVariants swaps the product's full variant list, preserving the
// incoming order as position.
func (r *Repo) ReplaceVariants(ctx context.Context, productID uuid.UUID, variants []VariantParams) ([]Variant, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin replace variants: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM shop_products WHERE id = $1)`, productID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("replace variants: %w", err)
	}
	if !exists {
		return nil, apperr.NotFound(productNotFoundMessage)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM shop_variants WHERE product_id = $1`, productID); err != nil {
		return nil, fmt.Errorf("replace variants: %w", err)
	}

	inserted, err := insertVariants(ctx, tx, productID, variants)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit replace variants: %w", err)
	}

	return inserted, nil
}

func (r *Repo) scanProduct(ctx context.Context, query string, arg interface{}) (Product, error) {
	product, err := scanProductFields(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, apperr.NotFound(productNotFoundMessage)
		}
		return Product{}, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

// scanProductFields reads one product row (id, handle, title, description,
// price_cents, created_at, updated_at) from a QueryRow result or a rows
// iterator, formatting the timestamps as RFC3339.
func scanProductFields(row pgx.Row) (Product, error) {
	var product Product
	var createdAt, updatedAt time.Time
	if err := row.Scan(
		&product.ID, &product.Handle, &product.Title, &product.Description, &product.PriceCents, &createdAt, &updatedAt,
	); err != nil {
		return Product{}, err
	}

	product.CreatedAt = createdAt.Format(time.RFC3339)
	product.UpdatedAt = updatedAt.Format(time.RFC3339)
	return product, nil
}

func (r *Repo) listVariants(ctx context.Context, productID uuid.UUID) ([]Variant, error) {
	query := `
		SELECT id, product_id, color, size, position
		FROM shop_variants
		WHERE product_id = $1
		ORDER BY position ASC`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()

	var variants []Variant
	for rows.Next() {
		var variant Variant
		if err := rows.Scan(&variant.ID, &variant.ProductID, &variant.Color, &variant.Size, &variant.Position); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		variants = append(variants, variant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}

	return variants, nil
}

func insertVariants(ctx context.Context, tx pgx.Tx, productID uuid.UUID, variants []VariantParams) ([]Variant, error) {
	query := `
		INSERT INTO shop_variants (product_id, color, size, position)
		VALUES ($1, $2, $3, $4)
		RETURNING id, product_id, color, size, position`

	inserted := make([]Variant, 0, len(variants))
	for position, params := range variants {
		var variant Variant
		if err := tx.QueryRow(ctx, query, productID, params.Color, params.Size, position).Scan(
			&variant.ID, &variant.ProductID, &variant.Color, &variant.Size, &variant.Position,
		); err != nil {
			return nil, fmt.Errorf("insert variant: %w", err)
		}
		inserted = append(inserted, variant)
	}

	return inserted, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
