package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"shopfront_backend/internal/catalog/repository"
	"shopfront_backend/internal/catalog/transport"
	"shopfront_backend/platform/logger"
)

// Service provides business logic for the catalog.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new catalog service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// GetProductByHandle retrieves a product with its ordered variants.
// This is the product data source for the quick-shop popup.
func (s *Service) GetProductByHandle(ctx context.Context, handle string) (transport.ProductResponse, error) {
	product, err := s.repo.GetProductByHandle(ctx, strings.TrimSpace(handle))
	if err != nil {
		return transport.ProductResponse{}, err
	}
	return toProductResponse(product), nil
}

// ListProducts retrieves products with search and pagination.
func (s *Service) ListProducts(ctx context.Context, req transport.ListProductsRequest) (transport.ProductListResponse, error) {
	page := req.Page
	pageSize := req.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	items, total, err := s.repo.ListProducts(ctx, repository.ListProductsParams{
		Search: strings.TrimSpace(req.Search),
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
	})
	if err != nil {
		return transport.ProductListResponse{}, err
	}

	responses := make([]transport.ProductResponse, len(items))
	for i, item := range items {
		responses[i] = toProductResponse(repository.ProductWithVariants{Product: item})
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	return transport.ProductListResponse{
		Items:      responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// CreateProduct creates a product with its variant list.
func (s *Service) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (transport.ProductResponse, error) {
	product, err := s.repo.CreateProduct(ctx, repository.CreateProductParams{
		Handle:      strings.TrimSpace(req.Handle),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Variants:    toVariantParams(req.Variants),
	})
	if err != nil {
		return transport.ProductResponse{}, err
	}

	s.log.Info("product created", "id", product.ID, "handle", product.Handle)
	return toProductResponse(product), nil
}

// UpdateProduct updates a product's listing fields.
func (s *Service) UpdateProduct(ctx context.Context, id uuid.UUID, req transport.UpdateProductRequest) (transport.ProductResponse, error) {
	product, err := s.repo.UpdateProduct(ctx, repository.UpdateProductParams{
		ID:          id,
		Title:       trimPtr(req.Title),
		Description: req.Description,
		PriceCents:  req.PriceCents,
	})
	if err != nil {
		return transport.ProductResponse{}, err
	}

	s.log.Info("product updated", "id", product.ID, "handle", product.Handle)
	return toProductResponse(repository.ProductWithVariants{Product: product}), nil
}

// DeleteProduct deletes a product and its variants.
func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.log.Info("product deleted", "id", id)
	return nil
}

// ReplaceVariants swaps a product's variant list, preserving request order.
func (s *Service) ReplaceVariants(ctx context.Context, productID uuid.UUID, req transport.ReplaceVariantsRequest) ([]transport.VariantResponse, error) {
	variants, err := s.repo.ReplaceVariants(ctx, productID, toVariantParams(req.Variants))
	if err != nil {
		return nil, err
	}

	s.log.Info("product variants replaced", "productId", productID, "count", len(variants))
	return toVariantResponses(variants), nil
}

func toVariantParams(requests []transport.VariantRequest) []repository.VariantParams {
	params := make([]repository.VariantParams, len(requests))
	for i, request := range requests {
		params[i] = repository.VariantParams{
			Color: strings.TrimSpace(request.Color),
			Size:  strings.TrimSpace(request.Size),
		}
	}
	return params
}

func toVariantResponses(variants []repository.Variant) []transport.VariantResponse {
	responses := make([]transport.VariantResponse, len(variants))
	for i, variant := range variants {
		responses[i] = transport.VariantResponse{
			ID:    variant.ID,
			Color: variant.Color,
			Size:  variant.Size,
		}
	}
	return responses
}

func toProductResponse(product repository.ProductWithVariants) transport.ProductResponse {
	return transport.ProductResponse{
		ID:          product.ID,
		Handle:      product.Handle,
		Title:       product.Title,
		Description: product.Description,
		PriceCents:  product.PriceCents,
		Variants:    toVariantResponses(product.Variants),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func trimPtr(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}
