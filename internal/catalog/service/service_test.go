package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"shopfront_backend/internal/catalog/repository"
	"shopfront_backend/internal/catalog/transport"
	"shopfront_backend/platform/apperr"
	"shopfront_backend/platform/logger"
)

type mockRepo struct {
	repository.Repository

	products map[string]repository.ProductWithVariants
	listArgs repository.ListProductsParams
	created  repository.CreateProductParams
}

func (m *mockRepo) GetProductByHandle(_ context.Context, handle string) (repository.ProductWithVariants, error) {
	product, ok := m.products[handle]
	if !ok {
		return repository.ProductWithVariants{}, apperr.NotFound("product not found")
	}
	return product, nil
}

func (m *mockRepo) ListProducts(_ context.Context, params repository.ListProductsParams) ([]repository.Product, int, error) {
	m.listArgs = params
	return nil, 0, nil
}

func (m *mockRepo) CreateProduct(_ context.Context, params repository.CreateProductParams) (repository.ProductWithVariants, error) {
	m.created = params
	return repository.ProductWithVariants{
		Product: repository.Product{ID: uuid.New(), Handle: params.Handle, Title: params.Title, PriceCents: params.PriceCents},
	}, nil
}

func newTestService() (*Service, *mockRepo) {
	repo := &mockRepo{products: make(map[string]repository.ProductWithVariants)}
	return New(repo, logger.New("test")), repo
}

func TestGetProductByHandleTrimsInput(t *testing.T) {
	svc, repo := newTestService()
	productID := uuid.New()
	repo.products["zip-hoodie"] = repository.ProductWithVariants{
		Product: repository.Product{ID: productID, Handle: "zip-hoodie", Title: "Zip Hoodie"},
		Variants: []repository.Variant{
			{ID: uuid.New(), ProductID: productID, Color: "Black", Size: "M", Position: 0},
		},
	}

	resp, err := svc.GetProductByHandle(context.Background(), "  zip-hoodie  ")
	if err != nil {
		t.Fatalf("GetProductByHandle() error = %v", err)
	}
	if resp.Handle != "zip-hoodie" || len(resp.Variants) != 1 {
		t.Fatalf("response = %+v", resp)
	}
}

func TestGetProductByHandleNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetProductByHandle(context.Background(), "missing")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestListProductsClampsPagination(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.ListProducts(context.Background(), transport.ListProductsRequest{Page: 0, PageSize: 500})
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	if repo.listArgs.Limit != 100 || repo.listArgs.Offset != 0 {
		t.Fatalf("list params = %+v, want limit 100 offset 0", repo.listArgs)
	}
	if resp.Page != 1 || resp.PageSize != 100 {
		t.Fatalf("response paging = %+v", resp)
	}
}

func TestCreateProductTrimsFields(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.CreateProduct(context.Background(), transport.CreateProductRequest{
		Handle:     "  zip-hoodie ",
		Title:      " Zip Hoodie ",
		PriceCents: 5900,
		Variants: []transport.VariantRequest{
			{Color: " Black ", Size: "M"},
		},
	})
	if err != nil {
		t.Fatalf("CreateProduct() error = %v", err)
	}
	if repo.created.Handle != "zip-hoodie" || repo.created.Title != "Zip Hoodie" {
		t.Fatalf("created = %+v", repo.created)
	}
	if len(repo.created.Variants) != 1 || repo.created.Variants[0].Color != "Black" {
		t.Fatalf("created variants = %+v", repo.created.Variants)
	}
}
