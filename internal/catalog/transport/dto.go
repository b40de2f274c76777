package transport

import "github.com/google/uuid"

// Products

type VariantRequest struct {
	Color string `json:"color" validate:"required,min=1,max=50"`
	Size  string `json:"size" validate:"required,oneof=XS S M L XL"`
}

type CreateProductRequest struct {
	Handle      string           `json:"handle" validate:"required,min=1,max=100"`
	Title       string           `json:"title" validate:"required,min=1,max=200"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=2000"`
	PriceCents  int64            `json:"priceCents" validate:"min=0"`
	Variants    []VariantRequest `json:"variants" validate:"required,min=1,max=100,dive"`
}

type UpdateProductRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	PriceCents  *int64  `json:"priceCents,omitempty" validate:"omitempty,min=0"`
}

type ReplaceVariantsRequest struct {
	Variants []VariantRequest `json:"variants" validate:"required,min=1,max=100,dive"`
}

type ListProductsRequest struct {
	Search   string `form:"search" validate:"max=100"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"pageSize" validate:"omitempty,min=1,max=100"`
}

type VariantResponse struct {
	ID    uuid.UUID `json:"id"`
	Color string    `json:"color"`
	Size  string    `json:"size"`
}

type ProductResponse struct {
	ID          uuid.UUID         `json:"id"`
	Handle      string            `json:"handle"`
	Title       string            `json:"title"`
	Description *string           `json:"description,omitempty"`
	PriceCents  int64             `json:"priceCents"`
	Variants    []VariantResponse `json:"variants,omitempty"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
}

type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}
