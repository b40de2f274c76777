package transport

import "github.com/google/uuid"

type AddLineRequest struct {
	VariantID string `json:"variantId" validate:"required,min=1,max=100"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=99"`
}

type LineResponse struct {
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
}

type CartSnapshotResponse struct {
	CartID    uuid.UUID      `json:"cartId"`
	Lines     []LineResponse `json:"lines"`
	ItemCount int            `json:"itemCount"`
}
