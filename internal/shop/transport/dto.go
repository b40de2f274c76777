package transport

import "github.com/google/uuid"

type OpenPopupRequest struct {
	ProductHandle string `json:"productHandle" validate:"required,min=1,max=100"`
}

type ProductView struct {
	Handle      string   `json:"handle"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	PriceCents  int64    `json:"priceCents"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
}

type PopupResponse struct {
	SessionID uuid.UUID   `json:"sessionId"`
	Product   ProductView `json:"product"`
}

type SelectionRequest struct {
	Color *string `json:"color,omitempty" validate:"omitempty,max=50"`
	Size  *string `json:"size,omitempty" validate:"omitempty,max=10"`
}

type SelectionResponse struct {
	Color    string `json:"color,omitempty"`
	Size     string `json:"size,omitempty"`
	Complete bool   `json:"complete"`
}

type SubmitResponse struct {
	Message     string `json:"message"`
	Level       string `json:"level"`
	ItemCount   int    `json:"itemCount"`
	BundleAdded bool   `json:"bundleAdded"`
}
