package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shopfront_backend/internal/cart/service"
	"shopfront_backend/internal/cart/transport"
	"shopfront_backend/platform/httpkit"
	"shopfront_backend/platform/validator"
)

// Handler handles HTTP requests for the shopper's cart.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new cart handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// GetCart returns the shopper's cart snapshot.
// GET /api/v1/cart
func (h *Handler) GetCart(c *gin.Context) {
	cartID := httpkit.MustGetCartID(c)
	if cartID == uuid.Nil {
		return
	}

	result, err := h.svc.Snapshot(c.Request.Context(), cartID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// AddLine adds a variant to the shopper's cart.
// POST /api/v1/cart/lines
func (h *Handler) AddLine(c *gin.Context) {
	var req transport.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	cartID := httpkit.MustGetCartID(c)
	if cartID == uuid.Nil {
		return
	}

	result, err := h.svc.AddLine(c.Request.Context(), cartID, req.VariantID, req.Quantity)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}

// ClearCart empties the shopper's cart.
// DELETE /api/v1/cart
func (h *Handler) ClearCart(c *gin.Context) {
	cartID := httpkit.MustGetCartID(c)
	if cartID == uuid.Nil {
		return
	}

	if httpkit.HandleError(c, h.svc.Clear(c.Request.Context(), cartID)) {
		return
	}
	c.Status(http.StatusNoContent)
}
