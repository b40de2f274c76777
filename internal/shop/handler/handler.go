package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shopfront_backend/internal/shop/service"
	"shopfront_backend/internal/shop/transport"
	"shopfront_backend/platform/httpkit"
	"shopfront_backend/platform/validator"
)

// Handler handles HTTP requests for the quick-shop popup.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgInvalidSessionID = "invalid session id"
	msgValidationFailed = "validation failed"
)

// New creates a new shop handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// OpenPopup loads the product and opens a popup session.
// POST /api/v1/popup
func (h *Handler) OpenPopup(c *gin.Context) {
	var req transport.OpenPopupRequest
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

	result, err := h.svc.Open(c.Request.Context(), cartID, req.ProductHandle)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}

// UpdateSelection applies a color and/or size pick to the popup session.
// PUT /api/v1/popup/:id/selection
func (h *Handler) UpdateSelection(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req transport.SelectionRequest
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

	result, err := h.svc.UpdateSelection(sessionID, cartID, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Submit adds the selected variant (and any triggered bundle) to the cart.
// POST /api/v1/popup/:id/submit
func (h *Handler) Submit(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	cartID := httpkit.MustGetCartID(c)
	if cartID == uuid.Nil {
		return
	}

	result, err := h.svc.Submit(c.Request.Context(), sessionID, cartID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// ClosePopup discards the popup session and its selection.
// DELETE /api/v1/popup/:id
func (h *Handler) ClosePopup(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	cartID := httpkit.MustGetCartID(c)
	if cartID == uuid.Nil {
		return
	}

	if httpkit.HandleError(c, h.svc.Close(sessionID, cartID)) {
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidSessionID, nil)
		return uuid.Nil, false
	}
	return sessionID, true
}
