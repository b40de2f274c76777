// Package cart provides the shopper cart bounded context module.
package cart

import (
	"time"

	"shopfront_backend/internal/cart/handler"
	"shopfront_backend/internal/cart/repository"
	"shopfront_backend/internal/cart/service"
	apphttp "shopfront_backend/internal/http"
	"shopfront_backend/platform/logger"
	"shopfront_backend/platform/validator"

	"github.com/redis/go-redis/v9"
)

// Module is the cart bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the cart module.
func NewModule(client *redis.Client, cartTTL time.Duration, val *validator.Validator, log *logger.Logger) *Module {
	store := repository.NewRedisStore(client, cartTTL)
	svc := service.New(store, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "cart"
}

// Service returns the cart service; the shop module submits through it.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts cart routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Shopper.GET("/cart", m.handler.GetCart)
	ctx.Shopper.POST("/cart/lines", m.handler.AddLine)
	ctx.Shopper.DELETE("/cart", m.handler.ClearCart)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
