// Package shop provides the quick-shop popup bounded context module.
package shop

import (
	"context"

	"shopfront_backend/internal/audit"
	cartservice "shopfront_backend/internal/cart/service"
	catalogservice "shopfront_backend/internal/catalog/service"
	"shopfront_backend/internal/events"
	apphttp "shopfront_backend/internal/http"
	"shopfront_backend/internal/shop/domain"
	"shopfront_backend/internal/shop/handler"
	"shopfront_backend/internal/shop/service"
	"shopfront_backend/platform/config"
	"shopfront_backend/platform/logger"
	"shopfront_backend/platform/validator"
)

// Config narrows the app configuration to what the shop module reads.
type Config interface {
	config.BundleConfig
	config.PopupConfig
}

// Module is the shop bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the shop module on top of the catalog
// and cart services.
func NewModule(cfg Config, catalog *catalogservice.Service, cart *cartservice.Service, bus events.Bus, recorder audit.Recorder, val *validator.Validator, log *logger.Logger) *Module {
	rule := domain.BundleRule{
		Color:        cfg.GetBundleTriggerColor(),
		Size:         cfg.GetBundleTriggerSize(),
		TargetHandle: cfg.GetBundleTargetHandle(),
		Quantity:     1,
	}
	if !cfg.IsBundleEnabled() {
		rule.TargetHandle = ""
	}

	svc := service.New(
		service.NewCatalogProductSource(catalog),
		service.NewCartServiceGateway(cart),
		bus,
		recorder,
		rule,
		cfg.GetPopupSessionTTL(),
		log,
	)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "shop"
}

// StartJanitor starts the idle-session sweeper.
func (m *Module) StartJanitor(ctx context.Context) {
	m.service.StartJanitor(ctx)
}

// RegisterRoutes mounts popup routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Shopper.POST("/popup", m.handler.OpenPopup)
	ctx.Shopper.PUT("/popup/:id/selection", m.handler.UpdateSelection)
	ctx.Shopper.POST("/popup/:id/submit", ctx.SubmitRateLimiter.RateLimit(), m.handler.Submit)
	ctx.Shopper.DELETE("/popup/:id", m.handler.ClosePopup)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
