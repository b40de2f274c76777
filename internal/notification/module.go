// Package notification consumes shop domain events and delivers them to the
// operational log. It is the in-process sink for popup notices and cart
// count updates.
package notification

import (
	"context"

	"shopfront_backend/internal/events"
	"shopfront_backend/platform/logger"
)

// Module subscribes to shop events on the bus.
type Module struct {
	log *logger.Logger
}

// NewModule creates the notification module and registers its handlers.
func NewModule(bus events.Bus, log *logger.Logger) *Module {
	m := &Module{log: log}

	bus.Subscribe(events.PopupNotice{}.EventName(), events.HandlerFunc(m.handlePopupNotice))
	bus.Subscribe(events.CartCountUpdated{}.EventName(), events.HandlerFunc(m.handleCartCountUpdated))
	bus.Subscribe(events.BundleAddFailed{}.EventName(), events.HandlerFunc(m.handleBundleAddFailed))

	return m
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "notification"
}

func (m *Module) handlePopupNotice(_ context.Context, event events.Event) error {
	notice, ok := event.(events.PopupNotice)
	if !ok {
		return nil
	}

	if notice.Level == events.LevelError {
		m.log.Warn("popup notice",
			"sessionId", notice.SessionID,
			"message", notice.Message,
		)
		return nil
	}

	m.log.Info("popup notice",
		"sessionId", notice.SessionID,
		"message", notice.Message,
	)
	return nil
}

func (m *Module) handleCartCountUpdated(_ context.Context, event events.Event) error {
	updated, ok := event.(events.CartCountUpdated)
	if !ok {
		return nil
	}

	m.log.Info("cart count updated",
		"cartId", updated.CartID,
		"itemCount", updated.ItemCount,
	)
	return nil
}

func (m *Module) handleBundleAddFailed(_ context.Context, event events.Event) error {
	failed, ok := event.(events.BundleAddFailed)
	if !ok {
		return nil
	}

	m.log.Warn("bundle add failed",
		"cartId", failed.CartID,
		"targetHandle", failed.TargetHandle,
		"reason", failed.Reason,
	)
	return nil
}
