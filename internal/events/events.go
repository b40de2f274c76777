// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"shopfront_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// Notice levels carried by PopupNotice.
const (
	LevelSuccess = "success"
	LevelError   = "error"
)

// =============================================================================
// Shop Domain Events
// =============================================================================

// PopupNotice is published when the popup flow produces a shopper-facing
// message (the notification sink).
type PopupNotice struct {
	BaseEvent
	SessionID uuid.UUID `json:"sessionId"`
	Message   string    `json:"message"`
	Level     string    `json:"level"`
}

func (e PopupNotice) EventName() string { return "shop.popup.notice" }

// CartCountUpdated is published after a successful submission with the fresh
// cart item count (the cart-count sink). Best-effort consumers only.
type CartCountUpdated struct {
	BaseEvent
	CartID    uuid.UUID `json:"cartId"`
	ItemCount int       `json:"itemCount"`
}

func (e CartCountUpdated) EventName() string { return "shop.cart.count_updated" }

// BundleAddFailed is published when the promotional bundle add fails after a
// successful primary add. Never shopper-facing.
type BundleAddFailed struct {
	BaseEvent
	CartID       uuid.UUID `json:"cartId"`
	TargetHandle string    `json:"targetHandle"`
	Reason       string    `json:"reason"`
}

func (e BundleAddFailed) EventName() string { return "shop.bundle.add_failed" }
