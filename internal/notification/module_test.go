package notification

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"shopfront_backend/internal/events"
	"shopfront_backend/platform/logger"
)

func TestModuleSubscribesToShopEvents(t *testing.T) {
	bus := events.NewInMemoryBus(logger.New("test"))
	NewModule(bus, logger.New("test"))

	// Delivery through the bus must not error for any of the shop events.
	cases := []events.Event{
		events.PopupNotice{
			BaseEvent: events.NewBaseEvent(),
			SessionID: uuid.New(),
			Message:   "Added to your cart.",
			Level:     events.LevelSuccess,
		},
		events.PopupNotice{
			BaseEvent: events.NewBaseEvent(),
			SessionID: uuid.New(),
			Message:   "Please choose a color and size first.",
			Level:     events.LevelError,
		},
		events.CartCountUpdated{
			BaseEvent: events.NewBaseEvent(),
			CartID:    uuid.New(),
			ItemCount: 3,
		},
		events.BundleAddFailed{
			BaseEvent:    events.NewBaseEvent(),
			CartID:       uuid.New(),
			TargetHandle: "canvas-tote",
			Reason:       "store down",
		},
	}

	for _, event := range cases {
		if err := bus.PublishSync(context.Background(), event); err != nil {
			t.Fatalf("PublishSync(%s) error = %v", event.EventName(), err)
		}
	}
}
