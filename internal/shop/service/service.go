package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"shopfront_backend/internal/audit"
	"shopfront_backend/internal/events"
	"shopfront_backend/internal/shop/domain"
	"shopfront_backend/internal/shop/transport"
	"shopfront_backend/platform/apperr"
	"shopfront_backend/platform/logger"
)

// Shopper-facing messages delivered through the notification sink and the
// submit response.
const (
	msgAddedToCart         = "Added to your cart."
	msgIncompleteSelection = "Please choose a color and size first."
	msgNoMatchingVariant   = "This color and size combination is not available."
	msgAddFailed           = "We could not add this item to your cart. Please try again."
	msgProductUnavailable  = "This product is currently unavailable."
	msgSessionNotFound     = "popup session not found"
	msgSubmitInFlight      = "a submission is already in progress"
)

const janitorInterval = time.Minute

// Service owns the open popup sessions and runs the selection/submission
// workflow against the catalog and cart collaborators.
type Service struct {
	products   ProductSource
	carts      CartGateway
	bus        events.Bus
	recorder   audit.Recorder
	rule       domain.BundleRule
	sessionTTL time.Duration
	log        *logger.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
}

// New creates the shop service.
func New(products ProductSource, carts CartGateway, bus events.Bus, recorder audit.Recorder, rule domain.BundleRule, sessionTTL time.Duration, log *logger.Logger) *Service {
	return &Service{
		products:   products,
		carts:      carts,
		bus:        bus,
		recorder:   recorder,
		rule:       rule,
		sessionTTL: sessionTTL,
		log:        log,
		sessions:   make(map[uuid.UUID]*session),
	}
}

// Open fetches the product fresh and creates a popup session with an empty
// selection. A load failure never opens a broken session.
func (s *Service) Open(ctx context.Context, cartID uuid.UUID, productHandle string) (transport.PopupResponse, error) {
	product, err := s.products.ProductByHandle(ctx, productHandle)
	if err != nil {
		// No session exists yet; the notice carries a nil session id.
		s.notify(ctx, uuid.Nil, msgProductUnavailable, events.LevelError)
		if apperr.Is(err, apperr.KindNotFound) {
			return transport.PopupResponse{}, err
		}
		return transport.PopupResponse{}, apperr.Wrap(apperr.KindUnavailable, msgProductUnavailable, err)
	}

	sess := newSession(cartID, product)

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	s.log.Info("popup opened", "sessionId", sess.id, "productHandle", product.Handle)

	return transport.PopupResponse{
		SessionID: sess.id,
		Product: transport.ProductView{
			Handle:      product.Handle,
			Title:       product.Title,
			Description: product.Description,
			PriceCents:  product.PriceCents,
			Colors:      product.Colors(),
			Sizes:       product.Sizes(),
		},
	}, nil
}

// UpdateSelection applies a color and/or size choice and reports whether the
// selection is now complete.
func (s *Service) UpdateSelection(sessionID, cartID uuid.UUID, req transport.SelectionRequest) (transport.SelectionResponse, error) {
	sess, err := s.session(sessionID, cartID)
	if err != nil {
		return transport.SelectionResponse{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if req.Color != nil {
		sess.selection.SetColor(*req.Color)
	}
	if req.Size != nil {
		sess.selection.SetSize(*req.Size)
	}
	sess.touch()

	return transport.SelectionResponse{
		Color:    sess.selection.Color(),
		Size:     sess.selection.Size(),
		Complete: sess.selection.IsComplete(),
	}, nil
}

// Submit runs the checkout workflow: validate the selection, resolve the
// variant, write the primary line, conditionally add the bundle, refresh the
// cart count. The bundle step and the count refresh are best-effort; only the
// primary write decides the outcome.
func (s *Service) Submit(ctx context.Context, sessionID, cartID uuid.UUID) (transport.SubmitResponse, error) {
	sess, err := s.session(sessionID, cartID)
	if err != nil {
		return transport.SubmitResponse{}, err
	}

	sess.mu.Lock()
	if sess.state != stateIdle {
		sess.mu.Unlock()
		return transport.SubmitResponse{}, apperr.Conflict(msgSubmitInFlight)
	}
	sess.state = stateValidating
	sess.touch()

	if !sess.selection.IsComplete() {
		sess.state = stateIdle
		sess.mu.Unlock()
		s.notify(ctx, sessionID, msgIncompleteSelection, events.LevelError)
		return transport.SubmitResponse{}, apperr.Validation(msgIncompleteSelection)
	}

	variant, ok := sess.index.Lookup(sess.selection.Color(), sess.selection.Size())
	if !ok {
		sess.state = stateIdle
		sess.mu.Unlock()
		s.notify(ctx, sessionID, msgNoMatchingVariant, events.LevelError)
		return transport.SubmitResponse{}, apperr.NotFound(msgNoMatchingVariant)
	}

	// Capture the submission's inputs before the first suspension point:
	// a close or selection change mid-flight must not affect this attempt.
	selection := sess.selection
	sess.state = stateSubmitting
	sess.mu.Unlock()

	result, err := s.carts.AddLine(ctx, cartID, variant.ID, 1)
	if err != nil {
		s.resolveFailure(sess)
		s.notify(ctx, sessionID, msgAddFailed, events.LevelError)
		return transport.SubmitResponse{}, apperr.Wrap(apperr.KindUnavailable, msgAddFailed, err)
	}

	itemCount := result.ItemCount
	bundleAdded := false
	if bundle, triggered := s.rule.Evaluate(selection); triggered {
		if count, added := s.addBundle(ctx, cartID, bundle); added {
			itemCount = count
			bundleAdded = true
		}
	}

	// Best-effort badge refresh; a failure keeps the count from the writes.
	if count, err := s.carts.ItemCount(ctx, cartID); err == nil {
		itemCount = count
	}

	s.bus.Publish(ctx, events.CartCountUpdated{
		BaseEvent: events.NewBaseEvent(),
		CartID:    cartID,
		ItemCount: itemCount,
	})
	s.notify(ctx, sessionID, msgAddedToCart, events.LevelSuccess)
	s.resolveSuccess(sess)

	return transport.SubmitResponse{
		Message:     msgAddedToCart,
		Level:       events.LevelSuccess,
		ItemCount:   itemCount,
		BundleAdded: bundleAdded,
	}, nil
}

// Close resets the selection and discards the session.
func (s *Service) Close(sessionID, cartID uuid.UUID) error {
	sess, err := s.session(sessionID, cartID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	sess.selection.Reset()
	sess.mu.Unlock()

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	s.log.Info("popup closed", "sessionId", sessionID)
	return nil
}

// StartJanitor evicts idle sessions until ctx is cancelled.
func (s *Service) StartJanitor(ctx context.Context) {
	if s.sessionTTL <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				s.evictExpired(now)
			}
		}
	}()
}

// addBundle attempts the promotional secondary add. Any failure is recorded
// and swallowed; the primary purchase already succeeded.
func (s *Service) addBundle(ctx context.Context, cartID uuid.UUID, bundle domain.TriggeredBundle) (int, bool) {
	product, err := s.products.ProductByHandle(ctx, bundle.TargetHandle)
	if err != nil {
		s.recordBundleFailure(ctx, cartID, bundle.TargetHandle, err)
		return 0, false
	}
	if len(product.Variants) == 0 {
		s.recordBundleFailure(ctx, cartID, bundle.TargetHandle, apperr.NotFound("bundle product has no variants"))
		return 0, false
	}

	result, err := s.carts.AddLine(ctx, cartID, product.Variants[0].ID, bundle.Quantity)
	if err != nil {
		s.recordBundleFailure(ctx, cartID, bundle.TargetHandle, err)
		return 0, false
	}

	return result.ItemCount, true
}

func (s *Service) recordBundleFailure(ctx context.Context, cartID uuid.UUID, targetHandle string, err error) {
	s.log.BundleAddFailure(cartID.String(), targetHandle, err)
	s.bus.Publish(ctx, events.BundleAddFailed{
		BaseEvent:    events.NewBaseEvent(),
		CartID:       cartID,
		TargetHandle: targetHandle,
		Reason:       err.Error(),
	})
	s.recorder.RecordBundleAddFailure(ctx, cartID, targetHandle, err.Error())
}

func (s *Service) notify(ctx context.Context, sessionID uuid.UUID, message, level string) {
	s.bus.Publish(ctx, events.PopupNotice{
		BaseEvent: events.NewBaseEvent(),
		SessionID: sessionID,
		Message:   message,
		Level:     level,
	})
}

func (s *Service) resolveSuccess(sess *session) {
	sess.mu.Lock()
	sess.selection.Reset()
	sess.state = stateIdle
	sess.mu.Unlock()
}

func (s *Service) resolveFailure(sess *session) {
	sess.mu.Lock()
	sess.state = stateIdle
	sess.mu.Unlock()
}

func (s *Service) session(sessionID, cartID uuid.UUID) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok || sess.cartID != cartID {
		return nil, apperr.NotFound(msgSessionNotFound)
	}
	return sess, nil
}

func (s *Service) evictExpired(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if sess.expired(s.sessionTTL, now) {
			delete(s.sessions, id)
		}
	}
}
