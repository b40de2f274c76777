package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"shopfront_backend/internal/shop/domain"
	"shopfront_backend/platform/apperr"
	"shopfront_backend/platform/events"
)

type mockProductSource struct {
	mu       sync.Mutex
	products map[string]domain.Product
	errs     map[string]error
	calls    []string
}

func newMockProductSource() *mockProductSource {
	return &mockProductSource{
		products: make(map[string]domain.Product),
		errs:     make(map[string]error),
	}
}

func (m *mockProductSource) ProductByHandle(_ context.Context, handle string) (domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, handle)
	if err, ok := m.errs[handle]; ok {
		return domain.Product{}, err
	}
	product, ok := m.products[handle]
	if !ok {
		return domain.Product{}, apperr.NotFound("product not found")
	}
	return product, nil
}

func (m *mockProductSource) lookups(handle string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, call := range m.calls {
		if call == handle {
			count++
		}
	}
	return count
}

type addCall struct {
	variantID string
	quantity  int
}

type mockCartGateway struct {
	mu        sync.Mutex
	addCalls  []addCall
	failAdds  map[string]error
	countErr  error
	itemCount int

	// When gate is set, AddLine signals entered and then blocks until the
	// gate is closed.
	gate    chan struct{}
	entered chan struct{}
}

func newMockCartGateway() *mockCartGateway {
	return &mockCartGateway{failAdds: make(map[string]error)}
}

func (m *mockCartGateway) AddLine(_ context.Context, _ uuid.UUID, variantID string, quantity int) (CartAddResult, error) {
	if m.gate != nil {
		if m.entered != nil {
			m.entered <- struct{}{}
		}
		<-m.gate
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.addCalls = append(m.addCalls, addCall{variantID: variantID, quantity: quantity})
	if err, ok := m.failAdds[variantID]; ok {
		return CartAddResult{}, err
	}

	m.itemCount += quantity
	return CartAddResult{ItemCount: m.itemCount}, nil
}

func (m *mockCartGateway) ItemCount(context.Context, uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.itemCount, nil
}

func (m *mockCartGateway) calls() []addCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]addCall, len(m.addCalls))
	copy(out, m.addCalls)
	return out
}

type mockBus struct {
	mu        sync.Mutex
	published []events.Event
}

func (m *mockBus) Publish(_ context.Context, event events.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, event)
}

func (m *mockBus) PublishSync(ctx context.Context, event events.Event) error {
	m.Publish(ctx, event)
	return nil
}

func (m *mockBus) Subscribe(string, events.Handler) {}

func (m *mockBus) byName(name string) []events.Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []events.Event
	for _, event := range m.published {
		if event.EventName() == name {
			out = append(out, event)
		}
	}
	return out
}

type auditRecord struct {
	cartID       uuid.UUID
	targetHandle string
	reason       string
}

type mockRecorder struct {
	mu      sync.Mutex
	records []auditRecord
}

func (m *mockRecorder) RecordBundleAddFailure(_ context.Context, cartID uuid.UUID, targetHandle, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, auditRecord{cartID: cartID, targetHandle: targetHandle, reason: reason})
}

func (m *mockRecorder) all() []auditRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]auditRecord, len(m.records))
	copy(out, m.records)
	return out
}
