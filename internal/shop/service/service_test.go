package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"shopfront_backend/internal/events"
	"shopfront_backend/internal/shop/domain"
	"shopfront_backend/internal/shop/transport"
	"shopfront_backend/platform/apperr"
	"shopfront_backend/platform/logger"
)

const (
	hoodieHandle = "zip-hoodie"
	toteHandle   = "canvas-tote"
)

func testRule() domain.BundleRule {
	return domain.BundleRule{
		Color:        "black",
		Size:         "M",
		TargetHandle: toteHandle,
		Quantity:     1,
	}
}

func testFixture() (*Service, *mockProductSource, *mockCartGateway, *mockBus, *mockRecorder) {
	products := newMockProductSource()
	products.products[hoodieHandle] = domain.Product{
		Handle:     hoodieHandle,
		Title:      "Zip Hoodie",
		PriceCents: 5900,
		Variants: []domain.Variant{
			{ID: "v1", Color: "Black", Size: "S"},
			{ID: "v2", Color: "Black", Size: "M"},
			{ID: "v3", Color: "White", Size: "M"},
		},
	}
	products.products[toteHandle] = domain.Product{
		Handle:     toteHandle,
		Title:      "Canvas Tote",
		PriceCents: 1500,
		Variants: []domain.Variant{
			{ID: "tb1", Color: "Natural", Size: "M"},
		},
	}

	carts := newMockCartGateway()
	bus := &mockBus{}
	recorder := &mockRecorder{}
	svc := New(products, carts, bus, recorder, testRule(), time.Minute, logger.New("test"))
	return svc, products, carts, bus, recorder
}

func openPopup(t *testing.T, svc *Service, cartID uuid.UUID) uuid.UUID {
	t.Helper()
	resp, err := svc.Open(context.Background(), cartID, hoodieHandle)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return resp.SessionID
}

func selectVariant(t *testing.T, svc *Service, sessionID, cartID uuid.UUID, color, size string) {
	t.Helper()
	resp, err := svc.UpdateSelection(sessionID, cartID, transport.SelectionRequest{Color: &color, Size: &size})
	if err != nil {
		t.Fatalf("UpdateSelection() error = %v", err)
	}
	if !resp.Complete {
		t.Fatalf("expected selection %q/%q to be complete", color, size)
	}
}

func TestOpenUnknownProduct(t *testing.T) {
	svc, _, _, _, _ := testFixture()

	_, err := svc.Open(context.Background(), uuid.New(), "no-such-product")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestOpenFailurePublishesNotice(t *testing.T) {
	svc, _, _, bus, _ := testFixture()

	_, err := svc.Open(context.Background(), uuid.New(), "no-such-product")
	if err == nil {
		t.Fatal("expected error for unknown product")
	}

	notices := bus.byName("shop.popup.notice")
	if len(notices) != 1 {
		t.Fatalf("notices = %d, want 1", len(notices))
	}
	notice := notices[0].(events.PopupNotice)
	if notice.Level != events.LevelError || notice.SessionID != uuid.Nil {
		t.Fatalf("notice = %+v, want error level with nil session id", notice)
	}
}

func TestOpenSourceUnavailable(t *testing.T) {
	svc, products, _, _, _ := testFixture()
	products.errs[hoodieHandle] = errors.New("connection refused")

	_, err := svc.Open(context.Background(), uuid.New(), hoodieHandle)
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
}

func TestOpenReturnsDistinctOptions(t *testing.T) {
	svc, _, _, _, _ := testFixture()

	resp, err := svc.Open(context.Background(), uuid.New(), hoodieHandle)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	wantColors := []string{"Black", "White"}
	wantSizes := []string{"S", "M"}
	if len(resp.Product.Colors) != len(wantColors) {
		t.Fatalf("colors = %v, want %v", resp.Product.Colors, wantColors)
	}
	for i, color := range wantColors {
		if resp.Product.Colors[i] != color {
			t.Fatalf("colors = %v, want %v", resp.Product.Colors, wantColors)
		}
	}
	for i, size := range wantSizes {
		if resp.Product.Sizes[i] != size {
			t.Fatalf("sizes = %v, want %v", resp.Product.Sizes, wantSizes)
		}
	}
}

func TestUpdateSelectionEitherOrder(t *testing.T) {
	svc, _, _, _, _ := testFixture()
	cartID := uuid.New()
	sessionID := openPopup(t, svc, cartID)

	size := "M"
	resp, err := svc.UpdateSelection(sessionID, cartID, transport.SelectionRequest{Size: &size})
	if err != nil {
		t.Fatalf("UpdateSelection() error = %v", err)
	}
	if resp.Complete {
		t.Fatal("selection complete after size only")
	}

	color := "Black"
	resp, err = svc.UpdateSelection(sessionID, cartID, transport.SelectionRequest{Color: &color})
	if err != nil {
		t.Fatalf("UpdateSelection() error = %v", err)
	}
	if !resp.Complete {
		t.Fatal("selection not complete after color and size")
	}
}

func TestUpdateSelectionWrongCart(t *testing.T) {
	svc, _, _, _, _ := testFixture()
	sessionID := openPopup(t, svc, uuid.New())

	color := "Black"
	_, err := svc.UpdateSelection(sessionID, uuid.New(), transport.SelectionRequest{Color: &color})
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not-found error for foreign cart, got %v", err)
	}
}

func TestSubmitIncompleteSelection(t *testing.T) {
	svc, _, carts, bus, _ := testFixture()
	cartID := uuid.New()
	sessionID := openPopup(t, svc, cartID)

	color := "Black"
	if _, err := svc.UpdateSelection(sessionID, cartID, transport.SelectionRequest{Color: &color}); err != nil {
		t.Fatalf("UpdateSelection() error = %v", err)
	}

	_, err := svc.Submit(context.Background(), sessionID, cartID)
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if calls := carts.calls(); len(calls) != 0 {
		t.Fatalf("cart gateway called %d times for incomplete selection", len(calls))
	}

	notices := bus.byName("shop.popup.notice")
	if len(notices) != 1 {
		t.Fatalf("notices = %d, want 1", len(notices))
	}
	notice := notices[0].(events.PopupNotice)
	if notice.Level != events.LevelError || notice.Message != msgIncompleteSelection {
		t.Fatalf("notice = %+v", notice)
	}
}

func TestSubmitNoMatchingVariant(t *testing.T) {
	svc, _, carts, _, _ := testFixture()
	cartID := uuid.New()
	sessionID := openPopup(t, svc, cartID)
	selectVariant(t, svc, sessionID, cartID, "White", "S")

	_, err := svc.Submit(context.Background(), sessionID, cartID)
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if calls := carts.calls(); len(calls) != 0 {
		t.Fatalf("cart gateway called %d times for unresolvable selection", len(calls))
	}
}

func TestSubmitAddsVariant(t *testing.T) {
	svc, products, carts, bus, _ := testFixture()
	cartID := uuid.New()
	sessionID := openPopup(t, svc, cartID)
	selectVariant(t, svc, sessionID, cartID, "white", "M")

	resp, err := svc.Submit(context.Background(), sessionID, cartID)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if resp.BundleAdded {
		t.Fatal("bundle added for non-trigger selection")
	}
	if resp.ItemCount != 1 {
		t.Fatalf("itemCount = %d, want 1", resp.ItemCount)
	}

	calls := carts.calls()
	if len(calls) != 1 || calls[0].variantID != "v3" || calls[0].quantity != 1 {
		t.Fatalf("cart calls = %+v", calls)
	}
	if products.lookups(toteHandle) != 0 {
		t.Fatal("bundle product fetched for non-trigger selection")
	}

	counts := bus.byName("shop.cart.count_updated")
	if len(counts) != 1 || counts[0].(events.CartCountUpdated).ItemCount != 1 {
		t.Fatalf("count events = %+v", counts)
	}
}

func TestSubmitTriggersBundle(t *testing.T) {
	svc, _, carts, _, recorder := testFixture()
	cartID := uuid.New()
	sessionID := openPopup(t, svc, cartID)
	selectVariant(t, svc, sessionID, cartID, "BLACK", "M")

	resp, err := svc.Submit(context.Background(), sessionID, cartID)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if !resp.BundleAdded {
		t.Fatal("bundle not added for trigger selection")
	}
	if resp.ItemCount != 2 {
		t.Fatalf("itemCount = %d, want 2", resp.ItemCount)
	}

	calls := carts.calls()
	if len(calls) != 2 || calls[0].variantID != "v2" || calls[1].variantID != "tb1" {
		t.Fatalf("cart calls = %+v", calls)
	}
	if records := recorder.all(); len(records) != 0 {
		t.Fatalf("unexpected audit records %+v", records)
	}
}

func TestSubmitPrimaryFailure(t *testing.T) {
	svc, products, carts, _, recorder := testFixture()
	carts.failAdds["v2"] = errors.New("store down")

	cartID := uuid.New()
	sessionID := openPopup(t, svc, cartID)
	selectVariant(t, svc, sessionID, cartID, "Black", "M")

	_, err := svc.Submit(context.Background(), sessionID, cartID)
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
	if calls := carts.calls(); len(calls) != 1 {
		t.Fatalf("cart calls = %+v, want the primary attempt only", calls)
	}
	if products.lookups(toteHandle) != 0 {
		t.Fatal("bundle product fetched after primary failure")
	}
	if records := recorder.all(); len(records) != 0 {
		t.Fatalf("primary failure recorded as bundle audit: %+v", records)
	}

	// The session returns to idle and keeps its selection for a retry.
	delete(carts.failAdds, "v2")
	resp, err := svc.Submit(context.Background(), sessionID, cartID)
	if err != nil {
		t.Fatalf("retry Submit() error = %v", err)
	}
	if resp.ItemCount == 0 {
		t.Fatal("retry did not add to cart")
	}
}

func TestSubmitBundleFailureIsSwallowed(t *testing.T) {
	svc, _, carts, bus, recorder := testFixture()
	carts.failAdds["tb1"] = errors.New("store down")

	cartID := uuid.New()
	sessionID := openPopup(t, svc, cartID)
	selectVariant(t, svc, sessionID, cartID, "Black", "M")

	resp, err := svc.Submit(context.Background(), sessionID, cartID)
	if err != nil {
		t.Fatalf("Submit() error = %v, want success despite bundle failure", err)
	}
	if resp.BundleAdded {
		t.Fatal("bundleAdded = true after bundle failure")
	}
	if resp.Message != msgAddedToCart || resp.Level != events.LevelSuccess {
		t.Fatalf("response = %+v, want success message", resp)
	}
	if resp.ItemCount != 1 {
		t.Fatalf("itemCount = %d, want 1", resp.ItemCount)
	}

	records := recorder.all()
	if len(records) != 1 || records[0].targetHandle != toteHandle || records[0].cartID != cartID {
		t.Fatalf("audit records = %+v", records)
	}
	if failures := bus.byName("shop.bundle.add_failed"); len(failures) != 1 {
		t.Fatalf("bundle failure events = %d, want 1", len(failures))
	}
}

func TestSubmitBundleTargetMissing(t *testing.T) {
	svc, products, _, _, recorder := testFixture()
	delete(products.products, toteHandle)

	cartID := uuid.New()
	sessionID := openPopup(t, svc, cartID)
	selectVariant(t, svc, sessionID, cartID, "Black", "M")

	resp, err := svc.Submit(context.Background(), sessionID, cartID)
	if err != nil {
		t.Fatalf("Submit() error = %v, want success despite missing bundle target", err)
	}
	if resp.BundleAdded {
		t.Fatal("bundleAdded = true with missing bundle target")
	}
	if records := recorder.all(); len(records) != 1 {
		t.Fatalf("audit records = %+v, want 1", records)
	}
}

func TestSubmitResetsSelectionOnSuccess(t *testing.T) {
	svc, _, _, _, _ := testFixture()
	cartID := uuid.New()
	sessionID := openPopup(t, svc, cartID)
	selectVariant(t, svc, sessionID, cartID, "White", "M")

	if _, err := svc.Submit(context.Background(), sessionID, cartID); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	resp, err := svc.UpdateSelection(sessionID, cartID, transport.SelectionRequest{})
	if err != nil {
		t.Fatalf("UpdateSelection() error = %v", err)
	}
	if resp.Complete || resp.Color != "" || resp.Size != "" {
		t.Fatalf("selection not reset after success: %+v", resp)
	}
}

func TestCloseDiscardsSession(t *testing.T) {
	svc, _, _, _, _ := testFixture()
	cartID := uuid.New()
	sessionID := openPopup(t, svc, cartID)

	if err := svc.Close(sessionID, cartID); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	_, err := svc.Submit(context.Background(), sessionID, cartID)
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not-found error after close, got %v", err)
	}
}

func TestCloseMidSubmitKeepsCapturedInputs(t *testing.T) {
	svc, _, carts, _, recorder := testFixture()
	carts.failAdds["tb1"] = errors.New("store down")
	carts.gate = make(chan struct{})
	carts.entered = make(chan struct{}, 1)

	cartID := uuid.New()
	sessionID := openPopup(t, svc, cartID)
	selectVariant(t, svc, sessionID, cartID, "Black", "M")

	type result struct {
		resp transport.SubmitResponse
		err  error
	}
	done := make(chan result, 1)
	go func() {
		resp, err := svc.Submit(context.Background(), sessionID, cartID)
		done <- result{resp: resp, err: err}
	}()

	// Close the popup while the primary write is in flight; the submission
	// keeps the inputs it captured at the start.
	<-carts.entered
	if err := svc.Close(sessionID, cartID); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	close(carts.gate)

	first := <-done
	if first.err != nil {
		t.Fatalf("Submit() error = %v, want success despite mid-flight close", first.err)
	}
	if first.resp.Level != events.LevelSuccess {
		t.Fatalf("response = %+v, want success", first.resp)
	}
	if records := recorder.all(); len(records) != 1 || records[0].targetHandle != toteHandle {
		t.Fatalf("audit records = %+v, want one for the bundle failure", records)
	}
}

func TestConcurrentSubmitRejected(t *testing.T) {
	svc, _, carts, _, _ := testFixture()
	carts.gate = make(chan struct{})
	carts.entered = make(chan struct{}, 1)

	cartID := uuid.New()
	sessionID := openPopup(t, svc, cartID)
	selectVariant(t, svc, sessionID, cartID, "White", "M")

	type result struct {
		resp transport.SubmitResponse
		err  error
	}
	done := make(chan result, 1)
	go func() {
		resp, err := svc.Submit(context.Background(), sessionID, cartID)
		done <- result{resp: resp, err: err}
	}()

	// Wait for the first submission to reach the cart write, then race it.
	<-carts.entered
	_, err := svc.Submit(context.Background(), sessionID, cartID)
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict for concurrent submit, got %v", err)
	}

	close(carts.gate)
	first := <-done
	if first.err != nil {
		t.Fatalf("first Submit() error = %v", first.err)
	}
	if calls := carts.calls(); len(calls) != 1 {
		t.Fatalf("cart calls = %+v, want exactly one write", calls)
	}
}
