package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

// stubRow feeds one product row into scanProductFields without a database.
type stubRow struct {
	id        uuid.UUID
	handle    string
	title     string
	desc      *string
	price     int64
	createdAt time.Time
	updatedAt time.Time
	err       error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}

	*dest[0].(*uuid.UUID) = r.id
	*dest[1].(*string) = r.handle
	*dest[2].(*string) = r.title
	*dest[3].(**string) = r.desc
	*dest[4].(*int64) = r.price
	*dest[5].(*time.Time) = r.createdAt
	*dest[6].(*time.Time) = r.updatedAt
	return nil
}

func TestScanProductFields(t *testing.T) {
	id := uuid.New()
	desc := "a zip hoodie"
	created := time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)

	product, err := scanProductFields(stubRow{
		id:        id,
		handle:    "zip-hoodie",
		title:     "Zip Hoodie",
		desc:      &desc,
		price:     5900,
		createdAt: created,
		updatedAt: updated,
	})
	if err != nil {
		t.Fatalf("scanProductFields() error = %v", err)
	}

	if product.ID != id || product.Handle != "zip-hoodie" || product.Title != "Zip Hoodie" {
		t.Fatalf("product = %+v", product)
	}
	if product.Description == nil || *product.Description != desc {
		t.Fatalf("description = %v, want %q", product.Description, desc)
	}
	if product.PriceCents != 5900 {
		t.Fatalf("priceCents = %d, want 5900", product.PriceCents)
	}
	if product.CreatedAt != "2026-08-01T12:30:00Z" {
		t.Fatalf("createdAt = %q, want RFC3339", product.CreatedAt)
	}
	if product.UpdatedAt != updated.Format(time.RFC3339) {
		t.Fatalf("updatedAt = %q, want %q", product.UpdatedAt, updated.Format(time.RFC3339))
	}
}

func TestScanProductFieldsPropagatesError(t *testing.T) {
	scanErr := errors.New("closed pool")

	if _, err := scanProductFields(stubRow{err: scanErr}); !errors.Is(err, scanErr) {
		t.Fatalf("expected scan error, got %v", err)
	}
}
