// Package domain holds the cart aggregate shared by the cart module's layers.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Line is one cart entry. VariantID is an opaque identifier passed through
// from the catalog unmodified.
type Line struct {
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
}

// Cart is an anonymous shopper's cart, keyed by the session cookie UUID.
type Cart struct {
	ID        uuid.UUID `json:"id"`
	Lines     []Line    `json:"lines"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewCart creates an empty cart for the given shopper.
func NewCart(id uuid.UUID) *Cart {
	return &Cart{ID: id, Lines: []Line{}, UpdatedAt: time.Now()}
}

// AddLine adds quantity of a variant, incrementing the existing line when the
// variant is already in the cart. Calling twice for the same variant yields
// one line with the summed quantity.
func (c *Cart) AddLine(variantID string, quantity int) {
	for i := range c.Lines {
		if c.Lines[i].VariantID == variantID {
			c.Lines[i].Quantity += quantity
			c.UpdatedAt = time.Now()
			return
		}
	}

	c.Lines = append(c.Lines, Line{VariantID: variantID, Quantity: quantity})
	c.UpdatedAt = time.Now()
}

// ItemCount is the total quantity across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}
