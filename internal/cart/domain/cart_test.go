package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestAddLineIncrementsExistingVariant(t *testing.T) {
	cart := NewCart(uuid.New())

	cart.AddLine("v1", 1)
	cart.AddLine("v2", 2)
	cart.AddLine("v1", 1)

	if len(cart.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(cart.Lines))
	}
	if cart.Lines[0].VariantID != "v1" || cart.Lines[0].Quantity != 2 {
		t.Fatalf("line 0 = %+v, want v1 x2", cart.Lines[0])
	}
	if cart.ItemCount() != 4 {
		t.Fatalf("itemCount = %d, want 4", cart.ItemCount())
	}
}

func TestItemCountEmptyCart(t *testing.T) {
	cart := NewCart(uuid.New())
	if cart.ItemCount() != 0 {
		t.Fatalf("itemCount = %d, want 0", cart.ItemCount())
	}
}
