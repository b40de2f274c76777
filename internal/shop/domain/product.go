// Package domain holds the quick-shop popup's core types: the product view,
// the variant index, the shopper's selection, and the bundle rule.
package domain

// Variant is one purchasable color/size combination. ID is opaque and passed
// through to the cart unmodified.
type Variant struct {
	ID    string
	Color string
	Size  string
}

// Product is the popup's view of a catalog product, fetched fresh per popup
// invocation and discarded on close.
type Product struct {
	Handle      string
	Title       string
	Description string
	PriceCents  int64
	Variants    []Variant
}

// Colors returns the distinct color labels in listed order.
func (p Product) Colors() []string {
	seen := make(map[string]struct{}, len(p.Variants))
	colors := make([]string, 0, len(p.Variants))
	for _, variant := range p.Variants {
		if _, ok := seen[variant.Color]; ok {
			continue
		}
		seen[variant.Color] = struct{}{}
		colors = append(colors, variant.Color)
	}
	return colors
}

// Sizes returns the distinct size labels in listed order.
func (p Product) Sizes() []string {
	seen := make(map[string]struct{}, len(p.Variants))
	sizes := make([]string, 0, len(p.Variants))
	for _, variant := range p.Variants {
		if _, ok := seen[variant.Size]; ok {
			continue
		}
		seen[variant.Size] = struct{}{}
		sizes = append(sizes, variant.Size)
	}
	return sizes
}
