package domain

import "strings"

// VariantIndex maps a (color, size) pair to the variant a shopper would
// purchase. Color comparison is case-insensitive, size is exact. When a
// product lists duplicate combinations, the first-listed variant wins.
type VariantIndex struct {
	variants map[string]Variant
}

// BuildVariantIndex builds the lookup in O(n); lookups are O(1).
func BuildVariantIndex(variants []Variant) VariantIndex {
	index := VariantIndex{variants: make(map[string]Variant, len(variants))}
	for _, variant := range variants {
		key := indexKey(variant.Color, variant.Size)
		if _, exists := index.variants[key]; exists {
			continue
		}
		index.variants[key] = variant
	}
	return index
}

// Lookup resolves a selection to its variant.
func (i VariantIndex) Lookup(color, size string) (Variant, bool) {
	variant, ok := i.variants[indexKey(color, size)]
	return variant, ok
}

func indexKey(color, size string) string {
	return strings.ToLower(color) + "\x00" + size
}
