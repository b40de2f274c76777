package domain

import "strings"

// BundleRule triggers an automatic secondary add when a specific color/size
// combination is purchased. The rule matches the shopper's selected values,
// not the resolved variant's canonical labels: color case-insensitively,
// size as an exact string.
type BundleRule struct {
	Color        string
	Size         string
	TargetHandle string
	Quantity     int
}

// TriggeredBundle names the promotional product to add and how many.
type TriggeredBundle struct {
	TargetHandle string
	Quantity     int
}

// Evaluate decides whether the selection triggers the bundle. Stateless;
// called only after the primary variant has resolved.
func (r BundleRule) Evaluate(selection Selection) (TriggeredBundle, bool) {
	if r.TargetHandle == "" {
		return TriggeredBundle{}, false
	}
	if !strings.EqualFold(selection.Color(), r.Color) {
		return TriggeredBundle{}, false
	}
	if selection.Size() != r.Size {
		return TriggeredBundle{}, false
	}

	quantity := r.Quantity
	if quantity < 1 {
		quantity = 1
	}
	return TriggeredBundle{TargetHandle: r.TargetHandle, Quantity: quantity}, true
}
