package domain

// Selection holds the shopper's current color/size choice. A zero Selection
// is empty and incomplete. Pure state; no I/O.
type Selection struct {
	color string
	size  string
}

// SetColor records the chosen color.
func (s *Selection) SetColor(value string) {
	s.color = value
}

// SetSize records the chosen size.
func (s *Selection) SetSize(value string) {
	s.size = value
}

// Color returns the chosen color, empty when unset.
func (s *Selection) Color() string {
	return s.color
}

// Size returns the chosen size, empty when unset.
func (s *Selection) Size() string {
	return s.size
}

// IsComplete reports whether both fields are set. Validity is immediate:
// any change that completes the pair makes this true.
func (s *Selection) IsComplete() bool {
	return s.color != "" && s.size != ""
}

// Reset clears both fields.
func (s *Selection) Reset() {
	s.color = ""
	s.size = ""
}
