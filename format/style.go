package format

// Style carries the formatting parameters one indentation pass applies.
type Style struct {
	// IndentWidth is the number of columns one nesting step occupies.
	IndentWidth int
}

func DefaultStyle() *Style {
	return &Style{IndentWidth: 2}
}

func (s *Style) width() int {
	if s == nil || s.IndentWidth <= 0 {
		return DefaultStyle().IndentWidth
	}
	return s.IndentWidth
}
