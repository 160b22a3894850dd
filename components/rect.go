package components

// Rect is an axis-aligned bounding box. Y grows downwards.
type Rect struct {
	Top, Bottom, Left, Right float64
}

func inSpan(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// Overlap reports whether two boxes intersect. Edges are inclusive, so boxes
// that only share an edge overlap.
//
// An edge of a is tested against the span of b and then the reverse, which
// also catches a box that fully contains the other on an axis.
func Overlap(a, b Rect) bool {
	vertical := inSpan(a.Top, b.Top, b.Bottom) || inSpan(a.Bottom, b.Top, b.Bottom) ||
		inSpan(b.Top, a.Top, a.Bottom) || inSpan(b.Bottom, a.Top, a.Bottom)
	if !vertical {
		return false
	}
	return inSpan(a.Left, b.Left, b.Right) || inSpan(a.Right, b.Left, b.Right) ||
		inSpan(b.Left, a.Left, a.Right) || inSpan(b.Right, a.Left, a.Right)
}
