package formatter

// Layout is the arrangement of a call's arguments
type Layout uint8

const (
	// LayoutInline keeps the single argument on the header line
	LayoutInline Layout = iota
	// LayoutStacked gives each labeled argument its own line
	LayoutStacked
)

// String returns the string representation of the layout
func (l Layout) String() string {
	switch l {
	case LayoutInline:
		return "inline"
	case LayoutStacked:
		return "stacked"
	default:
		return "unknown"
	}
}

// SelectLayout picks the layout for a call with n arguments. The choice
// depends on n alone. Calls always carry at least one argument, so n < 2
// is inline.
func SelectLayout(n int) Layout {
	if n < 2 {
		return LayoutInline
	}
	return LayoutStacked
}
