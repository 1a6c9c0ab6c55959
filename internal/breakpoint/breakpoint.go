// Package breakpoint maps a measured viewport width onto one of the three
// responsive breakpoints shared by every platform.
package breakpoint

import "fmt"

// Width thresholds, inclusive lower bounds evaluated widest-first.
const (
	MediumMinWidth   = 768
	ExpandedMinWidth = 1280
)

// Breakpoint identifies a viewport width band. Its integer value is the slot
// index used by responsive tuples.
type Breakpoint int

const (
	Compact Breakpoint = iota
	Medium
	Expanded
)

// Count is the number of breakpoints (and responsive tuple slots).
const Count = 3

// All lists the breakpoints in slot order.
func All() []Breakpoint {
	return []Breakpoint{Compact, Medium, Expanded}
}

// Select returns the active breakpoint for a viewport width. Widths that are
// negative or NaN fall into the compact band.
func Select(width float64) Breakpoint {
	switch {
	case width >= ExpandedMinWidth:
		return Expanded
	case width >= MediumMinWidth:
		return Medium
	default:
		return Compact
	}
}

// Index returns the responsive tuple slot for the breakpoint.
func (b Breakpoint) Index() int {
	return int(b)
}

// Valid reports whether b is one of the three breakpoints.
func (b Breakpoint) Valid() bool {
	return b >= Compact && b <= Expanded
}

// Tag returns the stylesheet variant that scopes a utility class to this
// breakpoint.
func (b Breakpoint) Tag() string {
	switch b {
	case Compact:
		return "max-md"
	case Medium:
		return "md:max-lg"
	case Expanded:
		return "lg"
	default:
		panic(fmt.Sprintf("breakpoint: invalid breakpoint %d", int(b)))
	}
}

// MediaQuery returns the CSS media condition that activates classes scoped
// to the breakpoint.
func (b Breakpoint) MediaQuery() string {
	switch b {
	case Compact:
		return "(width < 768px)"
	case Medium:
		return "(768px <= width < 1280px)"
	case Expanded:
		return "(width >= 1280px)"
	default:
		panic(fmt.Sprintf("breakpoint: invalid breakpoint %d", int(b)))
	}
}

func (b Breakpoint) String() string {
	switch b {
	case Compact:
		return "compact"
	case Medium:
		return "medium"
	case Expanded:
		return "expanded"
	default:
		return fmt.Sprintf("Breakpoint(%d)", int(b))
	}
}
