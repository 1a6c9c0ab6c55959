package components

import "github.com/charmbracelet/lipgloss"

// BaseComponent provides common functionality for all components.
// Embed this in your component structs to get standard behavior.
type BaseComponent struct {
	style    lipgloss.Style
	strategy CompositeStrategy
}

// StyleFunc is a function that applies styling transformations to a lipgloss.Style
// using data from a Theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the computed style for this component using the provided theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	return b.strategy.Apply(b.style, theme)
}

// AddAppliers appends additional style appliers to the existing strategy.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	funcs := make([]StyleFunc, len(b.strategy.funcs), len(b.strategy.funcs)+len(appliers))
	copy(funcs, b.strategy.funcs)
	b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
}

// Spacing represents pixel spacing around a component.
// Uses CSS box model ordering: Top, Right, Bottom, Left (clockwise from top).
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// IsZero returns true if all spacing values are zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// Cells converts pixel spacing to terminal rows and columns.
func (s Spacing) Cells(theme Theme) Spacing {
	return Spacing{
		Top:    theme.Rows(s.Top),
		Right:  theme.Columns(s.Right),
		Bottom: theme.Rows(s.Bottom),
		Left:   theme.Columns(s.Left),
	}
}

// RenderContext provides layout information and theme to components during rendering.
type RenderContext struct {
	Theme Theme
	// MaxWidth limits the rendered width in cells; zero means unlimited.
	MaxWidth int
}

// DefaultContext returns a render context with the default theme and no width limit.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithMaxWidth returns a new context limited to width cells.
func (r RenderContext) WithMaxWidth(width int) RenderContext {
	r.MaxWidth = width
	return r
}

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// CrossAxisAlignment specifies how children are aligned along the cross axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
	CrossStretch
)

func (c CrossAxisAlignment) toLipglossPosition(dir Direction) lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		if dir == DirectionHorizontal {
			return lipgloss.Bottom
		}
		return lipgloss.Right
	default:
		if dir == DirectionHorizontal {
			return lipgloss.Top
		}
		return lipgloss.Left
	}
}

// MainAxisAlignment specifies how children are distributed along the main axis.
type MainAxisAlignment int

const (
	MainStart MainAxisAlignment = iota
	MainCenter
	MainEnd
)

func (m MainAxisAlignment) toLipglossPosition() lipgloss.Position {
	switch m {
	case MainCenter:
		return lipgloss.Center
	case MainEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
