package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Stack is a layout component that arranges children in a single direction.
type Stack struct {
	BaseComponent
	children   []Renderable
	direction  Direction
	gap        int
	mainAlign  MainAxisAlignment
	crossAlign CrossAxisAlignment
}

func newStack(dir Direction, children []Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     dir,
	}
}

// VStack creates a stack that places children top to bottom.
func VStack(children ...Renderable) *Stack {
	return newStack(DirectionVertical, children)
}

// HStack creates a stack that places children left to right.
func HStack(children ...Renderable) *Stack {
	return newStack(DirectionHorizontal, children)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	style := s.ComputeStyle(ctx.Theme)

	childCtx := ctx
	if ctx.MaxWidth > 0 {
		inner := ctx.MaxWidth - style.GetHorizontalFrameSize()
		if inner < 1 {
			inner = 1
		}
		childCtx = ctx.WithMaxWidth(inner)
	}

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		if view := renderChild(child, childCtx); view != "" {
			views = append(views, view)
		}
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = s.joinHorizontal(views, ctx.Theme.Columns(s.gap))
		if childCtx.MaxWidth > 0 && s.mainAlign != MainStart && lipgloss.Width(content) < childCtx.MaxWidth {
			content = lipgloss.PlaceHorizontal(childCtx.MaxWidth, s.mainAlign.toLipglossPosition(), content)
		}
	} else {
		content = s.joinVertical(views, ctx.Theme.Rows(s.gap))
	}

	return style.Render(content)
}

func (s *Stack) joinVertical(views []string, gap int) string {
	if len(views) == 0 {
		return ""
	}
	position := s.crossAlign.toLipglossPosition(DirectionVertical)
	if gap == 0 {
		return lipgloss.JoinVertical(position, views...)
	}

	spacer := strings.Repeat("\n", gap-1)
	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}
	return lipgloss.JoinVertical(position, result...)
}

func (s *Stack) joinHorizontal(views []string, gap int) string {
	if len(views) == 0 {
		return ""
	}
	position := s.crossAlign.toLipglossPosition(DirectionHorizontal)
	if gap == 0 {
		return lipgloss.JoinHorizontal(position, views...)
	}

	spacer := strings.Repeat(" ", gap)
	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}
	return lipgloss.JoinHorizontal(position, result...)
}

// WithGap sets the spacing between children in pixels.
func (s *Stack) WithGap(px int) *Stack {
	s.gap = px
	return s
}

// WithMainAlign sets the main axis alignment.
func (s *Stack) WithMainAlign(align MainAxisAlignment) *Stack {
	s.mainAlign = align
	return s
}

// WithCrossAlign sets the cross axis alignment.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// WithAppliers appends theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

// Direction returns the layout direction.
func (s *Stack) Direction() Direction {
	return s.direction
}
