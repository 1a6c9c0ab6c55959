package components

import (
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/flexkit/internal/layout"
	"github.com/alexisbeaulieu97/flexkit/internal/style"
)

// ErrNoStyle is returned for nodes rendered without a native style, such as
// web containers.
var ErrNoStyle = errors.New("node has no native style to preview")

// Build converts a resolved tree into terminal components.
func Build(node layout.RenderedNode) (ContextualRenderable, error) {
	s := node.Rendered.Style
	if s == nil || (node.Kind != layout.KindText && !node.Rendered.Platform.IsNative()) {
		return nil, fmt.Errorf("%s: %w", node.Path, ErrNoStyle)
	}

	if node.Kind == layout.KindText {
		return buildText(node.Content, s), nil
	}

	children := make([]Renderable, 0, len(node.Children))
	for _, child := range node.Children {
		built, err := Build(child)
		if err != nil {
			return nil, err
		}
		children = append(children, built)
	}

	stack := VStack(children...)
	if str(s, "flexDirection") == "row" {
		stack = HStack(children...)
	}
	stack.WithGap(gapFor(s, stack.Direction())).
		WithCrossAlign(crossAlignment(str(s, "alignItems"))).
		WithMainAlign(mainAlignment(str(s, "justifyContent"))).
		WithAppliers(surface(s)...)
	return stack, nil
}

func buildText(content string, s style.Style) *Text {
	text := NewText(content)
	size, _ := number(s, "fontSize")
	text.WithAppliers(Typography(size, str(s, "fontWeight") == "bold"))
	if color := str(s, "color"); color != "" {
		text.WithAppliers(Foreground(color))
	}
	return text
}

func surface(s style.Style) []StyleFunc {
	var appliers []StyleFunc
	if padding := box(s, "padding"); !padding.IsZero() {
		appliers = append(appliers, Padding(padding))
	}
	if margin := box(s, "margin"); !margin.IsZero() {
		appliers = append(appliers, Margin(margin))
	}
	if bg := str(s, "backgroundColor"); bg != "" {
		appliers = append(appliers, Background(bg))
	}
	radius, _ := number(s, "borderRadius")
	if level := ElevationLevel(s); level > 0 {
		appliers = append(appliers, Elevation(level, radius > 0))
	}
	return appliers
}

// ElevationLevel reads the elevation level from Android or iOS shadow fields.
func ElevationLevel(s style.Style) int {
	if elevation, ok := number(s, "elevation"); ok {
		switch {
		case elevation <= 0:
			return 0
		case elevation == 1:
			return 1
		case elevation <= 2:
			return 2
		default:
			return 3
		}
	}
	if radius, ok := s["shadowRadius"].(float64); ok {
		switch {
		case radius <= 0:
			return 0
		case radius <= 1:
			return 1
		case radius <= 2.22:
			return 2
		default:
			return 3
		}
	}
	return 0
}

// box merges the all-sides, axis and single-side fields of a spacing family.
// More specific fields win.
func box(s style.Style, family string) Spacing {
	var out Spacing
	if all, ok := number(s, family); ok {
		out = Spacing{Top: all, Right: all, Bottom: all, Left: all}
	}
	if h, ok := number(s, family+"Horizontal"); ok {
		out.Left, out.Right = h, h
	}
	if v, ok := number(s, family+"Vertical"); ok {
		out.Top, out.Bottom = v, v
	}
	if v, ok := number(s, family+"Top"); ok {
		out.Top = v
	}
	if v, ok := number(s, family+"Right"); ok {
		out.Right = v
	}
	if v, ok := number(s, family+"Bottom"); ok {
		out.Bottom = v
	}
	if v, ok := number(s, family+"Left"); ok {
		out.Left = v
	}
	return out
}

func gapFor(s style.Style, dir Direction) int {
	key := "rowGap"
	if dir == DirectionHorizontal {
		key = "columnGap"
	}
	if v, ok := number(s, key); ok {
		return v
	}
	v, _ := number(s, "gap")
	return v
}

func crossAlignment(value string) CrossAxisAlignment {
	switch value {
	case "center":
		return CrossCenter
	case "flex-end":
		return CrossEnd
	case "stretch":
		return CrossStretch
	default:
		return CrossStart
	}
}

func mainAlignment(value string) MainAxisAlignment {
	switch value {
	case "center":
		return MainCenter
	case "flex-end":
		return MainEnd
	default:
		return MainStart
	}
}

func str(s style.Style, key string) string {
	v, _ := s[key].(string)
	return v
}

func number(s style.Style, key string) (int, bool) {
	switch v := s[key].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
