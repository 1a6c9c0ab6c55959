package layout

import (
	"fmt"
	"strconv"

	flexerrors "github.com/alexisbeaulieu97/flexkit/pkg/errors"
)

// Kind names a primitive.
type Kind string

const (
	KindFlex   Kind = "flex"
	KindBox    Kind = "box"
	KindStack  Kind = "stack"
	KindInline Kind = "inline"
	KindText   Kind = "text"
)

// Kinds lists the primitives in documentation order.
func Kinds() []Kind {
	return []Kind{KindFlex, KindBox, KindStack, KindInline, KindText}
}

// Node is one primitive in a layout tree. Props holds one of FlexProps,
// BoxProps, StackProps, InlineProps or TextProps.
type Node struct {
	Props    any
	Content  string
	Children []Node
}

// Kind reports which primitive n is, or "" for unsupported props.
func (n Node) Kind() Kind {
	switch n.Props.(type) {
	case FlexProps:
		return KindFlex
	case BoxProps:
		return KindBox
	case StackProps:
		return KindStack
	case InlineProps:
		return KindInline
	case TextProps:
		return KindText
	default:
		return ""
	}
}

// RenderedNode is the resolved form of a Node.
type RenderedNode struct {
	Kind     Kind           `json:"kind"`
	Path     string         `json:"path"`
	Content  string         `json:"text,omitempty"`
	Rendered Rendered       `json:"rendered"`
	Children []RenderedNode `json:"children,omitempty"`
}

// RootPath is the path of the tree root in errors and output.
const RootPath = "root"

// ChildPath returns the path of the i-th child of parent.
func ChildPath(parent string, i int) string {
	return parent + ".children[" + strconv.Itoa(i) + "]"
}

// Render resolves a whole tree against host with a single viewport
// measurement.
func Render(host Host, root Node) (RenderedNode, error) {
	ctx, err := measure(host)
	if err != nil {
		return RenderedNode{}, err
	}
	return ctx.render(root, RootPath)
}

func (c pass) render(n Node, path string) (RenderedNode, error) {
	rendered, err := c.primitive(n)
	if err != nil {
		return RenderedNode{}, fmt.Errorf("%s: %w", path, err)
	}

	out := RenderedNode{Kind: n.Kind(), Path: path, Content: n.Content, Rendered: rendered}
	if len(n.Children) == 0 {
		return out, nil
	}
	if out.Kind == KindText {
		return RenderedNode{}, flexerrors.NewValidationError(path, "text nodes cannot have children", nil)
	}

	out.Children = make([]RenderedNode, 0, len(n.Children))
	for i, child := range n.Children {
		renderedChild, err := c.render(child, ChildPath(path, i))
		if err != nil {
			return RenderedNode{}, err
		}
		out.Children = append(out.Children, renderedChild)
	}
	return out, nil
}

func (c pass) primitive(n Node) (Rendered, error) {
	switch props := n.Props.(type) {
	case FlexProps:
		return c.flex(props)
	case BoxProps:
		return c.flex(BoxFlexProps(props))
	case StackProps:
		return c.derived(StackFlexProps(props))
	case InlineProps:
		return c.derived(InlineFlexProps(props))
	case TextProps:
		return c.text(props)
	default:
		return Rendered{}, fmt.Errorf("unsupported node props %T", n.Props)
	}
}

func (c pass) derived(props FlexProps, err error) (Rendered, error) {
	if err != nil {
		return Rendered{}, err
	}
	return c.flex(props)
}

// Walk visits every rendered node depth first, parents before children.
func (n RenderedNode) Walk(visit func(RenderedNode) error) error {
	if err := visit(n); err != nil {
		return err
	}
	for _, child := range n.Children {
		if err := child.Walk(visit); err != nil {
			return err
		}
	}
	return nil
}
